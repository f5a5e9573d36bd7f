package notification

import (
	"sync"
	"testing"

	"karigarstop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishPrependsNewestFirst(t *testing.T) {
	f := NewFeed()
	f.Publish(models.Notification{Title: "first"})
	f.Publish(models.Notification{Title: "second"})

	items := f.List()
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Title)
	assert.Equal(t, "first", items[1].Title)
}

func TestPublishFillsDefaults(t *testing.T) {
	f := NewFeed()
	f.Publish(models.Notification{Title: "t", Message: "m"})

	items := f.List()
	require.Len(t, items, 1)
	assert.NotEmpty(t, items[0].ID)
	assert.Equal(t, "Just now", items[0].Time)
	assert.False(t, items[0].Read)
}

func TestMarkRead(t *testing.T) {
	f := NewFeed()
	f.Publish(models.Notification{ID: "n1", Title: "t"})

	assert.Equal(t, 1, f.UnreadCount())
	assert.True(t, f.MarkRead("n1"))
	assert.Equal(t, 0, f.UnreadCount())
	assert.False(t, f.MarkRead("missing"))
}

func TestSeededFeed(t *testing.T) {
	f := NewSeededFeed()

	items := f.List()
	require.Len(t, items, 3)
	assert.Equal(t, "Booking Confirmed", items[0].Title)
	assert.Equal(t, "Special Offer", items[1].Title)
	assert.Equal(t, "Service Completed", items[2].Title)
	assert.Equal(t, 2, f.UnreadCount())
}

func TestListReturnsSnapshot(t *testing.T) {
	f := NewFeed()
	f.Publish(models.Notification{ID: "n1", Title: "t"})

	items := f.List()
	items[0].Read = true
	assert.Equal(t, 1, f.UnreadCount(), "mutating the snapshot must not touch the feed")
}

func TestConcurrentPublish(t *testing.T) {
	f := NewFeed()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Publish(models.Notification{Title: "t"})
		}()
	}
	wg.Wait()

	assert.Len(t, f.List(), 16)
	assert.Equal(t, 16, f.UnreadCount())
}
