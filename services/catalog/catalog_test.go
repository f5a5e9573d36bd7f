package catalog

import (
	"testing"

	"karigarstop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListServicesAll(t *testing.T) {
	svc := &DefaultCatalogService{}

	assert.Len(t, svc.ListServices("", ""), 9)
	assert.Len(t, svc.ListServices("all", ""), 9)
}

func TestListServicesByCategory(t *testing.T) {
	svc := &DefaultCatalogService{}

	daily := svc.ListServices(models.CategoryDaily, "")
	require.Len(t, daily, 3)
	for _, s := range daily {
		assert.Equal(t, models.CategoryDaily, s.Category)
	}

	assert.Len(t, svc.ListServices(models.CategoryEvent, ""), 3)
	assert.Len(t, svc.ListServices(models.CategoryReligious, ""), 3)
}

func TestListServicesSearch(t *testing.T) {
	svc := &DefaultCatalogService{}

	t.Run("matches name case-insensitively", func(t *testing.T) {
		got := svc.ListServices("", "PLUMB")
		require.Len(t, got, 1)
		assert.Equal(t, "Plumbing Service", got[0].Name)
	})

	t.Run("matches description", func(t *testing.T) {
		got := svc.ListServices("", "eco-friendly")
		require.Len(t, got, 1)
		assert.Equal(t, "House Cleaning", got[0].Name)
	})

	t.Run("combines with category filter", func(t *testing.T) {
		assert.Empty(t, svc.ListServices(models.CategoryEvent, "plumbing"))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, svc.ListServices("", "carpentry"))
	})
}

func TestGetService(t *testing.T) {
	svc := &DefaultCatalogService{}

	got, err := svc.GetService("7")
	require.NoError(t, err)
	assert.Equal(t, "Ganesh Chaturthi Celebration", got.Name)
	require.NotNil(t, got.Options)
	assert.Equal(t, "₹15000", got.Options.FullArrangement.Price)

	_, err = svc.GetService("42")
	assert.Error(t, err)
}

func TestTimeSlots(t *testing.T) {
	svc := &DefaultCatalogService{}

	slots := svc.TimeSlots()
	require.Len(t, slots, 12)
	assert.Equal(t, "09:00 AM", slots[0])
	assert.Equal(t, "08:00 PM", slots[11])

	slots[0] = "mutated"
	assert.Equal(t, "09:00 AM", svc.TimeSlots()[0], "callers get a copy")
}

func TestListHelpTopics(t *testing.T) {
	svc := &DefaultCatalogService{}

	topics := svc.ListHelpTopics()
	require.Len(t, topics, 3)
	for _, topic := range topics {
		assert.NotEmpty(t, topic.Title)
		assert.NotEmpty(t, topic.Content)
	}
}

func TestListBookingHistory(t *testing.T) {
	svc := &DefaultCatalogService{}

	entries := svc.ListBookingHistory()
	require.Len(t, entries, 3)
	assert.Equal(t, "completed", entries[0].Status)
	assert.Equal(t, "pending", entries[1].Status)
	assert.Equal(t, "cancelled", entries[2].Status)
}
