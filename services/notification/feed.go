package notification

import (
	"sync"

	"karigarstop/models"
	"karigarstop/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Feed is an in-memory, newest-first notification collection. It implements
// both Sink (for the booking workflow) and FeedService (for the API).
type Feed struct {
	mu    sync.Mutex
	items []models.Notification
}

// NewFeed returns an empty feed.
func NewFeed() *Feed {
	return &Feed{}
}

// NewSeededFeed returns a feed pre-populated with the welcome notifications
// shown to a fresh account.
func NewSeededFeed() *Feed {
	return &Feed{items: []models.Notification{
		{
			ID:      uuid.New().String(),
			Title:   "Booking Confirmed",
			Message: "Your house cleaning service has been confirmed for tomorrow at 10 AM",
			Time:    "2 hours ago",
			Read:    false,
		},
		{
			ID:      uuid.New().String(),
			Title:   "Special Offer",
			Message: "Get 20% off on all event planning services this weekend!",
			Time:    "1 day ago",
			Read:    false,
		},
		{
			ID:      uuid.New().String(),
			Title:   "Service Completed",
			Message: "How was your experience with our plumbing service?",
			Time:    "2 days ago",
			Read:    true,
		},
	}}
}

// Publish prepends the notification. An empty ID gets a generated one and an
// empty time label defaults to "Just now".
func (f *Feed) Publish(n models.Notification) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Time == "" {
		n.Time = "Just now"
	}

	f.mu.Lock()
	f.items = append([]models.Notification{n}, f.items...)
	f.mu.Unlock()

	utils.GetLogger().Info("Notification published",
		zap.String("id", n.ID),
		zap.String("title", n.Title),
	)
}

// List returns a snapshot of the feed, newest first.
func (f *Feed) List() []models.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Notification, len(f.items))
	copy(out, f.items)
	return out
}

// MarkRead flags the notification with the given ID as read. It reports
// whether the ID was found.
func (f *Feed) MarkRead(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Read = true
			return true
		}
	}
	return false
}

// UnreadCount returns the number of unread notifications.
func (f *Feed) UnreadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for i := range f.items {
		if !f.items[i].Read {
			count++
		}
	}
	return count
}
