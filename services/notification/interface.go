package notification

import "karigarstop/models"

// Sink is the publish point the booking workflow writes to. It is injected
// rather than reached through a global broadcast so the workflow can be
// tested in isolation.
type Sink interface {
	Publish(n models.Notification)
}

// FeedService exposes the user-facing notification list on top of a Sink.
type FeedService interface {
	Sink
	List() []models.Notification
	MarkRead(id string) bool
	UnreadCount() int
}
