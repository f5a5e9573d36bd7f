package catalog

import "karigarstop/models"

// CatalogService serves the static service catalog, help content, and the
// mock booking-history display data.
type CatalogService interface {
	ListServices(category models.ServiceCategory, query string) []models.Service
	GetService(id string) (*models.Service, error)
	ListHelpTopics() []models.HelpTopic
	ListBookingHistory() []models.HistoryEntry
	TimeSlots() []string
}
