package booking

import "karigarstop/models"

// ServiceCatalog supplies the immutable catalog entry a draft is opened for.
type ServiceCatalog interface {
	GetService(id string) (*models.Service, error)
}

// WorkflowService manages stateful booking workflows keyed by session ID.
type WorkflowService interface {
	StartWorkflow(serviceID, userID string) (*models.BookingDraft, error)
	GetWorkflow(sessionID string) (*models.BookingDraft, error)

	SetSchedule(sessionID, date, slot string) (*models.BookingDraft, error)
	SetAddress(sessionID string, addr models.Address) (*models.BookingDraft, error)
	SetPayment(sessionID string, method models.PaymentMethod, card *models.CardDetails) (*models.BookingDraft, error)

	Advance(sessionID string) (*models.BookingDraft, error)
	Retreat(sessionID string) (*models.BookingDraft, error)

	RequestCustomerOTP(sessionID string) (*models.BookingDraft, error)
	SubmitCustomerOTP(sessionID, code string) (*models.BookingDraft, error)
	SubmitProviderOTP(sessionID, code string) (*models.BookingDraft, error)

	CancelWorkflow(sessionID string) error
}
