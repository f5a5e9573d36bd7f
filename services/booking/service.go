package booking

import (
	"context"
	"sync"
	"time"

	"karigarstop/models"
	"karigarstop/services/notification"
	"karigarstop/utils"

	"go.uber.org/zap"
)

const draftTTL = 30 * time.Minute

// DefaultWorkflowService implements WorkflowService. Live workflows are held
// in-process (their confirmation timers cannot leave the process) and each
// mutation mirrors a snapshot into the DraftStore so session state stays
// readable the way other session caches here work.
type DefaultWorkflowService struct {
	Catalog ServiceCatalog
	Store   DraftStore
	Sink    notification.Sink

	// StrictVerify and ConfirmDelay are passed through to each workflow.
	StrictVerify bool
	ConfirmDelay time.Duration

	// OnConfirm, when set, is invoked with the session ID after a booking's
	// finalization delay elapses.
	OnConfirm func(sessionID string)

	mu        sync.Mutex
	workflows map[string]*Workflow
}

func (s *DefaultWorkflowService) register(w *Workflow) {
	s.mu.Lock()
	if s.workflows == nil {
		s.workflows = make(map[string]*Workflow)
	}
	s.workflows[w.SessionID()] = w
	s.mu.Unlock()
}

func (s *DefaultWorkflowService) lookup(sessionID string) (*Workflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.workflows[sessionID]
	if !ok {
		return nil, ErrDraftNotFound
	}
	return w, nil
}

func (s *DefaultWorkflowService) deregister(sessionID string) {
	s.mu.Lock()
	delete(s.workflows, sessionID)
	s.mu.Unlock()
}

// mirror writes the current draft snapshot to the store and returns it.
func (s *DefaultWorkflowService) mirror(w *Workflow) (*models.BookingDraft, error) {
	draft := w.Draft()
	if err := s.Store.Save(context.Background(), draft, draftTTL); err != nil {
		return nil, err
	}
	return &draft, nil
}

// StartWorkflow opens a new draft for the given catalog service.
func (s *DefaultWorkflowService) StartWorkflow(serviceID, userID string) (*models.BookingDraft, error) {
	svc, err := s.Catalog.GetService(serviceID)
	if err != nil {
		return nil, err
	}

	w := NewWorkflow(WorkflowConfig{
		Service:      *svc,
		UserID:       userID,
		Sink:         s.Sink,
		StrictVerify: s.StrictVerify,
		ConfirmDelay: s.ConfirmDelay,
	})
	sessionID := w.SessionID()
	w.onConfirm = func() {
		s.finishConfirmed(sessionID)
	}

	s.register(w)
	utils.GetLogger().Info("Booking workflow started",
		zap.String("sessionId", sessionID),
		zap.String("service", svc.Name),
	)
	return s.mirror(w)
}

// finishConfirmed runs after the finalization delay: the session is cleaned
// up (nothing about the booking is persisted) and the caller is notified.
func (s *DefaultWorkflowService) finishConfirmed(sessionID string) {
	s.deregister(sessionID)
	if err := s.Store.Delete(context.Background(), sessionID); err != nil {
		utils.GetLogger().Warn("Failed to delete confirmed draft", zap.Error(err))
	}
	if s.OnConfirm != nil {
		s.OnConfirm(sessionID)
	}
}

// GetWorkflow returns the stored snapshot for a session.
func (s *DefaultWorkflowService) GetWorkflow(sessionID string) (*models.BookingDraft, error) {
	return s.Store.Get(context.Background(), sessionID)
}

func (s *DefaultWorkflowService) SetSchedule(sessionID, date, slot string) (*models.BookingDraft, error) {
	w, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	w.SetDate(date)
	w.SetTimeSlot(slot)
	return s.mirror(w)
}

func (s *DefaultWorkflowService) SetAddress(sessionID string, addr models.Address) (*models.BookingDraft, error) {
	w, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	w.SetStreet(addr.Street)
	w.SetCity(addr.City)
	w.SetState(addr.State)
	w.SetPincode(addr.Pincode)
	w.SetLandmark(addr.Landmark)
	return s.mirror(w)
}

func (s *DefaultWorkflowService) SetPayment(sessionID string, method models.PaymentMethod, card *models.CardDetails) (*models.BookingDraft, error) {
	w, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	w.SetPaymentMethod(method)
	if card != nil {
		w.SetCardNumber(card.Number)
		w.SetCardHolder(card.Name)
		w.SetCardExpiry(card.Expiry)
		w.SetCardCVV(card.CVV)
	}
	return s.mirror(w)
}

func (s *DefaultWorkflowService) Advance(sessionID string) (*models.BookingDraft, error) {
	w, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if err := w.Advance(); err != nil {
		return nil, err
	}
	return s.mirror(w)
}

func (s *DefaultWorkflowService) Retreat(sessionID string) (*models.BookingDraft, error) {
	w, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	w.Retreat()
	return s.mirror(w)
}

func (s *DefaultWorkflowService) RequestCustomerOTP(sessionID string) (*models.BookingDraft, error) {
	w, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := w.RequestCustomerCode(); err != nil {
		return nil, err
	}
	return s.mirror(w)
}

func (s *DefaultWorkflowService) SubmitCustomerOTP(sessionID, code string) (*models.BookingDraft, error) {
	w, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if err := w.SubmitCustomerCode(code); err != nil {
		return nil, err
	}
	return s.mirror(w)
}

func (s *DefaultWorkflowService) SubmitProviderOTP(sessionID, code string) (*models.BookingDraft, error) {
	w, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if err := w.SubmitProviderCode(code); err != nil {
		return nil, err
	}
	return s.mirror(w)
}

// CancelWorkflow dismisses a session before confirmation. Any pending
// finalization is cancelled and no trace of the draft remains.
func (s *DefaultWorkflowService) CancelWorkflow(sessionID string) error {
	w, err := s.lookup(sessionID)
	if err != nil {
		return err
	}
	w.Close()
	s.deregister(sessionID)
	if err := s.Store.Delete(context.Background(), sessionID); err != nil {
		return err
	}
	utils.GetLogger().Info("Booking workflow cancelled", zap.String("sessionId", sessionID))
	return nil
}
