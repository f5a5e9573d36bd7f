package booking

import (
	"fmt"
	"sync"
	"time"

	"karigarstop/models"
	"karigarstop/services/notification"
	"karigarstop/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WorkflowConfig wires a Workflow to its collaborators.
type WorkflowConfig struct {
	Service models.Service
	UserID  string

	// Sink receives the serviceman-OTP and booking-confirmed notifications.
	Sink notification.Sink

	// OnConfirm fires once, ConfirmDelay after the booking reaches Confirmed,
	// unless the workflow is closed first.
	OnConfirm func()

	// StrictVerify additionally checks submitted codes against the generated
	// ones instead of accepting any six digits.
	StrictVerify bool

	// ConfirmDelay defaults to 2s when zero.
	ConfirmDelay time.Duration

	// GenerateCode defaults to a random 6-digit code.
	GenerateCode func() (string, error)
}

// Workflow drives a single booking draft through the three wizard steps and
// the dual-OTP confirmation handshake. All methods are safe for concurrent
// use; in practice a single caller drives it and only the confirmation timer
// crosses in from another goroutine.
type Workflow struct {
	mu    sync.Mutex
	draft models.BookingDraft

	sink         notification.Sink
	onConfirm    func()
	strictVerify bool
	confirmDelay time.Duration
	generateCode func() (string, error)

	confirmTimer *time.Timer
	closed       bool
}

// NewWorkflow opens a draft for the given catalog service, positioned at the
// schedule step.
func NewWorkflow(cfg WorkflowConfig) *Workflow {
	delay := cfg.ConfirmDelay
	if delay == 0 {
		delay = 2 * time.Second
	}
	gen := cfg.GenerateCode
	if gen == nil {
		gen = func() (string, error) { return utils.GenerateNumericOTP(6) }
	}
	return &Workflow{
		draft: models.BookingDraft{
			SessionID:     uuid.New().String(),
			UserID:        cfg.UserID,
			Service:       cfg.Service,
			CurrentStep:   models.StepSchedule,
			Status:        models.StatusDraft,
			PaymentMethod: models.PaymentUPI,
			CreatedAt:     time.Now(),
		},
		sink:         cfg.Sink,
		onConfirm:    cfg.OnConfirm,
		strictVerify: cfg.StrictVerify,
		confirmDelay: delay,
		generateCode: gen,
	}
}

// Draft returns a snapshot of the current draft state. The OTP challenges
// are cloned so the snapshot shares nothing with the live draft and stays
// stable while other goroutines keep mutating the workflow.
func (w *Workflow) Draft() models.BookingDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	d := w.draft
	if d.CustomerOTP != nil {
		c := *d.CustomerOTP
		d.CustomerOTP = &c
	}
	if d.ProviderOTP != nil {
		p := *d.ProviderOTP
		d.ProviderOTP = &p
	}
	return d
}

// SessionID returns the draft's session identifier.
func (w *Workflow) SessionID() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft.SessionID
}

// Status returns the current booking status.
func (w *Workflow) Status() models.BookingStatus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft.Status
}

// CurrentStep returns the active wizard step.
func (w *Workflow) CurrentStep() models.BookingStep {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft.CurrentStep
}

// --- Form state setters. Normalization only; validation belongs to the
// step predicates and the handshake.

func (w *Workflow) SetDate(date string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Schedule.Date = date
}

func (w *Workflow) SetTimeSlot(slot string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Schedule.Time = slot
}

func (w *Workflow) SetStreet(v string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Address.Street = v
}

func (w *Workflow) SetCity(v string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Address.City = v
}

func (w *Workflow) SetState(v string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Address.State = v
}

func (w *Workflow) SetPincode(v string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Address.Pincode = FormatPincode(v)
}

func (w *Workflow) SetLandmark(v string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.Address.Landmark = v
}

func (w *Workflow) SetPaymentMethod(m models.PaymentMethod) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.PaymentMethod = m
}

func (w *Workflow) SetCardNumber(v string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.CardDetails.Number = FormatCardNumber(v)
}

func (w *Workflow) SetCardHolder(v string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.CardDetails.Name = v
}

func (w *Workflow) SetCardExpiry(v string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.CardDetails.Expiry = FormatCardExpiry(v)
}

func (w *Workflow) SetCardCVV(v string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.draft.CardDetails.CVV = FormatCardCVV(v)
}

// --- Step sequencing.

// IsStepComplete reports whether the given step's data satisfies its
// completion predicate. It is a pure function of draft state.
func (w *Workflow) IsStepComplete(step models.BookingStep) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return isStepComplete(&w.draft, step)
}

func isStepComplete(d *models.BookingDraft, step models.BookingStep) bool {
	switch step {
	case models.StepSchedule:
		return d.Schedule.Date != "" && d.Schedule.Time != ""
	case models.StepAddress:
		a := d.Address
		return a.Street != "" && a.City != "" && a.State != "" && a.Pincode != ""
	case models.StepPayment:
		if d.PaymentMethod == models.PaymentCard {
			c := d.CardDetails
			return c.Number != "" && c.Name != "" && c.Expiry != "" && c.CVV != ""
		}
		return d.PaymentMethod != "" &&
			d.CustomerOTP != nil && d.CustomerOTP.Verified &&
			d.ProviderOTP != nil && d.ProviderOTP.Verified
	default:
		return false
	}
}

// Advance moves to the next step once the active step is complete. It is a
// no-op at the payment step, where the handshake takes over.
func (w *Workflow) Advance() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWorkflowClosed
	}
	if w.draft.CurrentStep >= models.StepPayment {
		return nil
	}
	if !isStepComplete(&w.draft, w.draft.CurrentStep) {
		return ErrStepIncomplete
	}
	w.draft.CurrentStep++
	return nil
}

// Retreat moves back one step regardless of step completeness, clamped at
// the first step. A closed workflow is left untouched.
func (w *Workflow) Retreat() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.draft.CurrentStep > models.StepSchedule {
		w.draft.CurrentStep--
	}
}

// JumpTo moves directly to the target step, allowed only when every step
// strictly before it is complete.
func (w *Workflow) JumpTo(step models.BookingStep) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWorkflowClosed
	}
	if step < models.StepSchedule || step > models.StepPayment {
		return fmt.Errorf("invalid step %d", step)
	}
	for s := models.StepSchedule; s < step; s++ {
		if !isStepComplete(&w.draft, s) {
			return ErrStepIncomplete
		}
	}
	w.draft.CurrentStep = step
	return nil
}

// --- OTP handshake.

// RequestCustomerCode generates the customer's 6-digit code and moves the
// draft into AwaitingCustomerOtp. The handshake belongs to the payment step,
// so the wizard must have reached it first. It returns the generated code so
// the caller can surface it; there is no real delivery channel.
func (w *Workflow) RequestCustomerCode() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return "", ErrWorkflowClosed
	}
	if w.draft.Status != models.StatusDraft {
		return "", newStateError("requesting a customer code", string(w.draft.Status))
	}
	if w.draft.CurrentStep != models.StepPayment {
		return "", ErrStepIncomplete
	}
	code, err := w.generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate customer code: %w", err)
	}
	w.draft.CustomerOTP = &models.OtpChallenge{Code: code, Role: models.OtpRoleCustomer}
	w.draft.Status = models.StatusAwaitingCustomerOtp
	return code, nil
}

// SubmitCustomerCode normalizes the input to at most six digits and, once
// six digits are present, verifies the customer challenge and chains
// straight into the serviceman challenge. The generated serviceman code is
// delivered through the notification sink. Re-submitting after verification
// is a no-op: the serviceman challenge is generated at most once per draft.
func (w *Workflow) SubmitCustomerCode(input string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWorkflowClosed
	}
	if w.draft.CustomerOTP == nil {
		return newStateError("submitting a customer code", string(w.draft.Status))
	}
	if w.draft.CustomerOTP.Verified {
		return nil
	}

	value := FormatOTPInput(input)
	w.draft.CustomerOTP.Submitted = value
	if len(value) != 6 {
		return ErrCodeIncomplete
	}
	if w.strictVerify && value != w.draft.CustomerOTP.Code {
		return ErrCodeMismatch
	}
	w.draft.CustomerOTP.Verified = true

	return w.requestProviderCodeLocked()
}

// requestProviderCodeLocked generates the serviceman challenge and announces
// its code on the sink. Caller holds w.mu.
func (w *Workflow) requestProviderCodeLocked() error {
	code, err := w.generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate serviceman code: %w", err)
	}
	w.draft.ProviderOTP = &models.OtpChallenge{Code: code, Role: models.OtpRoleProvider}
	w.draft.Status = models.StatusAwaitingProviderOtp

	if w.sink != nil {
		w.sink.Publish(models.Notification{
			Title:   "Serviceman OTP Generated",
			Message: fmt.Sprintf("OTP for service completion: %s", code),
		})
	}
	return nil
}

// SubmitProviderCode mirrors SubmitCustomerCode for the serviceman's code.
// Once verified, the booking is confirmed and finalization runs.
func (w *Workflow) SubmitProviderCode(input string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWorkflowClosed
	}
	if w.draft.ProviderOTP == nil {
		return newStateError("submitting a serviceman code", string(w.draft.Status))
	}
	if w.draft.ProviderOTP.Verified {
		return nil
	}

	value := FormatOTPInput(input)
	w.draft.ProviderOTP.Submitted = value
	if len(value) != 6 {
		return ErrCodeIncomplete
	}
	if w.strictVerify && value != w.draft.ProviderOTP.Code {
		return ErrCodeMismatch
	}
	w.draft.ProviderOTP.Verified = true

	w.finalizeLocked()
	return nil
}

// finalizeLocked moves the draft to Confirmed, publishes the confirmation
// notification synchronously, and schedules the completion callback. The
// notification always precedes the callback. Caller holds w.mu.
func (w *Workflow) finalizeLocked() {
	w.draft.Status = models.StatusConfirmed

	if w.sink != nil {
		w.sink.Publish(models.Notification{
			Title: "Booking Confirmed",
			Message: fmt.Sprintf("Your %s has been confirmed for %s at %s",
				w.draft.Service.Name, w.draft.Schedule.Date, w.draft.Schedule.Time),
		})
	}

	utils.GetLogger().Info("Booking confirmed",
		zap.String("sessionId", w.draft.SessionID),
		zap.String("service", w.draft.Service.Name),
		zap.String("date", w.draft.Schedule.Date),
	)

	if w.onConfirm != nil {
		w.confirmTimer = time.AfterFunc(w.confirmDelay, w.fireConfirm)
	}
}

// fireConfirm runs on the timer goroutine; it must not call back into a
// closed workflow.
func (w *Workflow) fireConfirm() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	cb := w.onConfirm
	w.mu.Unlock()
	if cb != nil {
		cb()
	}
}

// Close dismisses the workflow. Any pending completion callback is cancelled
// so it can never fire against a disposed caller. Closing is a normal exit;
// the draft is simply discarded.
func (w *Workflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.closed = true
	if w.confirmTimer != nil {
		w.confirmTimer.Stop()
		w.confirmTimer = nil
	}
}

// Closed reports whether the workflow has been dismissed.
func (w *Workflow) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}
