package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"karigarstop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog serves a single fixed service.
type stubCatalog struct{}

func (stubCatalog) GetService(id string) (*models.Service, error) {
	if id != "1" {
		return nil, fmt.Errorf("service %q not found", id)
	}
	return &models.Service{ID: "1", Name: "House Cleaning", Price: "₹500"}, nil
}

func newTestService(t *testing.T) (*DefaultWorkflowService, *recordingSink, chan string) {
	t.Helper()
	sink := &recordingSink{}
	confirmed := make(chan string, 1)
	svc := &DefaultWorkflowService{
		Catalog:      stubCatalog{},
		Store:        NewMemoryDraftStore(),
		Sink:         sink,
		ConfirmDelay: 20 * time.Millisecond,
		OnConfirm:    func(sessionID string) { confirmed <- sessionID },
	}
	return svc, sink, confirmed
}

func TestStartWorkflowUnknownService(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.StartWorkflow("nope", "user-1")
	assert.Error(t, err)
}

func TestStartWorkflowMirrorsDraft(t *testing.T) {
	svc, _, _ := newTestService(t)

	draft, err := svc.StartWorkflow("1", "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDraft, draft.Status)
	assert.Equal(t, models.StepSchedule, draft.CurrentStep)
	assert.Equal(t, "House Cleaning", draft.Service.Name)
	assert.Equal(t, "user-1", draft.UserID)

	stored, err := svc.GetWorkflow(draft.SessionID)
	require.NoError(t, err)
	assert.Equal(t, draft.SessionID, stored.SessionID)
}

func TestWorkflowServiceEndToEnd(t *testing.T) {
	svc, sink, confirmed := newTestService(t)

	draft, err := svc.StartWorkflow("1", "user-1")
	require.NoError(t, err)
	id := draft.SessionID

	_, err = svc.SetSchedule(id, "2024-03-01", "10:00 AM")
	require.NoError(t, err)
	draft, err = svc.Advance(id)
	require.NoError(t, err)
	assert.Equal(t, models.StepAddress, draft.CurrentStep)

	_, err = svc.SetAddress(id, models.Address{
		Street: "123 Main St", City: "Mumbai", State: "Maharashtra", Pincode: "400001",
	})
	require.NoError(t, err)
	draft, err = svc.Advance(id)
	require.NoError(t, err)
	assert.Equal(t, models.StepPayment, draft.CurrentStep)

	_, err = svc.SetPayment(id, models.PaymentCash, nil)
	require.NoError(t, err)

	draft, err = svc.RequestCustomerOTP(id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAwaitingCustomerOtp, draft.Status)

	draft, err = svc.SubmitCustomerOTP(id, "654321")
	require.NoError(t, err)
	assert.Equal(t, models.StatusAwaitingProviderOtp, draft.Status)

	notifications := sink.all()
	require.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Title, "Serviceman OTP")

	draft, err = svc.SubmitProviderOTP(id, "111111")
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, draft.Status)

	select {
	case got := <-confirmed:
		assert.Equal(t, id, got)
	case <-time.After(time.Second):
		t.Fatal("completion callback never fired")
	}

	// Nothing about the booking persists after finalization.
	_, err = svc.GetWorkflow(id)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	_, err = svc.Advance(id)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestCancelWorkflowLeavesNoTrace(t *testing.T) {
	svc, _, confirmed := newTestService(t)

	draft, err := svc.StartWorkflow("1", "user-1")
	require.NoError(t, err)
	id := draft.SessionID

	_, err = svc.SetSchedule(id, "2024-03-01", "10:00 AM")
	require.NoError(t, err)
	_, err = svc.Advance(id)
	require.NoError(t, err)
	_, err = svc.SetAddress(id, models.Address{
		Street: "123 Main St", City: "Mumbai", State: "Maharashtra", Pincode: "400001",
	})
	require.NoError(t, err)
	_, err = svc.Advance(id)
	require.NoError(t, err)
	_, err = svc.SetPayment(id, models.PaymentCash, nil)
	require.NoError(t, err)
	_, err = svc.RequestCustomerOTP(id)
	require.NoError(t, err)
	_, err = svc.SubmitCustomerOTP(id, "654321")
	require.NoError(t, err)

	require.NoError(t, svc.CancelWorkflow(id))

	_, err = svc.GetWorkflow(id)
	assert.ErrorIs(t, err, ErrDraftNotFound)
	assert.ErrorIs(t, svc.CancelWorkflow(id), ErrDraftNotFound)

	select {
	case <-confirmed:
		t.Fatal("completion callback fired for a cancelled session")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCardPaymentSkipsHandshake(t *testing.T) {
	svc, _, _ := newTestService(t)

	draft, err := svc.StartWorkflow("1", "user-1")
	require.NoError(t, err)
	id := draft.SessionID

	draft, err = svc.SetPayment(id, models.PaymentCard, &models.CardDetails{
		Number: "1234567890123456extra",
		Name:   "A Customer",
		Expiry: "1225",
		CVV:    "123",
	})
	require.NoError(t, err)

	// Normalization applied on the way in.
	assert.Equal(t, "1234 5678 9012 3456", draft.CardDetails.Number)
	assert.Equal(t, "12/25", draft.CardDetails.Expiry)

	// Card details alone complete the payment step.
	w, err := svc.lookup(id)
	require.NoError(t, err)
	assert.True(t, w.IsStepComplete(models.StepPayment))
}

func TestConcurrentSessionsAreIndependent(t *testing.T) {
	svc, _, _ := newTestService(t)

	var wg sync.WaitGroup
	ids := make([]string, 8)
	for i := range ids {
		draft, err := svc.StartWorkflow("1", "user-1")
		require.NoError(t, err)
		ids[i] = draft.SessionID
	}

	for _, id := range ids {
		wg.Add(1)
		go func(sessionID string) {
			defer wg.Done()
			_, err := svc.SetSchedule(sessionID, "2024-03-01", "10:00 AM")
			assert.NoError(t, err)
			_, err = svc.Advance(sessionID)
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	for _, id := range ids {
		draft, err := svc.GetWorkflow(id)
		require.NoError(t, err)
		assert.Equal(t, models.StepAddress, draft.CurrentStep)
	}
}

func TestMemoryDraftStoreRoundTrip(t *testing.T) {
	store := NewMemoryDraftStore()
	ctx := context.Background()

	draft := models.BookingDraft{SessionID: "s-1", Status: models.StatusDraft}
	require.NoError(t, store.Save(ctx, draft, time.Minute))

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, draft.SessionID, got.SessionID)

	require.NoError(t, store.Delete(ctx, "s-1"))
	_, err = store.Get(ctx, "s-1")
	assert.ErrorIs(t, err, ErrDraftNotFound)
}
