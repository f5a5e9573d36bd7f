package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"karigarstop/models"
	"karigarstop/services/booking"
	"karigarstop/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCatalog struct{}

func (stubCatalog) GetService(id string) (*models.Service, error) {
	if id != "1" {
		return nil, fmt.Errorf("service %q not found", id)
	}
	return &models.Service{ID: "1", Name: "House Cleaning", Price: "₹500"}, nil
}

func newBookingRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &booking.DefaultWorkflowService{
		Catalog:      stubCatalog{},
		Store:        booking.NewMemoryDraftStore(),
		Sink:         notification.NewFeed(),
		ConfirmDelay: 10 * time.Millisecond,
	}
	h := NewBookingHandler(svc, zap.NewNop())

	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set("userID", "user-1") })

	grp := r.Group("/api/booking")
	grp.POST("/session", h.StartWorkflow)
	grp.GET("/session/:sessionID", h.GetWorkflow)
	grp.PUT("/session/:sessionID/schedule", h.SetSchedule)
	grp.PUT("/session/:sessionID/address", h.SetAddress)
	grp.PUT("/session/:sessionID/payment", h.SetPayment)
	grp.POST("/session/:sessionID/advance", h.Advance)
	grp.POST("/session/:sessionID/retreat", h.Retreat)
	grp.POST("/session/:sessionID/otp/customer", h.RequestCustomerOTP)
	grp.PUT("/session/:sessionID/otp/customer", h.SubmitCustomerOTP)
	grp.PUT("/session/:sessionID/otp/serviceman", h.SubmitProviderOTP)
	grp.DELETE("/session/:sessionID", h.Cancel)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func draftFrom(t *testing.T, w *httptest.ResponseRecorder) models.BookingDraft {
	t.Helper()
	var resp struct {
		Draft models.BookingDraft `json:"draft"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Draft
}

func TestStartWorkflowEndpoint(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/booking/session", gin.H{"serviceId": "1"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	draft := draftFrom(t, w)
	assert.NotEmpty(t, draft.SessionID)
	assert.Equal(t, "user-1", draft.UserID)
	assert.Equal(t, models.StepSchedule, draft.CurrentStep)
	assert.Equal(t, models.StatusDraft, draft.Status)
}

func TestStartWorkflowUnknownService(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/booking/session", gin.H{"serviceId": "99"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartWorkflowMissingServiceID(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/booking/session", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdvanceBlockedUntilStepComplete(t *testing.T) {
	r := newBookingRouter(t)

	start := doJSON(t, r, http.MethodPost, "/api/booking/session", gin.H{"serviceId": "1"})
	sessionID := draftFrom(t, start).SessionID
	base := "/api/booking/session/" + sessionID

	w := doJSON(t, r, http.MethodPost, base+"/advance", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	doJSON(t, r, http.MethodPut, base+"/schedule", gin.H{"date": "2026-09-15", "time": "10:00 AM"})
	w = doJSON(t, r, http.MethodPost, base+"/advance", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.StepAddress, draftFrom(t, w).CurrentStep)
}

func TestUnknownSessionReturns404(t *testing.T) {
	r := newBookingRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/booking/session/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/booking/session/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandshakeOverHTTP(t *testing.T) {
	r := newBookingRouter(t)

	start := doJSON(t, r, http.MethodPost, "/api/booking/session", gin.H{"serviceId": "1"})
	sessionID := draftFrom(t, start).SessionID
	base := "/api/booking/session/" + sessionID

	doJSON(t, r, http.MethodPut, base+"/schedule", gin.H{"date": "2026-09-15", "time": "10:00 AM"})
	doJSON(t, r, http.MethodPost, base+"/advance", nil)
	doJSON(t, r, http.MethodPut, base+"/address", gin.H{
		"street": "12 MG Road", "city": "Mumbai", "state": "Maharashtra", "pincode": "400001",
	})
	doJSON(t, r, http.MethodPost, base+"/advance", nil)
	doJSON(t, r, http.MethodPut, base+"/payment", gin.H{"method": "upi"})

	w := doJSON(t, r, http.MethodPost, base+"/otp/customer", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.StatusAwaitingCustomerOtp, draftFrom(t, w).Status)

	t.Run("serviceman code before customer code conflicts", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, base+"/otp/serviceman", gin.H{"code": "123456"})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("short code rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, base+"/otp/customer", gin.H{"code": "123"})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	w = doJSON(t, r, http.MethodPut, base+"/otp/customer", gin.H{"code": "123456"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.StatusAwaitingProviderOtp, draftFrom(t, w).Status)

	w = doJSON(t, r, http.MethodPut, base+"/otp/serviceman", gin.H{"code": "654321"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, models.StatusConfirmed, draftFrom(t, w).Status)
}

func TestCancelEndpoint(t *testing.T) {
	r := newBookingRouter(t)

	start := doJSON(t, r, http.MethodPost, "/api/booking/session", gin.H{"serviceId": "1"})
	sessionID := draftFrom(t, start).SessionID

	w := doJSON(t, r, http.MethodDelete, "/api/booking/session/"+sessionID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/booking/session/"+sessionID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
