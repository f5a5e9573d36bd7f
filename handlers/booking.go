package handlers

import (
	"errors"
	"net/http"

	"karigarstop/models"
	"karigarstop/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking workflow over HTTP.
type BookingHandler struct {
	Service booking.WorkflowService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.WorkflowService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

func (h *BookingHandler) respond(c *gin.Context, draft *models.BookingDraft, err error) {
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, booking.ErrDraftNotFound):
			status = http.StatusNotFound
		case errors.Is(err, booking.ErrStepIncomplete),
			errors.Is(err, booking.ErrCodeIncomplete),
			errors.Is(err, booking.ErrCodeMismatch):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, booking.ErrWorkflowClosed):
			status = http.StatusConflict
		default:
			var stateErr *booking.StateError
			if errors.As(err, &stateErr) {
				status = http.StatusConflict
			}
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// StartWorkflow opens a draft for a catalog service.
func (h *BookingHandler) StartWorkflow(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	userID := c.GetString("userID")

	draft, err := h.Service.StartWorkflow(input.ServiceID, userID)
	if err != nil {
		h.Logger.Warn("Failed to start booking workflow", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// GetWorkflow returns the current draft snapshot.
func (h *BookingHandler) GetWorkflow(c *gin.Context) {
	draft, err := h.Service.GetWorkflow(c.Param("sessionID"))
	h.respond(c, draft, err)
}

// SetSchedule stores the selected date and time slot.
func (h *BookingHandler) SetSchedule(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Service.SetSchedule(c.Param("sessionID"), input.Date, input.Time)
	h.respond(c, draft, err)
}

// SetAddress stores the delivery address fields.
func (h *BookingHandler) SetAddress(c *gin.Context) {
	var input models.Address
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Service.SetAddress(c.Param("sessionID"), input)
	h.respond(c, draft, err)
}

// SetPayment stores the payment method and, for cards, the card details.
func (h *BookingHandler) SetPayment(c *gin.Context) {
	var input struct {
		Method models.PaymentMethod `json:"method" binding:"required"`
		Card   *models.CardDetails  `json:"card"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Service.SetPayment(c.Param("sessionID"), input.Method, input.Card)
	h.respond(c, draft, err)
}

// Advance moves to the next wizard step.
func (h *BookingHandler) Advance(c *gin.Context) {
	draft, err := h.Service.Advance(c.Param("sessionID"))
	h.respond(c, draft, err)
}

// Retreat moves back one wizard step.
func (h *BookingHandler) Retreat(c *gin.Context) {
	draft, err := h.Service.Retreat(c.Param("sessionID"))
	h.respond(c, draft, err)
}

// RequestCustomerOTP starts the confirmation handshake.
func (h *BookingHandler) RequestCustomerOTP(c *gin.Context) {
	draft, err := h.Service.RequestCustomerOTP(c.Param("sessionID"))
	h.respond(c, draft, err)
}

type otpInput struct {
	Code string `json:"code" binding:"required"`
}

// SubmitCustomerOTP submits the customer's code.
func (h *BookingHandler) SubmitCustomerOTP(c *gin.Context) {
	var input otpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Service.SubmitCustomerOTP(c.Param("sessionID"), input.Code)
	h.respond(c, draft, err)
}

// SubmitProviderOTP submits the serviceman's code.
func (h *BookingHandler) SubmitProviderOTP(c *gin.Context) {
	var input otpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	draft, err := h.Service.SubmitProviderOTP(c.Param("sessionID"), input.Code)
	h.respond(c, draft, err)
}

// Cancel dismisses the workflow before confirmation.
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.Service.CancelWorkflow(c.Param("sessionID")); err != nil {
		if errors.Is(err, booking.ErrDraftNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking session cancelled"})
}
