package handlers

import (
	"errors"
	"net/http"

	"karigarstop/services/user"

	"github.com/gin-gonic/gin"
)

// AuthHandler covers signup, signin, and password recovery.
type AuthHandler struct {
	Service user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

func authErrStatus(err error) int {
	switch {
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, user.ErrDuplicateUser):
		return http.StatusConflict
	case errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, user.ErrInvalidMobile):
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}

// SignUp registers a new user.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var input struct {
		FullName string `json:"fullName" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Mobile   string `json:"mobile" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.Service.SignUp(input.FullName, input.Email, input.Mobile, input.Password)
	if err != nil {
		c.JSON(authErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignIn authenticates by email or mobile.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var input struct {
		Identifier string `json:"identifier" binding:"required"`
		Password   string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.Service.SignIn(input.Identifier, input.Password)
	if err != nil {
		c.JSON(authErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ForgotPassword sends a recovery OTP to the registered mobile.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var input struct {
		Mobile string `json:"mobile" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.InitiatePasswordReset(input.Mobile); err != nil {
		c.JSON(authErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent"})
}

// ResetPassword verifies the recovery OTP and sets a new password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var input struct {
		Mobile      string `json:"mobile" binding:"required"`
		OTP         string `json:"otp" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.CompletePasswordReset(input.Mobile, input.OTP, input.NewPassword); err != nil {
		c.JSON(authErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}
