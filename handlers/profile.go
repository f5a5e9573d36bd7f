package handlers

import (
	"errors"
	"net/http"

	"karigarstop/services/user"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the signed-in user's profile.
type ProfileHandler struct {
	Service user.UserService
}

func NewProfileHandler(svc user.UserService) *ProfileHandler {
	return &ProfileHandler{Service: svc}
}

// GetProfile returns the authenticated user's profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.Service.GetProfile(c.GetString("userID"))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateProfile updates the mutable profile fields.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var input user.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	profile, err := h.Service.UpdateProfile(c.GetString("userID"), input)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
