package handlers

import (
	"net/http"

	"karigarstop/models"
	"karigarstop/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the static service catalog and help content.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// ListServices supports ?category= and ?q= filters.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	category := models.ServiceCategory(c.Query("category"))
	query := c.Query("q")
	c.JSON(http.StatusOK, gin.H{"services": h.Service.ListServices(category, query)})
}

// GetService returns a single catalog entry by ID.
func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.Service.GetService(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": svc})
}

// ListTimeSlots returns the fixed schedule slot labels.
func (h *CatalogHandler) ListTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timeSlots": h.Service.TimeSlots()})
}

// ListHelpTopics returns the help-center articles.
func (h *CatalogHandler) ListHelpTopics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"helpTopics": h.Service.ListHelpTopics()})
}

// ListBookingHistory returns the static history display data.
func (h *CatalogHandler) ListBookingHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bookings": h.Service.ListBookingHistory()})
}
