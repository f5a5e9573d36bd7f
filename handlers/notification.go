package handlers

import (
	"net/http"

	"karigarstop/services/notification"

	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the notification feed.
type NotificationHandler struct {
	Feed notification.FeedService
}

func NewNotificationHandler(feed notification.FeedService) *NotificationHandler {
	return &NotificationHandler{Feed: feed}
}

// List returns all notifications, newest first, with the unread count.
func (h *NotificationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"notifications": h.Feed.List(),
		"unreadCount":   h.Feed.UnreadCount(),
	})
}

// MarkRead flags one notification as read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if !h.Feed.MarkRead(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "marked as read"})
}
