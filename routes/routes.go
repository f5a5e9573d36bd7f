package routes

import (
	"net/http"
	"time"

	"karigarstop/handlers"
	"karigarstop/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Auth         *handlers.AuthHandler
	Profile      *handlers.ProfileHandler
	Catalog      *handlers.CatalogHandler
	Booking      *handlers.BookingHandler
	Notification *handlers.NotificationHandler
}

// RegisterRoutes attaches every endpoint group to the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	registerHealthRoute(r)
	registerAuthRoutes(r, hb)
	registerCatalogRoutes(r, hb)
	registerBookingRoutes(r, hb)
	registerNotificationRoutes(r, hb)
	registerProfileRoutes(r, hb)
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm The Karigar Stop"})
	})
}

func registerAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.Auth.SignUp)
		api.POST("/signin", hb.Auth.SignIn)
		api.POST("/forgot-password", hb.Auth.ForgotPassword)
		api.POST("/reset-password", hb.Auth.ResetPassword)
	}
}

func registerCatalogRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Catalog.ListServices)
		api.GET("/:id", hb.Catalog.GetService)
	}
	r.GET("/api/time-slots", hb.Catalog.ListTimeSlots)
	r.GET("/api/help-topics", hb.Catalog.ListHelpTopics)

	history := r.Group("/api/bookings/history")
	history.Use(middleware.JWTAuthMiddleware())
	history.GET("", hb.Catalog.ListBookingHistory)
}

func registerBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/booking")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.POST("/session", hb.Booking.StartWorkflow)
		api.GET("/session/:sessionID", hb.Booking.GetWorkflow)
		api.PUT("/session/:sessionID/schedule", hb.Booking.SetSchedule)
		api.PUT("/session/:sessionID/address", hb.Booking.SetAddress)
		api.PUT("/session/:sessionID/payment", hb.Booking.SetPayment)
		api.POST("/session/:sessionID/advance", hb.Booking.Advance)
		api.POST("/session/:sessionID/retreat", hb.Booking.Retreat)
		api.POST("/session/:sessionID/otp/customer", hb.Booking.RequestCustomerOTP)
		api.PUT("/session/:sessionID/otp/customer", hb.Booking.SubmitCustomerOTP)
		api.PUT("/session/:sessionID/otp/serviceman", hb.Booking.SubmitProviderOTP)
		api.DELETE("/session/:sessionID", hb.Booking.Cancel)
	}
}

func registerNotificationRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/notifications")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("", hb.Notification.List)
		api.PUT("/:id/read", hb.Notification.MarkRead)
	}
}

func registerProfileRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/profile")
	api.Use(middleware.JWTAuthMiddleware())
	{
		api.GET("", hb.Profile.GetProfile)
		api.PATCH("", hb.Profile.UpdateProfile)
	}
}
