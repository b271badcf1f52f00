package routes

import (
	"net/http"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/handlers"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/middleware"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers availability check endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.POST("/check", hb.Availability.CheckHandler)
		api.POST("/alternatives", hb.Availability.AlternativesHandler)
	}
}

// RegisterPickerRoutes registers the date-picker session endpoints.
func RegisterPickerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/picker")
	{
		api.POST("/sessions", hb.Picker.StartSessionHandler)
		api.POST("/sessions/:sessionID/months", hb.Picker.FillMonthHandler)
		api.GET("/sessions/:sessionID/days", hb.Picker.DayStatusesHandler)
		api.DELETE("/sessions/:sessionID", hb.Picker.EndSessionHandler)
	}
}

// RegisterCalendarRoutes registers the month overview endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.GET("", hb.Calendar.MonthViewHandler)
		api.GET("/day/:date", hb.Calendar.DayDetailsHandler)
	}
}

// RegisterReservationRoutes registers the booking workflow endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.POST("", hb.Reservations.CreateHandler)
		api.GET("/:id", hb.Reservations.GetHandler)
		api.PATCH("/:id/dates", hb.Reservations.UpdateDatesHandler)
		api.PATCH("/:id/status", hb.Reservations.TransitionHandler)
	}
}

// RegisterInventoryRoutes registers room and location endpoints.
func RegisterInventoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/locations", hb.Inventory.ListLocationsHandler)
		api.GET("/rooms", hb.Inventory.ListRoomsHandler)
		api.GET("/rooms/:id", hb.Inventory.GetRoomHandler)
		api.POST("/rooms", hb.Inventory.CreateRoomHandler)
		api.PATCH("/rooms/:id/active", hb.Inventory.SetRoomActiveHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAvailabilityRoutes(r, hb)
	RegisterPickerRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterInventoryRoutes(r, hb)
	RegisterHealthRoute(r)
}
