// File: handlers/calendar.go
package handlers

import (
	"net/http"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/calendar"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler serves the month overview and the per-day drill-down.
type CalendarHandler struct {
	Calendar calendar.CalendarService
}

// MonthViewHandler handles GET /api/calendar?year=&month=&locationId=.
func (h *CalendarHandler) MonthViewHandler(c *gin.Context) {
	year, month, ok := parseMonth(c)
	if !ok {
		return
	}
	locationID := c.Query("locationId")

	layout, err := h.Calendar.MonthView(c.Request.Context(), locationID, year, month)
	if err != nil {
		utils.GetLogger().Error("Failed to build month view",
			zap.Int("year", year), zap.Int("month", int(month)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build month view"})
		return
	}
	c.JSON(http.StatusOK, layout)
}

// DayDetailsHandler handles GET /api/calendar/day/:date?locationId=. It backs
// the "+N more" affordance with the full list for the day.
func (h *CalendarHandler) DayDetailsHandler(c *gin.Context) {
	day, err := utils.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}
	locationID := c.Query("locationId")

	reservations, err := h.Calendar.DayDetails(c.Request.Context(), locationID, day)
	if err != nil {
		utils.GetLogger().Error("Failed to load day details",
			zap.Time("day", day), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load day details"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"date":         day.Format(utils.DateLayout),
		"reservations": reservations,
	})
}
