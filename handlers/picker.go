// File: handlers/picker.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/picker"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PickerHandler serves the date-picker session endpoints.
type PickerHandler struct {
	Sessions picker.SessionService
}

// StartSessionHandler handles POST /api/picker/sessions.
func (h *PickerHandler) StartSessionHandler(c *gin.Context) {
	var req struct {
		RoomID    string `json:"roomId" binding:"required"`
		ExcludeID string `json:"excludeId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sessionID, err := h.Sessions.StartSession(c.Request.Context(), req.RoomID, req.ExcludeID)
	if err != nil {
		utils.GetLogger().Error("Failed to start picker session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start picker session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID})
}

// FillMonthHandler handles POST /api/picker/sessions/:sessionID/months. It
// populates the session cache for the requested month and returns the per-day
// statuses known afterwards.
func (h *PickerHandler) FillMonthHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	year, month, ok := parseMonth(c)
	if !ok {
		return
	}

	if _, err := h.Sessions.FillMonth(c.Request.Context(), sessionID, year, month); err != nil {
		if errors.Is(err, picker.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to fill picker month",
			zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load month availability"})
		return
	}

	h.respondDayStatuses(c, sessionID, year, month)
}

// DayStatusesHandler handles GET /api/picker/sessions/:sessionID/days.
func (h *PickerHandler) DayStatusesHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	year, month, ok := parseMonth(c)
	if !ok {
		return
	}
	h.respondDayStatuses(c, sessionID, year, month)
}

// EndSessionHandler handles DELETE /api/picker/sessions/:sessionID.
func (h *PickerHandler) EndSessionHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Sessions.EndSession(c.Request.Context(), sessionID); err != nil {
		utils.GetLogger().Error("Failed to end picker session",
			zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to end picker session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session ended"})
}

func (h *PickerHandler) respondDayStatuses(c *gin.Context, sessionID string, year int, month time.Month) {
	statuses, err := h.Sessions.DayStatuses(c.Request.Context(), sessionID, year, month)
	if err != nil {
		if errors.Is(err, picker.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to read picker day statuses",
			zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read day statuses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionID": sessionID,
		"year":      year,
		"month":     int(month),
		"days":      statuses,
	})
}

// parseMonth decodes the year and month query parameters, answering the
// request itself on failure.
func parseMonth(c *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing year"})
		return 0, 0, false
	}
	m, err := strconv.Atoi(c.Query("month"))
	if err != nil || m < 1 || m > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing month"})
		return 0, 0, false
	}
	return year, time.Month(m), true
}
