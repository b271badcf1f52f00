// File: handlers/availability.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/scheduling"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the availability check and the alternative-room
// search behind it.
type AvailabilityHandler struct {
	Checker      scheduling.AvailabilityChecker
	Alternatives scheduling.AlternativeFinder
}

type availabilityRequest struct {
	RoomID    string `json:"roomId" binding:"required"`
	CheckIn   string `json:"checkIn" binding:"required"`
	CheckOut  string `json:"checkOut" binding:"required"`
	ExcludeID string `json:"excludeId"`
}

// CheckHandler handles POST /api/availability/check. When the room is taken
// it responds 200 with the conflicts; alternatives are a separate call so the
// scatter/gather only runs when the client actually wants suggestions.
func (h *AvailabilityHandler) CheckHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	checkIn, checkOut, ok := parseRange(c, req.CheckIn, req.CheckOut)
	if !ok {
		return
	}

	result, err := h.Checker.Check(c.Request.Context(), req.RoomID, checkIn, checkOut, req.ExcludeID)
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Availability check failed", zap.String("roomID", req.RoomID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "availability check failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// AlternativesHandler handles POST /api/availability/alternatives.
func (h *AvailabilityHandler) AlternativesHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	checkIn, checkOut, ok := parseRange(c, req.CheckIn, req.CheckOut)
	if !ok {
		return
	}

	alts, err := h.Alternatives.FindAlternatives(c.Request.Context(), req.RoomID, checkIn, checkOut, req.ExcludeID)
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Alternative search failed", zap.String("roomID", req.RoomID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "alternative search failed"})
		return
	}
	c.JSON(http.StatusOK, alts)
}

// parseRange decodes a pair of YYYY-MM-DD dates, answering the request itself
// on failure.
func parseRange(c *gin.Context, checkIn, checkOut string) (start, end time.Time, ok bool) {
	start, err := utils.ParseDate(checkIn)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkIn date, expected YYYY-MM-DD"})
		return start, end, false
	}
	end, err = utils.ParseDate(checkOut)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkOut date, expected YYYY-MM-DD"})
		return start, end, false
	}
	return start, end, true
}
