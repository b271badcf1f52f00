// File: handlers/reservation.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/booking"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/services/scheduling"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReservationHandler serves the reservation write workflow.
type ReservationHandler struct {
	Bookings booking.BookingService
}

type createReservationRequest struct {
	RoomID     string `json:"roomId" binding:"required"`
	CheckIn    string `json:"checkIn" binding:"required"`
	CheckOut   string `json:"checkOut" binding:"required"`
	Status     string `json:"status"`
	GuestName  string `json:"guestName" binding:"required"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
	Notes      string `json:"notes"`
	Force      bool   `json:"force"`
}

// CreateHandler handles POST /api/reservations. A conflicting stay responds
// 409 with the blocking reservations so the client can offer alternatives or
// retry with force.
func (h *ReservationHandler) CreateHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	checkIn, checkOut, ok := parseRange(c, req.CheckIn, req.CheckOut)
	if !ok {
		return
	}

	res, err := h.Bookings.CreateReservation(c.Request.Context(), booking.CreateReservationInput{
		RoomID:       req.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       req.Status,
		GuestName:    req.GuestName,
		GuestEmail:   req.GuestEmail,
		GuestPhone:   req.GuestPhone,
		Adults:       req.Adults,
		Children:     req.Children,
		Notes:        req.Notes,
		Force:        req.Force,
	})
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	logger.Info("Reservation created via API", zap.String("reservationID", res.ID))
	c.JSON(http.StatusCreated, res)
}

// GetHandler handles GET /api/reservations/:id.
func (h *ReservationHandler) GetHandler(c *gin.Context) {
	id := c.Param("id")
	res, err := h.Bookings.GetReservation(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateDatesHandler handles PATCH /api/reservations/:id/dates.
func (h *ReservationHandler) UpdateDatesHandler(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		CheckIn  string `json:"checkIn" binding:"required"`
		CheckOut string `json:"checkOut" binding:"required"`
		Force    bool   `json:"force"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	checkIn, checkOut, ok := parseRange(c, req.CheckIn, req.CheckOut)
	if !ok {
		return
	}

	res, err := h.Bookings.UpdateReservationDates(c.Request.Context(), id, checkIn, checkOut, req.Force)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// TransitionHandler handles PATCH /api/reservations/:id/status.
func (h *ReservationHandler) TransitionHandler(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	res, err := h.Bookings.Transition(c.Request.Context(), id, req.Status)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ReservationHandler) respondBookingError(c *gin.Context, err error) {
	var conflict *booking.ConflictError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":     conflict.Error(),
			"conflicts": conflict.Conflicts,
		})
	case errors.Is(err, scheduling.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrRoomInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrInvalidTransition), errors.Is(err, booking.ErrReservationClosed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Reservation request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
