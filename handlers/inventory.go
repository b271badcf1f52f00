// File: handlers/inventory.go
package handlers

import (
	"net/http"

	locationRepo "github.com/RavinduBA/Checking-Checkout-Web-sub001/database/repository/location"
	roomRepo "github.com/RavinduBA/Checking-Checkout-Web-sub001/database/repository/room"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/models"
	"github.com/RavinduBA/Checking-Checkout-Web-sub001/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InventoryHandler serves rooms and locations, the static side of the
// scheduling domain.
type InventoryHandler struct {
	Rooms     roomRepo.RoomRepository
	Locations locationRepo.LocationRepository
}

// ListLocationsHandler handles GET /api/locations.
func (h *InventoryHandler) ListLocationsHandler(c *gin.Context) {
	locations, err := h.Locations.ListActive(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list locations", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list locations"})
		return
	}
	c.JSON(http.StatusOK, locations)
}

// ListRoomsHandler handles GET /api/rooms?locationId=. Rooms come back in
// room-number order.
func (h *InventoryHandler) ListRoomsHandler(c *gin.Context) {
	rooms, err := h.Rooms.ListActive(c.Request.Context(), c.Query("locationId"))
	if err != nil {
		utils.GetLogger().Error("Failed to list rooms", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomHandler handles GET /api/rooms/:id.
func (h *InventoryHandler) GetRoomHandler(c *gin.Context) {
	room, err := h.Rooms.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoomHandler handles POST /api/rooms.
func (h *InventoryHandler) CreateRoomHandler(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if room.LocationID == "" || room.RoomNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "locationId and roomNumber are required"})
		return
	}
	room.Active = true

	if err := h.Rooms.Create(c.Request.Context(), &room); err != nil {
		utils.GetLogger().Error("Failed to create room", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create room"})
		return
	}
	c.JSON(http.StatusCreated, room)
}

// SetRoomActiveHandler handles PATCH /api/rooms/:id/active. Deactivated rooms
// keep their reservations but stop taking new ones.
func (h *InventoryHandler) SetRoomActiveHandler(c *gin.Context) {
	var req struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	id := c.Param("id")
	if err := h.Rooms.SetActive(c.Request.Context(), id, *req.Active); err != nil {
		utils.GetLogger().Error("Failed to update room", zap.String("roomID", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room updated"})
}
