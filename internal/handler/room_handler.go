package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hotel-desk/service-booking/internal/application"
	"github.com/hotel-desk/service-booking/internal/response"
)

// RoomHandler handles HTTP requests for hotel rooms.
type RoomHandler struct {
	service *application.RoomService
}

// NewRoomHandler creates a new RoomHandler.
func NewRoomHandler(service *application.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// RegisterRoutes registers the nested hotel room routes and the room routes.
func (h *RoomHandler) RegisterRoutes(r *gin.RouterGroup) {
	hotelRooms := r.Group("/api/v1/hotels/:id/rooms")
	{
		hotelRooms.POST("", h.CreateRoom)
		hotelRooms.GET("", h.ListRooms)
	}

	rooms := r.Group("/api/v1/rooms")
	{
		rooms.GET("/:id", h.GetRoom)
		rooms.DELETE("/:id", h.DeleteRoom)
	}
}

// CreateRoom handles POST /api/v1/hotels/:id/rooms.
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	hotelID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid hotel ID")
		return
	}

	var req application.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AddRoom(c.Request.Context(), hotelID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListRooms handles GET /api/v1/hotels/:id/rooms.
func (h *RoomHandler) ListRooms(c *gin.Context) {
	hotelID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid hotel ID")
		return
	}

	result, err := h.service.ListRooms(c.Request.Context(), hotelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetRoom handles GET /api/v1/rooms/:id.
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid room ID")
		return
	}

	result, err := h.service.GetRoom(c.Request.Context(), roomID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteRoom handles DELETE /api/v1/rooms/:id.
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	roomID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid room ID")
		return
	}

	if err := h.service.DeleteRoom(c.Request.Context(), roomID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
