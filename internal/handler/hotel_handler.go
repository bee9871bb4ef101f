package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hotel-desk/service-booking/internal/application"
	"github.com/hotel-desk/service-booking/internal/response"
)

// HotelHandler handles HTTP requests for the hotel catalog.
type HotelHandler struct {
	service *application.HotelService
}

// NewHotelHandler creates a new HotelHandler.
func NewHotelHandler(service *application.HotelService) *HotelHandler {
	return &HotelHandler{service: service}
}

// RegisterRoutes registers all hotel routes.
func (h *HotelHandler) RegisterRoutes(r *gin.RouterGroup) {
	hotels := r.Group("/api/v1/hotels")
	{
		hotels.POST("", h.CreateHotel)
		hotels.GET("", h.ListHotels)
		hotels.GET("/:id", h.GetHotel)
		hotels.DELETE("/:id", h.DeleteHotel)
	}
}

// CreateHotel handles POST /api/v1/hotels.
func (h *HotelHandler) CreateHotel(c *gin.Context) {
	var req application.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AddHotel(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListHotels handles GET /api/v1/hotels. The optional q parameter filters by keyword.
func (h *HotelHandler) ListHotels(c *gin.Context) {
	result, err := h.service.SearchHotels(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetHotel handles GET /api/v1/hotels/:id.
func (h *HotelHandler) GetHotel(c *gin.Context) {
	hotelID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid hotel ID")
		return
	}

	result, err := h.service.GetHotel(c.Request.Context(), hotelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteHotel handles DELETE /api/v1/hotels/:id.
func (h *HotelHandler) DeleteHotel(c *gin.Context) {
	hotelID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid hotel ID")
		return
	}

	if err := h.service.DeleteHotel(c.Request.Context(), hotelID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
