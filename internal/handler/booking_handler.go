package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hotel-desk/service-booking/internal/application"
	"github.com/hotel-desk/service-booking/internal/response"
)

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers all booking routes on the given router group,
// including the per-hotel booking queries.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/api/v1/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:id", h.GetBooking)
		bookings.DELETE("/:id", h.DeleteBooking)
		bookings.PATCH("/:id/text", h.UpdateText)
		bookings.POST("/:id/confirm", h.ConfirmBooking)
		bookings.POST("/:id/cancel", h.CancelBooking)
		bookings.GET("/:id/price", h.GetPrice)
	}

	hotel := r.Group("/api/v1/hotels/:id")
	{
		hotel.GET("/requests", h.ListRequests)
		hotel.GET("/occupancy/reserved", h.ReservedPlaces)
		hotel.GET("/occupancy/free", h.FreePlaces)
		hotel.GET("/clients", h.ListClients)
	}
}

// CreateBooking handles POST /api/v1/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AddRequest(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// GetBooking handles GET /api/v1/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bookingID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	result, err := h.service.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteBooking handles DELETE /api/v1/bookings/:id.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	bookingID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	if err := h.service.DeleteRequest(c.Request.Context(), bookingID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// UpdateText handles PATCH /api/v1/bookings/:id/text.
func (h *BookingHandler) UpdateText(c *gin.Context) {
	bookingID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	var body struct {
		RequestText *string `json:"request_text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateRequestText(c.Request.Context(), bookingID, *body.RequestText)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ConfirmBooking handles POST /api/v1/bookings/:id/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	bookingID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	result, err := h.service.ConfirmBooking(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CancelBooking handles POST /api/v1/bookings/:id/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	result, err := h.service.CancelBooking(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetPrice handles GET /api/v1/bookings/:id/price.
func (h *BookingHandler) GetPrice(c *gin.Context) {
	bookingID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid booking ID")
		return
	}

	result, err := h.service.CalculateBookingPrice(c.Request.Context(), bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListRequests handles GET /api/v1/hotels/:id/requests?start=&end=.
func (h *BookingHandler) ListRequests(c *gin.Context) {
	hotelID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid hotel ID")
		return
	}
	start, end, err := parseWindow(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.GetRequestsInPeriod(c.Request.Context(), hotelID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ReservedPlaces handles GET /api/v1/hotels/:id/occupancy/reserved?start=&end=.
func (h *BookingHandler) ReservedPlaces(c *gin.Context) {
	hotelID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid hotel ID")
		return
	}
	start, end, err := parseWindow(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.GetReservedPlaces(c.Request.Context(), hotelID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// FreePlaces handles GET /api/v1/hotels/:id/occupancy/free?start=&end=.
func (h *BookingHandler) FreePlaces(c *gin.Context) {
	hotelID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid hotel ID")
		return
	}
	start, end, err := parseWindow(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.GetFreePlaces(c.Request.Context(), hotelID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListClients handles GET /api/v1/hotels/:id/clients.
func (h *BookingHandler) ListClients(c *gin.Context) {
	hotelID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid hotel ID")
		return
	}

	result, err := h.service.GetClientsWithBookings(c.Request.Context(), hotelID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
