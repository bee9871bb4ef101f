package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hotel-desk/service-booking/internal/application"
	"github.com/hotel-desk/service-booking/internal/response"
)

// ClientHandler handles HTTP requests for client management.
type ClientHandler struct {
	service *application.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(service *application.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// RegisterRoutes registers all client routes.
func (h *ClientHandler) RegisterRoutes(r *gin.RouterGroup) {
	clients := r.Group("/api/v1/clients")
	{
		clients.POST("", h.CreateClient)
		clients.GET("", h.ListClients)
		clients.POST("/sort", h.SortClients)
		clients.GET("/:id", h.GetClient)
		clients.PATCH("/:id", h.UpdateClient)
		clients.DELETE("/:id", h.DeleteClient)
	}
}

// CreateClient handles POST /api/v1/clients.
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req application.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AddClient(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListClients handles GET /api/v1/clients. The optional q parameter filters by keyword.
func (h *ClientHandler) ListClients(c *gin.Context) {
	result, err := h.service.SearchClients(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// SortClients handles POST /api/v1/clients/sort?by=first_name|last_name.
// The sorted order replaces the stored order.
func (h *ClientHandler) SortClients(c *gin.Context) {
	by := application.ClientSortKey(c.DefaultQuery("by", string(application.SortByLastName)))

	result, err := h.service.SortClients(c.Request.Context(), by)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetClient handles GET /api/v1/clients/:id.
func (h *ClientHandler) GetClient(c *gin.Context) {
	clientID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid client ID")
		return
	}

	result, err := h.service.GetClient(c.Request.Context(), clientID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateClient handles PATCH /api/v1/clients/:id.
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	clientID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid client ID")
		return
	}

	var req application.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateClient(c.Request.Context(), clientID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteClient handles DELETE /api/v1/clients/:id.
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	clientID, err := parseID(c, "id")
	if err != nil {
		response.BadRequest(c, "invalid client ID")
		return
	}

	if err := h.service.DeleteClient(c.Request.Context(), clientID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
