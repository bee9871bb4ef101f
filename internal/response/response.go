package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hotel-desk/service-booking/internal/domain"
)

// Body is the envelope of every JSON response.
type Body struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
	Meta    *Meta      `json:"meta,omitempty"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta carries pagination details.
type Meta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// Success writes 200 with data.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Body{Success: true, Data: data})
}

// Created writes 201 with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Body{Success: true, Data: data})
}

// NoContent writes 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Paginated writes 200 with one page of items.
func Paginated(c *gin.Context, items any, total int64, page, limit int) {
	c.JSON(http.StatusOK, Body{
		Success: true,
		Data:    items,
		Meta:    &Meta{Total: total, Page: page, Limit: limit},
	})
}

// BadRequest writes 400 for malformed input that never reached the domain.
func BadRequest(c *gin.Context, message string) {
	abort(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

// Error maps a domain error kind to its HTTP status. Unknown errors become 500
// without exposing their message.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		abort(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		abort(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrConflict):
		abort(c, http.StatusConflict, "CONFLICT", err.Error())
	default:
		_ = c.Error(err)
		abort(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, Body{Error: &ErrorBody{Code: code, Message: message}})
}
