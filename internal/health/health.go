package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const checkTimeout = 2 * time.Second

// Check reports whether one dependency is reachable.
type Check func(ctx context.Context) error

// Handler serves the liveness and readiness endpoints.
type Handler struct {
	service string
	checks  map[string]Check
}

// NewHandler creates a handler for the named service. checks are run by the
// readiness endpoint, keyed by dependency name.
func NewHandler(service string, checks map[string]Check) *Handler {
	if checks == nil {
		checks = map[string]Check{}
	}
	return &Handler{service: service, checks: checks}
}

// RegisterRoutes registers GET /health and GET /health/ready.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.Live)
	r.GET("/health/ready", h.Ready)
}

// Live reports that the process is serving requests.
func (h *Handler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": h.service})
}

// Ready runs every dependency check.
func (h *Handler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	status := http.StatusOK
	results := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			results[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		results[name] = "ok"
	}

	state := "ok"
	if status != http.StatusOK {
		state = "degraded"
	}
	c.JSON(status, gin.H{"status": state, "service": h.service, "checks": results})
}
