package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/artspires-api/internal/service"
	appErrors "github.com/noah-isme/artspires-api/pkg/errors"
	"github.com/noah-isme/artspires-api/pkg/response"
)

const livenessMessage = "art-spires-academy is running"

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics *service.MetricsService
	ready   Pinger
}

// NewMetricsHandler constructs a metrics handler. ready may be nil.
func NewMetricsHandler(metrics *service.MetricsService, ready Pinger) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, ready: ready}
}

// Root answers the liveness string.
func (h *MetricsHandler) Root(c *gin.Context) {
	response.Text(c, http.StatusOK, livenessMessage)
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health responds with a generic OK payload for liveness usage.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready pings the database and reports 503 when it is unreachable.
func (h *MetricsHandler) Ready(c *gin.Context) {
	if h.ready != nil {
		if err := h.ready(c.Request.Context()); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrUpstream.Code, http.StatusServiceUnavailable, "database unreachable"))
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
