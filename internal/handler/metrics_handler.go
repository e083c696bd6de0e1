package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/kalender-api/internal/service"
	"github.com/noah-isme/kalender-api/pkg/response"
)

type holidayTableSizer interface {
	Len() int
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics  *service.MetricsService
	holidays holidayTableSizer
}

// NewMetricsHandler constructs a metrics handler. holidays may be nil.
func NewMetricsHandler(metrics *service.MetricsService, holidays holidayTableSizer) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, holidays: holidays}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health godoc
// @Summary Liveness probe
// @Tags Ops
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *MetricsHandler) Health(c *gin.Context) {
	body := gin.H{"status": "ok"}
	if h.holidays != nil {
		body["fixed_holidays"] = h.holidays.Len()
	}
	response.JSON(c, http.StatusOK, body)
}
