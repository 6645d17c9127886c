package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oszuidwest/zwfm-beacon/internal/metrics"
	"github.com/oszuidwest/zwfm-beacon/internal/transmission"
	"github.com/oszuidwest/zwfm-beacon/pkg/version"
)

// TransmissionsResponse is the JSON view of the transmission log.
type TransmissionsResponse struct {
	LastGeneratedAt int64                `json:"last_generated_at"`
	Entries         []transmission.Entry `json:"entries"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// ListTransmissions returns the log newest first, refreshing it first like the home page does.
func (h *Handlers) ListTransmissions(c *gin.Context) {
	h.transmissions.Refresh(metrics.TriggerRequest)

	state := h.transmissions.State()
	c.JSON(http.StatusOK, TransmissionsResponse{
		LastGeneratedAt: state.LastGeneratedAt,
		Entries:         state.Entries,
	})
}

// Health reports liveness and build version.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: "beacon",
		Version: version.Version,
	})
}
