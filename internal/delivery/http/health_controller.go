package http

import (
	"net/http"
	"time"
)

// HealthResponse is the response body for GET /health
type HealthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

type HealthController struct {
	Version string
}

func NewHealthController(version string) *HealthController {
	return &HealthController{Version: version}
}

// Health godoc
// @Summary Health check
// @Description Returns service status, version, and current server time.
// @Tags health
// @Produce json
// @Success 200 {object} APIResponse "data contains status, version, timestamp"
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSONSuccess(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   c.Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
