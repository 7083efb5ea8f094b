package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker func() bool

// HealthController handles liveness and readiness probes.
type HealthController struct {
	checks map[string]HealthChecker
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
	Timestamp    string            `json:"timestamp"`
}

// NewHealthController creates a health controller over named dependency checks.
// A nil check reports the dependency as disabled.
func NewHealthController(checks map[string]HealthChecker) *HealthController {
	return &HealthController{checks: checks}
}

// Check handles GET /health. It always answers 200 with dependency states.
func (h *HealthController) Check(c *gin.Context) {
	deps, _ := h.probe()
	c.JSON(http.StatusOK, HealthResponse{
		Status:       "ok",
		Dependencies: deps,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready handles GET /health/ready. It answers 503 while any enabled dependency is down.
func (h *HealthController) Ready(c *gin.Context) {
	deps, ready := h.probe()
	status, code := "ready", http.StatusOK
	if !ready {
		status, code = "not_ready", http.StatusServiceUnavailable
	}
	c.JSON(code, HealthResponse{
		Status:       status,
		Dependencies: deps,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthController) probe() (map[string]string, bool) {
	deps := make(map[string]string, len(h.checks))
	ready := true
	for name, check := range h.checks {
		switch {
		case check == nil:
			deps[name] = "disabled"
		case check():
			deps[name] = "connected"
		default:
			deps[name] = "disconnected"
			ready = false
		}
	}
	return deps, ready
}
