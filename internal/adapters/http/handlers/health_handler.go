package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/task-saga-service/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthResponse is the body of both probe endpoints. Checks is omitted by
// the liveness probe.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler returns a HealthHandler backed by registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is the check.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready: 200 when every registered check
// passes, 503 with the failing checks' messages otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := HealthResponse{
		Status: statusReady,
		Checks: make(map[string]string, len(results)),
	}
	code := http.StatusOK
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, code, resp)
}
