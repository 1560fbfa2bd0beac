package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/demo-bd/internal/adapters/http/dto"
	"github.com/jsamuelsen11/demo-bd/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler handles the probe endpoints under /health and the service
// status endpoints under /v1/health.
type HealthHandler struct {
	registry ports.HealthRegistry
	info     ports.InfoService
}

// NewHealthHandler creates a new HealthHandler with the given health registry
// and service information source.
func NewHealthHandler(registry ports.HealthRegistry, info ports.InfoService) *HealthHandler {
	return &HealthHandler{registry: registry, info: info}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if all checks pass,
// 503 if any check fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	healthy := true
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			healthy = false
		} else {
			checks[name] = statusOK
		}
	}

	resp := dto.HealthResponse{Status: statusReady, Checks: checks}
	code := http.StatusOK
	if !healthy {
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, r, code, resp)
}

// Status handles GET /v1/health/status.
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.StatusResponse{Message: h.info.StatusMessage(r.Context())})
}

// Info handles GET /v1/health/info.
func (h *HealthHandler) Info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.ToInfoResponse(h.info.Info(r.Context())))
}

// CustomErrorTest handles GET /v1/health/custom_error_test. It always answers
// with a sample 400 problem carrying extension members and a Retry-After
// header, so that clients can exercise their problem+json handling.
func (h *HealthHandler) CustomErrorTest(w http.ResponseWriter, r *http.Request) {
	dto.WriteErrorResponse(w, r, &dto.ProblemError{
		Status: http.StatusBadRequest,
		Detail: "This was a bad request to the API.",
		Extensions: map[string]any{
			"service_1": "down",
			"service_2": "up",
			"matadata":  map[string]string{"key": "value"},
		},
		Headers: map[string]string{"Retry-After": "30"},
	})
}
