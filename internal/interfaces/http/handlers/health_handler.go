package handlers

import (
	"net/http"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	modelLoaded  func() bool
	cacheHealthy func(r *http.Request) bool
	version      string
}

// NewHealthHandler builds the probe handler from status callbacks.
func NewHealthHandler(modelLoaded func() bool, cacheHealthy func(r *http.Request) bool, version string) *HealthHandler {
	return &HealthHandler{modelLoaded: modelLoaded, cacheHealthy: cacheHealthy, version: version}
}

type healthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	ModelLoaded bool   `json:"model_loaded"`
	Cache       string `json:"cache"`
}

// Healthz is the liveness probe.  It always succeeds while the process
// serves requests.
func (h *HealthHandler) Healthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz is the readiness probe.  The service is ready even without a model
// bundle (predictions degrade to the fallback path); an unreachable cache
// is reported but does not fail readiness either.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	cache := "ok"
	if !h.cacheHealthy(r) {
		cache = "unreachable"
	}
	respondJSON(w, http.StatusOK, healthResponse{
		Status:      "ready",
		Version:     h.version,
		ModelLoaded: h.modelLoaded(),
		Cache:       cache,
	})
}
