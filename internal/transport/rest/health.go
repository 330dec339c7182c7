package rest

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const healthCheckTimeout = 3 * time.Second

// HealthCheck probes one dependency. A failing critical check takes the
// service down; a failing non-critical one only degrades it.
type HealthCheck struct {
	Name     string
	Critical bool
	Check    func(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	version string
	checks  []HealthCheck
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(version string, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{version: version, checks: checks}
}

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status   string `json:"status"`
	Critical bool   `json:"critical"`
	Latency  string `json:"latency,omitempty"`
}

const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

// Live always returns 200 while the process can serve HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Version:   h.version,
		Timestamp: time.Now(),
	})
}

// Ready runs the critical checks only: 200 if all pass, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	components := h.run(r.Context(), true)

	status, code := statusOK, http.StatusOK
	for _, c := range components {
		if c.Status != statusOK {
			status, code = statusDown, http.StatusServiceUnavailable
			break
		}
	}

	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health runs every check and reports each component with its latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := h.run(r.Context(), false)

	status, code := statusOK, http.StatusOK
	for _, c := range components {
		if c.Status == statusOK {
			continue
		}
		if c.Critical {
			status, code = statusDown, http.StatusServiceUnavailable
			break
		}
		status = statusDegraded
	}

	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// run executes the selected checks concurrently under a shared timeout.
func (h *HealthHandler) run(ctx context.Context, criticalOnly bool) map[string]CompStatus {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	var (
		mu         sync.Mutex
		components = make(map[string]CompStatus, len(h.checks))
		g          errgroup.Group
	)
	for _, hc := range h.checks {
		if criticalOnly && !hc.Critical {
			continue
		}
		g.Go(func() error {
			start := time.Now()
			err := hc.Check(ctx)
			cs := CompStatus{Status: statusOK, Critical: hc.Critical}
			if err != nil {
				cs.Status = statusDown
			} else {
				cs.Latency = time.Since(start).String()
			}
			mu.Lock()
			components[hc.Name] = cs
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return components
}
