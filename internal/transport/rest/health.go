package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// schemaInspector reports the applied migration version.
type schemaInspector interface {
	SchemaStatus(ctx context.Context) (version int64, pending bool, err error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	schema  schemaInspector
	version string
}

// NewHealthHandler creates a HealthHandler. schema may be nil, in which case
// the schema component is not reported.
func NewHealthHandler(db dbPinger, schema schemaInspector, version string) *HealthHandler {
	return &HealthHandler{db: db, schema: schema, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live answers liveness checks. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready answers readiness checks: 200 when the database answers and no migration
// is pending, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := h.check(ctx)
	status, overall := http.StatusOK, "ok"
	for _, c := range components {
		if c.Status != "ok" {
			status, overall = http.StatusServiceUnavailable, "down"
		}
	}

	writeJSON(w, status, HealthResponse{
		Status:    overall,
		Timestamp: time.Now(),
	})
}

// Health is the full health check with per-component detail and version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := h.check(ctx)
	status, overall := http.StatusOK, "ok"
	for _, c := range components {
		if c.Status != "ok" {
			status, overall = http.StatusServiceUnavailable, "down"
		}
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) check(ctx context.Context) map[string]CompStatus {
	components := make(map[string]CompStatus, 2)

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: "down"}
		return components
	}
	components["database"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}

	if h.schema == nil {
		return components
	}
	version, pending, err := h.schema.SchemaStatus(ctx)
	switch {
	case err != nil:
		components["schema"] = CompStatus{Status: "down"}
	case pending:
		components["schema"] = CompStatus{Status: "pending", Detail: "version " + strconv.FormatInt(version, 10)}
	default:
		components["schema"] = CompStatus{Status: "ok", Detail: "version " + strconv.FormatInt(version, 10)}
	}
	return components
}
