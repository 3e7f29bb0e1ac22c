// Package health exposes liveness and readiness endpoints. The service
// has no external dependencies to probe; readiness reflects the shutdown
// gate and reports live object counts.
package health

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
)

var ready atomic.Bool

func init() {
	ready.Store(true)
}

// SetReady flips the readiness gate, used during graceful shutdown.
func SetReady(value bool) {
	ready.Store(value)
}

// Snapshot reports live object counts in the readiness payload.
type Snapshot struct {
	Products int `json:"products"`
	Coupons  int `json:"coupons"`
	Carts    int `json:"carts"`
}

// Snapshotter supplies the counts for the readiness payload.
type Snapshotter interface {
	Snapshot() Snapshot
}

// Handler exposes HTTP handlers for health endpoints.
type Handler struct {
	Stats Snapshotter
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness and the current catalog/cart counts.
func (h Handler) Ready(w http.ResponseWriter, _ *http.Request) {
	status := "ok"
	code := http.StatusOK
	if !ready.Load() {
		status = "shutting down"
		code = http.StatusServiceUnavailable
	}
	payload := map[string]any{"status": status}
	if h.Stats != nil {
		payload["counts"] = h.Stats.Snapshot()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}
