package hc

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler reports version and uptime, and fails with 503 while db is unreachable.
func Handler(version string, db Pinger) http.Handler {
	t := time.Now()
	fn := func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		body := map[string]any{
			"version": version,
			"uptime":  time.Since(t).String(),
		}

		if db != nil {
			if err := db.PingContext(r.Context()); err != nil {
				status = http.StatusServiceUnavailable
				body["error"] = err.Error()
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}

	return http.HandlerFunc(fn)
}
