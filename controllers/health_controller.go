package controllers

import (
	"context"
	"net/http"
)

// Pinger is satisfied by the database handle
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthController reports whether the service can reach its database
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new health controller
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Check handles GET /health
func (c *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	if c.db != nil {
		if err := c.db.PingContext(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, `{"status": "unhealthy", "service": "lead-api"}`)
			return
		}
	}
	writeJSON(w, http.StatusOK, `{"status": "healthy", "service": "lead-api"}`)
}
