package controllers

import (
	"net/http"

	"github.com/blogem/lead-api/services"
)

const contentTypeJSON = "application/json"

// writeJSON writes an already encoded JSON body with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	w.Write([]byte(body))
}

// Controllers holds all controller instances
type Controllers struct {
	Lambda *LambdaController
	Lead   *LeadController
	Health *HealthController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, db Pinger) *Controllers {
	return &Controllers{
		Lambda: NewLambdaController(services),
		Lead:   NewLeadController(services),
		Health: NewHealthController(db),
	}
}
