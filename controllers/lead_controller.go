package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/blogem/lead-api/models"
	"github.com/blogem/lead-api/services"
)

// LeadController handles lead lookups over plain HTTP in local mode
type LeadController struct {
	services *services.Services
}

// NewLeadController creates a new lead controller
func NewLeadController(services *services.Services) *LeadController {
	return &LeadController{
		services: services,
	}
}

// Lookup handles GET / and GET /leads
func (c *LeadController) Lookup(w http.ResponseWriter, r *http.Request) {
	sourceIP, proxyIP := clientIP(r)

	req := &models.LeadRequest{
		RequestID:         middleware.GetReqID(r.Context()),
		QueryParameters:   queryParameters(r),
		SourceIP:          sourceIP,
		ForwardingProxyIP: proxyIP,
	}

	response := c.services.LeadRequest.HandleLeadRequest(r.Context(), req)

	writeJSON(w, response.StatusCode, response.Body)
}

// queryParameters flattens the query string the way API Gateway does: the
// last value of a repeated key wins. A request without a query string yields
// a nil map.
func queryParameters(r *http.Request) map[string]string {
	if r.URL.RawQuery == "" {
		return nil
	}

	values := r.URL.Query()
	params := make(map[string]string, len(values))
	for key, vals := range values {
		params[key] = vals[len(vals)-1]
	}
	return params
}
