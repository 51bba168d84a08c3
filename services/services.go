package services

import (
	"github.com/rs/zerolog"

	"github.com/blogem/lead-api/models"
	"github.com/blogem/lead-api/repositories"
)

// Services holds all service instances
type Services struct {
	LeadRequest LeadRequestService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories, apiCredentials models.Credentials, logger zerolog.Logger) *Services {
	return &Services{
		LeadRequest: NewLeadRequestService(repos.Lead, repos.APIRecord, apiCredentials, logger),
	}
}
