package secrets

import (
	"context"
	"fmt"

	"github.com/blogem/lead-api/models"
)

// StaticStore serves credential pairs held in memory, for local runs
type StaticStore struct {
	secrets map[string]models.Credentials
}

// NewStaticStore creates an empty static store
func NewStaticStore() *StaticStore {
	return &StaticStore{secrets: make(map[string]models.Credentials)}
}

// Set stores a credential pair under name
func (s *StaticStore) Set(name string, creds models.Credentials) {
	s.secrets[name] = creds
}

// GetCredentials returns the pair stored under name
func (s *StaticStore) GetCredentials(_ context.Context, name string) (models.Credentials, error) {
	creds, ok := s.secrets[name]
	if !ok {
		return models.Credentials{}, fmt.Errorf("%w: %s", ErrSecretNotFound, name)
	}
	if !creds.IsComplete() {
		return models.Credentials{}, fmt.Errorf("secret %s: %w", name, ErrMalformedSecret)
	}
	return creds, nil
}
