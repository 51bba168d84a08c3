// Package secrets retrieves the credential pairs the API depends on.
//
// Both the API credentials and the database credentials are stored as JSON
// strings of the form {"username": "...", "password": "..."}. They are read
// once at process start and never logged.
package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/blogem/lead-api/config"
	"github.com/blogem/lead-api/models"
)

var (
	// ErrSecretNotFound is returned when a store holds no secret under the name
	ErrSecretNotFound = errors.New("secret not found")
	// ErrSecretNotString is returned for secrets stored as binary
	ErrSecretNotString = errors.New("secret has no string value")
	// ErrMalformedSecret is returned when the JSON is not a username/password pair
	ErrMalformedSecret = errors.New("secret is not a username/password pair")
)

// Store retrieves credential pairs by secret name
type Store interface {
	GetCredentials(ctx context.Context, name string) (models.Credentials, error)
}

// ParseCredentials decodes a secret string into a credential pair
func ParseCredentials(secretString string) (models.Credentials, error) {
	var creds models.Credentials
	if err := json.Unmarshal([]byte(secretString), &creds); err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %v", ErrMalformedSecret, err)
	}
	if !creds.IsComplete() {
		return models.Credentials{}, ErrMalformedSecret
	}
	return creds, nil
}

// NewStore creates the store selected by cfg.SecretsProvider
func NewStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.SecretsProvider {
	case config.SecretsProviderAWS:
		return NewSecretsManagerStoreFromDefaultConfig(ctx)
	case config.SecretsProviderEnv:
		store := NewStaticStore()
		store.Set(cfg.APISecretName, models.Credentials{
			Username: cfg.LocalAPIUsername,
			Password: cfg.LocalAPIPassword,
		})
		if cfg.RDSSecretName != "" {
			store.Set(cfg.RDSSecretName, models.Credentials{
				Username: cfg.LocalRDSUsername,
				Password: cfg.LocalRDSPassword,
			})
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported secrets provider: %s", cfg.SecretsProvider)
	}
}
