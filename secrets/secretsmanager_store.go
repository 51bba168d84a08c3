package secrets

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"

	"github.com/blogem/lead-api/models"
)

// SecretsManagerAPI is the subset of the Secrets Manager client used here
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerStore reads credential pairs from AWS Secrets Manager
type SecretsManagerStore struct {
	client SecretsManagerAPI
}

// NewSecretsManagerStore creates a store backed by the given client
func NewSecretsManagerStore(client SecretsManagerAPI) *SecretsManagerStore {
	return &SecretsManagerStore{client: client}
}

// NewSecretsManagerStoreFromDefaultConfig creates a store using the default
// AWS credential chain (the Lambda execution role when deployed)
func NewSecretsManagerStoreFromDefaultConfig(ctx context.Context) (*SecretsManagerStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewSecretsManagerStore(secretsmanager.NewFromConfig(awsCfg)), nil
}

// GetCredentials fetches the current version of the named secret
func (s *SecretsManagerStore) GetCredentials(ctx context.Context, name string) (models.Credentials, error) {
	if name == "" {
		return models.Credentials{}, fmt.Errorf("secret name is required")
	}

	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return models.Credentials{}, fmt.Errorf("%w: %s", ErrSecretNotFound, name)
		}
		return models.Credentials{}, fmt.Errorf("failed to get secret %s: %w", name, err)
	}

	if out.SecretString == nil {
		return models.Credentials{}, fmt.Errorf("%w: %s", ErrSecretNotString, name)
	}

	creds, err := ParseCredentials(aws.ToString(out.SecretString))
	if err != nil {
		return models.Credentials{}, fmt.Errorf("secret %s: %w", name, err)
	}
	return creds, nil
}
