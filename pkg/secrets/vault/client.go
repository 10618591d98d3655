// Package vault reads the BMC credentials from HashiCorp Vault (KV v2).
package vault

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/vault/api"

	"github.com/device-management-toolkit/redfish-sync/config"
)

// DefaultSecretPath is used when no path is configured.
const DefaultSecretPath = "secret/data/redfish-sync"

var (
	// ErrSecretNotFound is returned when the path or the key is absent.
	ErrSecretNotFound = errors.New("vault - secret not found")

	// ErrUnexpectedFormat is returned when the secret is not a KV v2 document of strings.
	ErrUnexpectedFormat = errors.New("vault - unexpected secret format")
)

// Client -.
type Client struct {
	client *api.Client
	path   string
}

// Option -.
type Option func(*Client)

// WithPath sets a custom path for secrets storage.
func WithPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.path = path
		}
	}
}

// WithClient sets a pre-configured Vault API client.
func WithClient(client *api.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient -.
func NewClient(cfg *config.Secrets, opts ...Option) (*Client, error) {
	c := &Client{path: DefaultSecretPath}

	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		vaultConfig := api.DefaultConfig()
		vaultConfig.Address = cfg.Address

		client, err := api.NewClient(vaultConfig)
		if err != nil {
			return nil, fmt.Errorf("vault - NewClient: %w", err)
		}

		client.SetToken(cfg.Token)
		c.client = client
	}

	if cfg != nil && cfg.Path != "" && c.path == DefaultSecretPath {
		c.path = cfg.Path
	}

	return c, nil
}

// GetKeyValue reads field key of the secret stored at {path}/keys.
func (c *Client) GetKeyValue(ctx context.Context, key string) (string, error) {
	secretPath := c.path + "/keys"

	secret, err := c.client.Logical().ReadWithContext(ctx, secretPath)
	if err != nil {
		return "", fmt.Errorf("vault - GetKeyValue - %s: %w", secretPath, err)
	}

	if secret == nil {
		return "", fmt.Errorf("%w: path %s", ErrSecretNotFound, secretPath)
	}

	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedFormat, secretPath)
	}

	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("%w: key %s at %s", ErrSecretNotFound, key, secretPath)
	}

	strValue, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: value of %s is not a string", ErrUnexpectedFormat, key)
	}

	return strValue, nil
}
