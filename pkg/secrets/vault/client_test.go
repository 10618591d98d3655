package vault

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/redfish-sync/config"
)

func TestNewClient_WithInjectedClientAndPath(t *testing.T) {
	t.Parallel()

	injected := &api.Client{}

	client, err := NewClient(nil, WithClient(injected), WithPath("secret/data/custom"))
	require.NoError(t, err)
	assert.Equal(t, injected, client.client)
	assert.Equal(t, "secret/data/custom", client.path)
}

func TestNewClient_ConfigWithPath(t *testing.T) {
	t.Parallel()

	client, err := NewClient(&config.Secrets{
		Address: "http://localhost:8200",
		Token:   "test-token",
		Path:    "secret/data/myapp",
	})
	require.NoError(t, err)
	assert.NotNil(t, client.client)
	assert.Equal(t, "secret/data/myapp", client.path)
}

func vaultServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/v1/secret/data/redfish-sync/keys":
			assert.Equal(t, "test-token", r.Header.Get("X-Vault-Token"))

			_, _ = w.Write([]byte(`{"data":{"data":{"bmc_password":"s3cret","pin":1234}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[]}`))
		}
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestGetKeyValue(t *testing.T) {
	t.Parallel()

	srv := vaultServer(t)

	client, err := NewClient(&config.Secrets{Address: srv.URL, Token: "test-token"})
	require.NoError(t, err)

	ctx := context.Background()

	value, err := client.GetKeyValue(ctx, "bmc_password")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", value)

	_, err = client.GetKeyValue(ctx, "missing")
	require.ErrorIs(t, err, ErrSecretNotFound)

	_, err = client.GetKeyValue(ctx, "pin")
	require.ErrorIs(t, err, ErrUnexpectedFormat)
}

func TestGetKeyValue_PathMissing(t *testing.T) {
	t.Parallel()

	srv := vaultServer(t)

	client, err := NewClient(&config.Secrets{Address: srv.URL, Token: "test-token", Path: "secret/data/other"})
	require.NoError(t, err)

	_, err = client.GetKeyValue(context.Background(), "bmc_password")
	require.ErrorIs(t, err, ErrSecretNotFound)
}
