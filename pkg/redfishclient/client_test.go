package redfishclient_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/redfish-sync/pkg/logger"
	"github.com/device-management-toolkit/redfish-sync/pkg/redfishclient"
)

func TestClientRequests(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _, _ := r.BasicAuth()
		b, _ := io.ReadAll(r.Body)

		w.Header().Set("X-Method", r.Method)
		w.Header().Set("X-User", user)
		w.Header().Set("X-Body", string(b))
		w.Header().Set("ETag", `W/"42"`)
		w.Header().Set("Location", "https://bmc.example/redfish/v1/Systems/2")

		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusCreated)
		}

		_, _ = w.Write([]byte(`{"@odata.id":"` + r.URL.Path + `"}`))
	}))
	defer srv.Close()

	c := redfishclient.New(srv.URL+"/", logger.New("error"), redfishclient.WithBasicAuth("admin", "secret"))
	ctx := context.Background()

	resp, err := c.Get(ctx, "/redfish/v1/Systems/1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, resp.Header.Get("X-Method"))
	assert.Equal(t, "admin", resp.Header.Get("X-User"))
	assert.JSONEq(t, `{"@odata.id":"/redfish/v1/Systems/1"}`, string(resp.Body))
	assert.Equal(t, `W/"42"`, resp.ETag())

	resp, err = c.Post(ctx, "redfish/v1/Systems", []byte(`{"Name":"x"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, `{"Name":"x"}`, resp.Header.Get("X-Body"))
	assert.Equal(t, "/redfish/v1/Systems/2", resp.Location())

	resp, err = c.Patch(ctx, "/redfish/v1/Systems/1", []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, resp.Header.Get("X-Method"))

	resp, err = c.Put(ctx, "/redfish/v1/Systems/1", []byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, resp.Header.Get("X-Method"))

	resp, err = c.Delete(ctx, "/redfish/v1/Systems/1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, resp.Header.Get("X-Method"))
}

func TestClientHTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"nope"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	c := redfishclient.New(srv.URL, logger.New("error"))

	_, err := c.Get(context.Background(), "/redfish/v1/Missing")
	require.Error(t, err)

	var httpErr *redfishclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, http.MethodGet, httpErr.Method)
	assert.Contains(t, err.Error(), "status 404")
}

func TestResponseLocationRelative(t *testing.T) {
	t.Parallel()

	resp := &redfishclient.Response{Header: http.Header{"Location": []string{"/redfish/v1/Systems/3"}}}
	assert.Equal(t, "/redfish/v1/Systems/3", resp.Location())

	resp = &redfishclient.Response{Header: http.Header{}}
	assert.Empty(t, resp.Location())
}
