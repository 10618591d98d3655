package httpserver_test

import (
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/device-management-toolkit/redfish-sync/pkg/httpserver"
)

func TestServeAndShutdown(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	s := httpserver.New(handler, httpserver.Listener(ln), httpserver.ShutdownTimeout(time.Second))
	assert.Equal(t, ln.Addr().String(), s.Addr())

	resp, err := http.Get("http://" + s.Addr() + "/")
	require.NoError(t, err)

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "ok", string(b))

	require.NoError(t, s.Shutdown())

	select {
	case err := <-s.Notify():
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestNotifyReportsListenFailure(t *testing.T) {
	t.Parallel()

	s := httpserver.New(http.NotFoundHandler(), httpserver.Port("256.0.0.1", "0"))

	select {
	case err := <-s.Notify():
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a listen error")
	}
}
