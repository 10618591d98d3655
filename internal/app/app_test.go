package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/device-management-toolkit/redfish-sync/config"
	"github.com/device-management-toolkit/redfish-sync/pkg/logger"
)

const biosURI = "/redfish/v1/Systems/1/Bios"

// fakeBMC serves one Bios resource that applies PATCHed attributes and an
// empty task collection.
type fakeBMC struct {
	mu      sync.Mutex
	attrs   map[string]any
	version int
	patches []string
}

func (b *fakeBMC) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path == biosURI && r.Method == http.MethodGet:
		doc, _ := json.Marshal(map[string]any{
			"@odata.id":         biosURI,
			"@odata.type":       "#Bios.v1_1_0.Bios",
			"AttributeRegistry": "BiosAttributeRegistry.v1_0_0",
			"Attributes":        b.attrs,
		})
		w.Header().Set("ETag", fmt.Sprintf(`W/"%d"`, b.version))
		_, _ = w.Write(doc)
	case r.URL.Path == biosURI && r.Method == http.MethodPatch:
		body, _ := io.ReadAll(r.Body)
		b.patches = append(b.patches, string(body))

		gjson.GetBytes(body, "Attributes").ForEach(func(k, v gjson.Result) bool {
			b.attrs[k.String()] = v.Value()

			return true
		})

		b.version++
		w.Header().Set("ETag", fmt.Sprintf(`W/"%d"`, b.version))
		w.WriteHeader(http.StatusNoContent)
	case r.URL.Path == "/redfish/v1/TaskService/Tasks":
		_, _ = w.Write([]byte(`{"Members":[]}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (b *fakeBMC) patchLog() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]string(nil), b.patches...)
}

func testConfig(bmcURL string) *config.Config {
	return &config.Config{
		Log: config.Log{Level: "error"},
		BMC: config.BMC{URL: bmcURL, Username: "admin", Password: "admin"},
		DB:  config.DB{URL: ":memory:", PoolMax: 1},
		Sync: config.Sync{
			Interval:          time.Minute,
			ExpandTasks:       true,
			TaskCollectionURI: "/redfish/v1/TaskService/Tasks",
		},
		Features: []config.Feature{{Schema: "Bios", URI: biosURI}},
		SecureBoot: config.SecureBoot{
			Enabled:   true,
			ListenURI: "/redfish/v1/Systems/1/SecureBoot/SecureBootDatabases",
		},
	}
}

func initApp(t *testing.T) (*App, *fakeBMC) {
	t.Helper()

	bmc := &fakeBMC{attrs: map[string]any{"BootMode": "Legacy", "NumLock": true}, version: 1}
	srv := httptest.NewServer(bmc)
	t.Cleanup(srv.Close)

	a, err := New(context.Background(), testConfig(srv.URL), logger.New("error"))
	require.NoError(t, err)
	t.Cleanup(a.Close)

	items, err := LoadSeed(strings.NewReader(`
- schema: Bios
  configure_lang: /Bios/Attributes/BootMode
  kind: string
  value: Uefi
`))
	require.NoError(t, err)
	require.NoError(t, a.Import(context.Background(), items))

	return a, bmc
}

func TestPassPushesLocalValueThenSettles(t *testing.T) {
	t.Parallel()

	a, bmc := initApp(t)
	ctx := context.Background()

	report, err := a.Pass(ctx)
	require.NoError(t, err)
	require.Len(t, report.Features, 1)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 1, report.Features[0].Updated)
	assert.False(t, report.RebootRequired)
	require.NotNil(t, report.Tasks)
	assert.Equal(t, 0, report.Tasks.Seen)

	patches := bmc.patchLog()
	require.Len(t, patches, 1)
	assert.Equal(t, "Uefi", gjson.Get(patches[0], "Attributes.BootMode").String())
	assert.False(t, gjson.Get(patches[0], "Attributes.NumLock").Exists())

	report, err = a.Pass(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Features[0].NoChange)
	assert.Len(t, bmc.patchLog(), 1)

	h := a.health()
	assert.Equal(t, "ok", h.Status)
	assert.NotEmpty(t, h.LastPass)
}

func TestPassConsumesRemoteChange(t *testing.T) {
	t.Parallel()

	a, bmc := initApp(t)
	ctx := context.Background()

	_, err := a.Pass(ctx)
	require.NoError(t, err)

	// A change made on the BMC side is pulled into the local store.
	bmc.mu.Lock()
	bmc.attrs["BootMode"] = "Legacy"
	bmc.version++
	bmc.mu.Unlock()

	report, err := a.Pass(ctx)
	require.NoError(t, err)
	assert.True(t, report.RebootRequired)
	assert.Equal(t, 1, report.Features[0].NoChange)

	value, err := a.local.GetValue(ctx, "Bios", "v1_1_0", "/Bios/Attributes/BootMode")
	require.NoError(t, err)
	assert.Equal(t, "Legacy", value.Str)
	assert.Len(t, bmc.patchLog(), 1)
}

func TestPassReportsUnreachableResource(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	a, err := New(context.Background(), testConfig(srv.URL), logger.New("error"))
	require.NoError(t, err)
	t.Cleanup(a.Close)

	_, err = a.Pass(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feature Bios")
	assert.Contains(t, err.Error(), "tasks")
	assert.Equal(t, "degraded", a.health().Status)
}

func TestNewRejectsUnknownSchema(t *testing.T) {
	t.Parallel()

	cfg := testConfig("http://127.0.0.1:1")
	cfg.Features = []config.Feature{{Schema: "Chassis", URI: "/redfish/v1/Chassis/1"}}

	_, err := New(context.Background(), cfg, logger.New("error"))
	require.Error(t, err)
}
