package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const systemJSON = `{
	"@odata.id": "/redfish/v1/Systems/1",
	"@odata.type": "#ComputerSystem.v1_22_0.ComputerSystem",
	"@odata.etag": "\"abc\"",
	"Id": "1",
	"AssetTag": null,
	"HostName": "node1",
	"Boot": {"BootOrder": ["Pxe", "Hdd"], "AutomaticRetryAttempts": 3},
	"Bios": {"@odata.id": "/redfish/v1/Systems/1/Bios"},
	"Status": {"State": "Enabled"}
}`

func TestToStructure(t *testing.T) {
	t.Parallel()

	r, err := ToStructure("/redfish/v1/Systems/1", []byte(systemJSON))
	require.NoError(t, err)

	assert.Equal(t, "/redfish/v1/Systems/1", r.ODataID)
	assert.Equal(t, "ComputerSystem", r.Schema)
	assert.Equal(t, "v1_22_0", r.Version)
	assert.Equal(t, `"abc"`, r.ODataEtag)

	assert.Equal(t, NodeString, r.Lookup("HostName").Kind)
	assert.Equal(t, NodeInteger, r.Lookup("Boot", "AutomaticRetryAttempts").Kind)
	assert.Equal(t, NodeArray, r.Lookup("Boot", "BootOrder").Kind)
	assert.Equal(t, "Hdd", r.Lookup("Boot", "BootOrder", "{1}").Raw())
	assert.False(t, r.Lookup("Boot", "BootOrder", "{18446744073709551617}").Present())
	assert.Equal(t, NodeObject, r.Lookup("Status").Kind)
	assert.Equal(t, NodeAbsent, r.Lookup("IndicatorLED").Kind)
	assert.False(t, r.Lookup("AssetTag").Present())

	link := r.Lookup("Bios")
	assert.Equal(t, NodeLink, link.Kind)
	assert.Equal(t, "/redfish/v1/Systems/1/Bios", link.Link())

	assert.True(t, r.Has("Boot", "BootOrder"))
	assert.False(t, r.Has("Boot", "BootNext"))
}

func TestToStructureRejectsMalformed(t *testing.T) {
	t.Parallel()

	_, err := ToStructure("/x", []byte(`{"Id": "1"}`))
	assert.ErrorIs(t, err, ErrMissingODataID)

	_, err = ToStructure("/x", []byte(`[1, 2]`))
	assert.ErrorIs(t, err, ErrMalformedResource)

	_, err = ToStructure("/x", []byte(`{`))
	assert.ErrorIs(t, err, ErrMalformedResource)
}

func TestSkeletonSetAndToJSON(t *testing.T) {
	t.Parallel()

	r, err := NewSkeleton("/redfish/v1/Systems/1/Bios", "#Bios.v1_1_0.Bios", `{}`)
	require.NoError(t, err)
	assert.Equal(t, "Bios", r.Schema)

	require.NoError(t, r.Set("Foo", "Attributes", "BootMode"))
	require.NoError(t, r.Set(int64(5), "Attributes", "Timeout"))

	out, err := r.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"@odata.type":"#Bios.v1_1_0.Bios","Attributes":{"BootMode":"Foo","Timeout":5}}`, string(out))
}

func TestParseODataType(t *testing.T) {
	t.Parallel()

	schema, version := ParseODataType("#SecureBoot.v1_1_0.SecureBoot")
	assert.Equal(t, "SecureBoot", schema)
	assert.Equal(t, "v1_1_0", version)

	schema, version = ParseODataType("#TaskCollection.TaskCollection")
	assert.Equal(t, "TaskCollection", schema)
	assert.Empty(t, version)
}
