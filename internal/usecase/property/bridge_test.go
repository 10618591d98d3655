package property_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/device-management-toolkit/redfish-sync/internal/entity"
	"github.com/device-management-toolkit/redfish-sync/internal/mocks"
	"github.com/device-management-toolkit/redfish-sync/internal/usecase/property"
	"github.com/device-management-toolkit/redfish-sync/pkg/logger"
)

const (
	schema  = "Memory"
	version = "v1_7_0"
)

var errStore = errors.New("store failed")

func initBridge(t *testing.T) (*property.Bridge, *mocks.MockLocalStore) {
	t.Helper()

	ctl := gomock.NewController(t)
	store := mocks.NewMockLocalStore(ctl)

	return property.New(store, logger.New("error")), store
}

func TestApplyRemoteScalar(t *testing.T) {
	t.Parallel()

	const lang = "/Memory/{1}/OperatingSpeedMhz"

	tests := []struct {
		name    string
		local   entity.Value
		remote  entity.Value
		setErr  error
		write   bool
		changed bool
		err     error
	}{
		{name: "unchanged", local: entity.IntegerValue(3200), remote: entity.IntegerValue(3200)},
		{name: "changed", local: entity.IntegerValue(2400), remote: entity.IntegerValue(3200), write: true, changed: true},
		{name: "kind mismatch", local: entity.StringValue("3200"), remote: entity.IntegerValue(3200), err: property.ErrDeviceError},
		{name: "write fails", local: entity.IntegerValue(2400), remote: entity.IntegerValue(3200), write: true, setErr: errStore, err: errStore},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b, store := initBridge(t)
			store.EXPECT().GetValue(gomock.Any(), schema, version, lang).Return(tc.local, nil)

			if tc.write {
				store.EXPECT().SetValue(gomock.Any(), schema, version, lang, tc.remote).Return(tc.setErr)
			}

			changed, err := b.ApplyRemoteScalar(context.Background(), schema, version, lang, tc.remote)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.changed, changed)
		})
	}
}

func TestApplyRemoteArrayAllOrNothing(t *testing.T) {
	t.Parallel()

	const lang = "/Memory/{1}/AllowedSpeedsMHz"

	ctx := context.Background()
	b, store := initBridge(t)

	store.EXPECT().GetValue(gomock.Any(), schema, version, lang).Return(entity.IntegerArrayValue(1, 2, 3), nil).Times(2)

	changed, err := b.ApplyRemoteArray(ctx, schema, version, lang, entity.IntegerArrayValue(1, 2, 3))
	require.NoError(t, err)
	assert.False(t, changed)

	store.EXPECT().SetValue(gomock.Any(), schema, version, lang, entity.IntegerArrayValue(1, 2, 4)).Return(nil)

	changed, err = b.ApplyRemoteArray(ctx, schema, version, lang, entity.IntegerArrayValue(1, 2, 4))
	require.NoError(t, err)
	assert.True(t, changed)

	_, err = b.ApplyRemoteArray(ctx, schema, version, lang, entity.IntegerValue(1))
	require.ErrorIs(t, err, property.ErrNotArray)
}

func TestApplyRemoteVagueContinuesPastFailures(t *testing.T) {
	t.Parallel()

	const lang = "/Bios/Attributes"

	b, store := initBridge(t)

	store.EXPECT().GetValue(gomock.Any(), schema, version, lang+"/Broken").Return(entity.Value{}, errStore)
	store.EXPECT().GetValue(gomock.Any(), schema, version, lang+"/BootMode").Return(entity.StringValue("Legacy"), nil)
	store.EXPECT().SetValue(gomock.Any(), schema, version, lang+"/BootMode", entity.StringValue("Uefi")).Return(nil)
	store.EXPECT().GetValue(gomock.Any(), schema, version, lang+"/NumCores").Return(entity.IntegerValue(8), nil)

	changed, err := b.ApplyRemoteVague(context.Background(), schema, version, lang, []entity.KeyValue{
		{Key: "Broken", Value: entity.BooleanValue(true)},
		{Key: "BootMode", Value: entity.StringValue("Uefi")},
		{Key: "Nested", Value: entity.StringArrayValue("a")},
		{Key: "NumCores", Value: entity.IntegerValue(8)},
	})

	assert.True(t, changed)
	require.ErrorIs(t, err, errStore)
	require.ErrorIs(t, err, property.ErrVagueKind)
}

func TestGetLocalVague(t *testing.T) {
	t.Parallel()

	const lang = "/Bios/Attributes"

	b, store := initBridge(t)

	store.EXPECT().Matches(gomock.Any(), schema, version, lang+"/*").
		Return([]string{lang + "/BootMode", lang + "/Deep/Key", lang + "/NumCores"}, nil)
	store.EXPECT().GetValue(gomock.Any(), schema, version, lang+"/BootMode").Return(entity.StringValue("Uefi"), nil)
	store.EXPECT().GetValue(gomock.Any(), schema, version, lang+"/NumCores").Return(entity.IntegerValue(8), nil)

	got, err := b.GetLocalVague(context.Background(), schema, version, lang)
	require.NoError(t, err)
	assert.Equal(t, []entity.KeyValue{
		{Key: "BootMode", Value: entity.StringValue("Uefi")},
		{Key: "NumCores", Value: entity.IntegerValue(8)},
	}, got)
}

func TestCompareVagueSets(t *testing.T) {
	t.Parallel()

	kv := func(k string, v entity.Value) entity.KeyValue { return entity.KeyValue{Key: k, Value: v} }

	ab := []entity.KeyValue{kv("A", entity.StringValue("x")), kv("B", entity.IntegerValue(1))}

	tests := []struct {
		name string
		a    []entity.KeyValue
		b    []entity.KeyValue
		same bool
	}{
		{name: "identical other order", a: ab, b: []entity.KeyValue{kv("B", entity.IntegerValue(1)), kv("A", entity.StringValue("x"))}, same: true},
		{name: "size differs", a: ab, b: ab[:1], same: false},
		{name: "value differs", a: ab, b: []entity.KeyValue{kv("A", entity.StringValue("y")), kv("B", entity.IntegerValue(1))}, same: false},
		{name: "type differs", a: ab, b: []entity.KeyValue{kv("A", entity.StringValue("x")), kv("B", entity.StringValue("1"))}, same: false},
		{name: "key missing from b", a: ab, b: []entity.KeyValue{kv("A", entity.StringValue("x")), kv("C", entity.IntegerValue(1))}, same: false},
		{
			// Keys only in b are never looked for.
			name: "one directional",
			a:    []entity.KeyValue{kv("A", entity.StringValue("x")), kv("A", entity.StringValue("x"))},
			b:    []entity.KeyValue{kv("A", entity.StringValue("x")), kv("C", entity.IntegerValue(1))},
			same: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.same, property.CompareVagueSets(tc.a, tc.b))
		})
	}
}
