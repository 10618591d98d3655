// Package property moves typed property values between a remote resource and
// the local configuration store.
package property

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/device-management-toolkit/redfish-sync/internal/configlang"
	"github.com/device-management-toolkit/redfish-sync/internal/entity"
	"github.com/device-management-toolkit/redfish-sync/pkg/logger"
)

var (
	// ErrDeviceError is returned when the local and remote kinds disagree.
	ErrDeviceError = errors.New("property - device error")

	// ErrNotArray is returned by ApplyRemoteArray for a non-array value.
	ErrNotArray = errors.New("property - value is not an array")

	// ErrVagueKind is returned for a vague entry that is not a string, boolean or integer.
	ErrVagueKind = errors.New("property - unsupported vague value kind")
)

// Bridge -.
type Bridge struct {
	store LocalStore
	log   logger.Interface
}

// New -.
func New(store LocalStore, log logger.Interface) *Bridge {
	return &Bridge{store: store, log: log}
}

// GetLocal reads the local value at configureLang.
func (b *Bridge) GetLocal(ctx context.Context, schema, version, configureLang string) (entity.Value, error) {
	v, err := b.store.GetValue(ctx, schema, version, configureLang)
	if err != nil {
		return entity.Value{}, fmt.Errorf("property - GetLocal: %w", err)
	}

	return v, nil
}

// ApplyRemoteScalar writes remote to the local store when it differs from the
// local value and reports whether it did.
func (b *Bridge) ApplyRemoteScalar(ctx context.Context, schema, version, configureLang string, remote entity.Value) (bool, error) {
	return b.apply(ctx, schema, version, configureLang, remote)
}

// ApplyRemoteArray is ApplyRemoteScalar for array values. Arrays compare
// element by element; any difference replaces the whole local array.
func (b *Bridge) ApplyRemoteArray(ctx context.Context, schema, version, configureLang string, remote entity.Value) (bool, error) {
	if !remote.Kind.IsArray() {
		return false, fmt.Errorf("%w: %s is %s", ErrNotArray, configureLang, remote.Kind)
	}

	return b.apply(ctx, schema, version, configureLang, remote)
}

func (b *Bridge) apply(ctx context.Context, schema, version, configureLang string, remote entity.Value) (bool, error) {
	local, err := b.store.GetValue(ctx, schema, version, configureLang)
	if err != nil {
		return false, fmt.Errorf("property - apply - %s: %w", configureLang, err)
	}

	if local.Kind != remote.Kind {
		return false, fmt.Errorf("%w: %s is %s locally, %s remotely", ErrDeviceError, configureLang, local.Kind, remote.Kind)
	}

	if local.Equal(remote) {
		return false, nil
	}

	if err = b.store.SetValue(ctx, schema, version, configureLang, remote); err != nil {
		return false, fmt.Errorf("property - apply - %s: %w", configureLang, err)
	}

	b.log.Info("property - apply - %s %s changed by remote", schema, configureLang)

	return true, nil
}

// ApplyRemoteVague applies every entry of an open property set under
// configureLang/<key>. A failing entry is logged and skipped; the failures
// are returned together once every entry was tried.
func (b *Bridge) ApplyRemoteVague(ctx context.Context, schema, version, configureLang string, entries []entity.KeyValue) (bool, error) {
	var (
		changed bool
		result  *multierror.Error
	)

	for _, kv := range entries {
		child := configlang.Join(configureLang, kv.Key)

		switch kv.Value.Kind {
		case entity.KindString, entity.KindBoolean, entity.KindInteger:
		default:
			err := fmt.Errorf("%w: %s is %s", ErrVagueKind, child, kv.Value.Kind)
			b.log.Warn("property - ApplyRemoteVague - %v", err)
			result = multierror.Append(result, err)

			continue
		}

		c, err := b.apply(ctx, schema, version, child, kv.Value)
		if err != nil {
			b.log.Warn("property - ApplyRemoteVague - %v", err)
			result = multierror.Append(result, err)

			continue
		}

		changed = changed || c
	}

	return changed, result.ErrorOrNil()
}

// GetLocalVague collects the direct children of configureLang into a vague set,
// ordered by configure language.
func (b *Bridge) GetLocalVague(ctx context.Context, schema, version, configureLang string) ([]entity.KeyValue, error) {
	prefix := configureLang + "/"

	langs, err := b.store.Matches(ctx, schema, version, prefix+"*")
	if err != nil {
		return nil, fmt.Errorf("property - GetLocalVague: %w", err)
	}

	out := make([]entity.KeyValue, 0, len(langs))

	for _, lang := range langs {
		key := strings.TrimPrefix(lang, prefix)
		if key == "" || strings.Contains(key, "/") {
			continue
		}

		v, err := b.store.GetValue(ctx, schema, version, lang)
		if err != nil {
			return nil, fmt.Errorf("property - GetLocalVague - %s: %w", lang, err)
		}

		out = append(out, entity.KeyValue{Key: key, Value: v})
	}

	return out, nil
}

// CompareVagueSets reports whether a and b hold the same entries. Sets of
// different sizes differ; otherwise each key of a must be in b with an equal
// value. Keys only present in b are not looked for.
func CompareVagueSets(a, b []entity.KeyValue) bool {
	if len(a) != len(b) {
		return false
	}

	for _, ea := range a {
		found := false

		for _, eb := range b {
			if eb.Key != ea.Key {
				continue
			}

			found = true

			if !ea.Value.Equal(eb.Value) {
				return false
			}

			break
		}

		if !found {
			return false
		}
	}

	return true
}
