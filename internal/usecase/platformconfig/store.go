// Package platformconfig is the local configuration store: typed values keyed
// by schema, schema version and configure language.
package platformconfig

import (
	"context"
	"errors"
	"fmt"

	"github.com/ryanuber/go-glob"

	"github.com/device-management-toolkit/redfish-sync/internal/entity"
	"github.com/device-management-toolkit/redfish-sync/pkg/logger"
)

// ErrNotFound is returned by GetValue for a configure language with no value.
var ErrNotFound = errors.New("platformconfig - value not found")

// ErrNoKind is returned when a value without a kind is stored.
var ErrNoKind = errors.New("platformconfig - value has no kind")

// Store -.
type Store struct {
	repo Repository
	log  logger.Interface
}

// New -.
func New(r Repository, log logger.Interface) *Store {
	return &Store{repo: r, log: log}
}

// GetValue -.
func (s *Store) GetValue(ctx context.Context, schema, version, configureLang string) (entity.Value, error) {
	item, err := s.repo.Get(ctx, schema, version, configureLang)
	if err != nil {
		return entity.Value{}, fmt.Errorf("platformconfig - GetValue - %s: %w", configureLang, err)
	}

	if item == nil {
		return entity.Value{}, fmt.Errorf("%w: %s %s %s", ErrNotFound, schema, version, configureLang)
	}

	return item.Value, nil
}

// SetValue -.
func (s *Store) SetValue(ctx context.Context, schema, version, configureLang string, value entity.Value) error {
	if value.Kind == entity.KindUnknown {
		return fmt.Errorf("%w: %s", ErrNoKind, configureLang)
	}

	err := s.repo.Upsert(ctx, &entity.ConfigItem{
		Schema:        schema,
		Version:       version,
		ConfigureLang: configureLang,
		Value:         value,
	})
	if err != nil {
		return fmt.Errorf("platformconfig - SetValue - %s: %w", configureLang, err)
	}

	s.log.Debug("platformconfig - SetValue - %s %s %s = %s", schema, version, configureLang, value.Kind)

	return nil
}

// Matches returns, sorted, every stored configure language of schema/version
// matching pattern. A '*' in pattern matches any run of characters,
// including '/'.
func (s *Store) Matches(ctx context.Context, schema, version, pattern string) ([]string, error) {
	langs, err := s.repo.ListConfigureLangs(ctx, schema, version)
	if err != nil {
		return nil, fmt.Errorf("platformconfig - Matches - %s: %w", pattern, err)
	}

	out := make([]string, 0, len(langs))

	for _, lang := range langs {
		if glob.Glob(pattern, lang) {
			out = append(out, lang)
		}
	}

	return out, nil
}

// Import stores every item, stopping at the first failure.
func (s *Store) Import(ctx context.Context, items []entity.ConfigItem) error {
	for i := range items {
		it := &items[i]
		if err := s.SetValue(ctx, it.Schema, it.Version, it.ConfigureLang, it.Value); err != nil {
			return err
		}
	}

	s.log.Info("platformconfig - Import - %d values stored", len(items))

	return nil
}
