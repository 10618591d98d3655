// Package etag remembers the last ETag seen per resource URI so that an
// unchanged resource is not consumed twice.
package etag

import (
	"context"
	"fmt"
	"sync"

	"github.com/device-management-toolkit/redfish-sync/pkg/logger"
)

// Store caches ETags in memory and writes them back in batches on Flush.
// Updates not yet flushed are lost on a crash; the next pass re-detects them.
type Store struct {
	repo Repository
	log  logger.Interface

	mu    sync.Mutex
	cache map[string]string
	dirty map[string]string
}

// New -.
func New(r Repository, log logger.Interface) *Store {
	return &Store{
		repo:  r,
		log:   log,
		cache: make(map[string]string),
		dirty: make(map[string]string),
	}
}

// Get returns the ETag recorded for uri.
func (s *Store) Get(ctx context.Context, uri string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.get(ctx, uri)
}

func (s *Store) get(ctx context.Context, uri string) (string, bool, error) {
	if etag, ok := s.cache[uri]; ok {
		return etag, true, nil
	}

	etag, ok, err := s.repo.Get(ctx, uri)
	if err != nil {
		return "", false, fmt.Errorf("etag - Get - %s: %w", uri, err)
	}

	if ok {
		s.cache[uri] = etag
	}

	return etag, ok, nil
}

// Set records etag for uri. It is persisted by the next Flush.
func (s *Store) Set(uri, etag string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache[uri] = etag
	s.dirty[uri] = etag
}

// Flush persists every pending Set.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.dirty) == 0 {
		return nil
	}

	if err := s.repo.Upsert(ctx, s.dirty); err != nil {
		return fmt.Errorf("etag - Flush: %w", err)
	}

	s.log.Debug("etag - Flush - persisted %d etags", len(s.dirty))

	s.dirty = make(map[string]string)

	return nil
}

// Pending returns the number of unflushed updates.
func (s *Store) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.dirty)
}

// ShouldSkip reports whether the resource at uri is unchanged since it was
// last consumed. It is true only when a non-empty ETag is stored and equals
// the header or the body ETag; any lookup failure resolves to false.
func (s *Store) ShouldSkip(ctx context.Context, uri, headerEtag, jsonEtag string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok, err := s.get(ctx, uri)
	if err != nil {
		s.log.Warn("etag - ShouldSkip - %s: %v", uri, err)

		return false
	}

	if !ok || stored == "" {
		return false
	}

	return (headerEtag != "" && headerEtag == stored) || (jsonEtag != "" && jsonEtag == stored)
}
