// Package configmap associates remote resource URIs with the configure
// language of the local instance they mirror.
package configmap

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/device-management-toolkit/redfish-sync/internal/entity"
	"github.com/device-management-toolkit/redfish-sync/pkg/logger"
)

// Store is a write-back cache over Repository. Each side of the map is unique:
// setting a pair drops any previous pair sharing its URI or configure language.
type Store struct {
	repo Repository
	log  logger.Interface

	mu      sync.Mutex
	byLang  map[string]string
	byURI   map[string]string
	pending map[string]string
}

// New -.
func New(r Repository, log logger.Interface) *Store {
	return &Store{
		repo:    r,
		log:     log,
		byLang:  make(map[string]string),
		byURI:   make(map[string]string),
		pending: make(map[string]string),
	}
}

// Set maps configureLang to uri.
func (s *Store) Set(configureLang, uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.byLang[configureLang]; ok && old != uri {
		delete(s.byURI, old)
	}

	if old, ok := s.byURI[uri]; ok && old != configureLang {
		delete(s.byLang, old)
		delete(s.pending, old)
	}

	s.byLang[configureLang] = uri
	s.byURI[uri] = configureLang
	s.pending[configureLang] = uri
}

// GetURI returns the URI mapped to configureLang.
func (s *Store) GetURI(ctx context.Context, configureLang string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if uri, ok := s.byLang[configureLang]; ok {
		return uri, true, nil
	}

	uri, ok, err := s.repo.GetURI(ctx, configureLang)
	if err != nil {
		return "", false, fmt.Errorf("configmap - GetURI - %s: %w", configureLang, err)
	}

	// A pending Set may have given the stored URI to another instance.
	if owner, taken := s.byURI[uri]; ok && taken && owner != configureLang {
		return "", false, nil
	}

	if ok {
		s.remember(configureLang, uri)
	}

	return uri, ok, nil
}

// GetConfigureLang returns the configure language mapped to uri.
func (s *Store) GetConfigureLang(ctx context.Context, uri string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if lang, ok := s.byURI[uri]; ok {
		return lang, true, nil
	}

	lang, ok, err := s.repo.GetConfigureLang(ctx, uri)
	if err != nil {
		return "", false, fmt.Errorf("configmap - GetConfigureLang - %s: %w", uri, err)
	}

	if mapped, taken := s.byLang[lang]; ok && taken && mapped != uri {
		return "", false, nil
	}

	if ok {
		s.remember(lang, uri)
	}

	return lang, ok, nil
}

func (s *Store) remember(configureLang, uri string) {
	if _, ok := s.byLang[configureLang]; ok {
		return
	}

	if _, ok := s.byURI[uri]; ok {
		return
	}

	s.byLang[configureLang] = uri
	s.byURI[uri] = configureLang
}

// Flush persists every pending Set in configure language order.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		return nil
	}

	mappings := make([]entity.ConfigLangMapping, 0, len(s.pending))
	for lang, uri := range s.pending {
		mappings = append(mappings, entity.ConfigLangMapping{ConfigureLang: lang, URI: uri})
	}

	sort.Slice(mappings, func(i, j int) bool {
		return mappings[i].ConfigureLang < mappings[j].ConfigureLang
	})

	if err := s.repo.Upsert(ctx, mappings); err != nil {
		return fmt.Errorf("configmap - Flush: %w", err)
	}

	s.log.Debug("configmap - Flush - persisted %d mappings", len(mappings))

	s.pending = make(map[string]string)

	return nil
}
