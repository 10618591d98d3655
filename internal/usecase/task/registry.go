package task

import (
	"errors"
	"strings"
	"sync"
)

var (
	// ErrAlreadyStarted is returned when the same handler registers a URI twice.
	ErrAlreadyStarted = errors.New("task - already registered")

	// ErrNotFound -.
	ErrNotFound = errors.New("task - not found")
)

type registration struct {
	listenURI string
	partial   bool
	handler   Handler
}

func (r *registration) matches(target string) bool {
	if r.partial {
		return strings.Contains(target, r.listenURI)
	}

	return target == r.listenURI
}

// Registry maps task target URIs to handlers. Lookup scans in registration
// order and the first match wins.
type Registry struct {
	mu      sync.RWMutex
	entries []registration
}

// NewRegistry -.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register binds handler to listenURI. With partial set any target containing
// listenURI matches, otherwise only an identical one.
func (r *Registry) Register(listenURI string, partial bool, handler Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].listenURI == listenURI && r.entries[i].handler == handler {
			return ErrAlreadyStarted
		}
	}

	r.entries = append(r.entries, registration{listenURI: listenURI, partial: partial, handler: handler})

	return nil
}

// Unregister -.
func (r *Registry) Unregister(listenURI string, handler Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].listenURI == listenURI && r.entries[i].handler == handler {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)

			return nil
		}
	}

	return ErrNotFound
}

// Lookup -.
func (r *Registry) Lookup(target string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].matches(target) {
			return r.entries[i].handler, true
		}
	}

	return nil, false
}

// Len -.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
