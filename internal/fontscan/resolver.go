package fontscan

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tintlab/tint/internal/logging"
)

const probeTimeout = 5 * time.Second

// memoEntry records a resolved candidate tuple.
type memoEntry struct {
	family string
	found  bool
}

// Resolver answers "which of these families is installed" with aggressive
// memoization: the catalog is enumerated at most once, and each distinct
// candidate tuple is resolved at most once. Invalidation is explicit via
// ClearCache (fonts installed at runtime are rare enough not to warrant
// auto-invalidation).
type Resolver struct {
	catalog Catalog
	logger  zerolog.Logger

	mu        sync.Mutex
	installed map[string]struct{} // lowercased family names, nil until loaded
	loaded    bool
	memo      map[string]memoEntry
}

// NewResolver wraps a catalog. A nil catalog yields a resolver that never
// finds anything, which callers treat as "leave the list unchanged".
func NewResolver(catalog Catalog) *Resolver {
	return &Resolver{
		catalog: catalog,
		logger:  logging.Component("fontscan"),
		memo:    make(map[string]memoEntry),
	}
}

// FirstAvailable returns the first candidate installed on the host, in
// candidate order. The second return is false when none are installed (or
// the catalog is unavailable); the caller keeps its original list then.
func (r *Resolver) FirstAvailable(candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}

	key := strings.Join(candidates, "\x1f")

	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.memo[key]; ok {
		return e.family, e.found
	}

	r.loadLocked()

	entry := memoEntry{}
	for _, name := range candidates {
		if _, ok := r.installed[strings.ToLower(strings.TrimSpace(name))]; ok {
			entry = memoEntry{family: name, found: true}
			break
		}
	}
	r.memo[key] = entry
	return entry.family, entry.found
}

// ClearCache drops the memoized tuples and the installed-family set, so the
// next query re-enumerates the catalog. Call after fonts are installed or
// removed at runtime.
func (r *Resolver) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.installed = nil
	r.loaded = false
	r.memo = make(map[string]memoEntry)
}

// loadLocked populates the installed set once. Callers hold r.mu.
func (r *Resolver) loadLocked() {
	if r.loaded {
		return
	}
	r.loaded = true
	r.installed = make(map[string]struct{})

	if r.catalog == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	families, err := r.catalog.Families(ctx)
	if err != nil {
		r.logger.Warn().Err(err).Msg("font catalog unavailable, treating all families as uninstalled")
		return
	}
	for _, name := range families {
		r.installed[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}
	r.logger.Debug().Int("families", len(r.installed)).Msg("font catalog loaded")
}
