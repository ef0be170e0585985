// Package overrides holds the two-tier runtime override store layered on
// top of the active theme.
package overrides

import (
	"errors"
	"fmt"
	"sync"

	"github.com/tintlab/tint/internal/token"
)

// Override errors.
var (
	ErrInvalidValue = errors.New("invalid override value")
	ErrUnknownTier  = errors.New("unknown override tier")
)

// Tier identifies an override precedence tier. User overrides shadow app
// overrides, which shadow the base theme.
type Tier string

const (
	TierUser Tier = "user"
	TierApp  Tier = "app"
)

func (t Tier) valid() bool { return t == TierUser || t == TierApp }

// Store is the process's mutable override state. One instance per theming
// subsystem; construct it explicitly and pass it by reference (tests get a
// fresh one per case). The store performs no I/O — callers persist the
// copies returned by Tier.
type Store struct {
	mu          sync.RWMutex
	user        map[string]string
	app         map[string]string
	fingerprint uint64
}

// NewStore returns an empty override store.
func NewStore() *Store {
	return &Store{
		user: make(map[string]string),
		app:  make(map[string]string),
	}
}

// Set validates value against the token's type and stores it in the given
// tier, bumping the fingerprint. On validation failure the store is left
// unchanged and the error wraps ErrInvalidValue.
func (s *Store) Set(tier Tier, tok, value string) error {
	if !tier.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownTier, tier)
	}
	if err := token.Validate(tok, value); err != nil {
		return fmt.Errorf("%w: %s=%q: %v", ErrInvalidValue, tok, value, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tier(tier)[tok] = value
	s.fingerprint++
	return nil
}

// Clear removes an override if present. The fingerprint is bumped only when
// a removal actually occurred; the return value reports that.
func (s *Store) Clear(tier Tier, tok string) bool {
	if !tier.valid() {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.tier(tier)
	if _, ok := m[tok]; !ok {
		return false
	}
	delete(m, tok)
	s.fingerprint++
	return true
}

// ClearAll empties the given tiers, or both when none are named. Always
// bumps the fingerprint.
func (s *Store) ClearAll(tiers ...Tier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(tiers) == 0 {
		tiers = []Tier{TierUser, TierApp}
	}
	for _, tier := range tiers {
		if !tier.valid() {
			continue
		}
		m := s.tier(tier)
		for k := range m {
			delete(m, k)
		}
	}
	s.fingerprint++
}

// Tier returns a copy of one tier's map, safe for the caller to hold or
// persist.
func (s *Store) Tier(tier Tier) map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !tier.valid() {
		return map[string]string{}
	}
	src := s.tier(tier)
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// UserValue looks up a token in the user tier.
func (s *Store) UserValue(tok string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.user[tok]
	return v, ok
}

// AppValue looks up a token in the app tier.
func (s *Store) AppValue(tok string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.app[tok]
	return v, ok
}

// Fingerprint returns the monotonic mutation counter. Resolution caches key
// on it to detect override changes without comparing contents.
func (s *Store) Fingerprint() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fingerprint
}

// tier returns the live map for a tier. Callers hold s.mu.
func (s *Store) tier(t Tier) map[string]string {
	if t == TierUser {
		return s.user
	}
	return s.app
}
