// Package engine wires the theming subsystem together: active theme,
// override store, resolution cache, font availability, and subscriber
// notification, behind the consumer-facing resolve API.
package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tintlab/tint/internal/fontscan"
	"github.com/tintlab/tint/internal/logging"
	"github.com/tintlab/tint/internal/notify"
	"github.com/tintlab/tint/internal/overrides"
	"github.com/tintlab/tint/internal/resolve"
	"github.com/tintlab/tint/internal/theme"
	"github.com/tintlab/tint/internal/token"
)

// ErrNilTheme is returned by SwapTheme for a nil theme.
var ErrNilTheme = errors.New("nil theme")

// Config contains engine configuration.
type Config struct {
	// CoalesceWindow is the debounce window for subscriber notification.
	// Default: notify.DefaultWindow.
	CoalesceWindow time.Duration

	// FontCatalog enumerates installed fonts. Nil disables availability
	// probing (family lists pass through as resolved).
	FontCatalog fontscan.Catalog

	// InitialTheme is the theme active at construction. Default: the
	// built-in dark theme.
	InitialTheme *theme.Theme
}

// DefaultConfig returns sensible default configuration: fontconfig probing
// and the built-in dark theme.
func DefaultConfig() Config {
	return Config{
		CoalesceWindow: notify.DefaultWindow,
		FontCatalog:    &fontscan.FcListCatalog{},
		InitialTheme:   theme.Dark(),
	}
}

// Stats is a snapshot of engine counters.
type Stats struct {
	ThemeName     string
	UserOverrides int
	AppOverrides  int
	Subscribers   int
	Batches       uint64
	Cache         resolve.CacheStats
}

// Engine is the theming subsystem's single mutable instance. Construct one
// explicitly and inject it; there is no package-level singleton. Mutation
// (override writes, theme swaps) is expected from one owner goroutine —
// background loaders build and validate Themes freely but publish them only
// through SwapTheme.
type Engine struct {
	ov       *overrides.Store
	fonts    *fontscan.Resolver
	cache    *resolve.Cache
	registry *notify.Registry
	logger   zerolog.Logger

	// active carries its own lock; the overrides store and cache guard
	// themselves.
	active activeTheme
}

// activeTheme guards the active theme pointer.
type activeTheme struct {
	mu sync.RWMutex
	th *theme.Theme
}

// New creates an engine. Zero-value config fields take defaults.
func New(cfg Config) *Engine {
	if cfg.CoalesceWindow <= 0 {
		cfg.CoalesceWindow = notify.DefaultWindow
	}
	if cfg.InitialTheme == nil {
		cfg.InitialTheme = theme.Dark()
	}

	fonts := fontscan.NewResolver(cfg.FontCatalog)
	e := &Engine{
		ov:       overrides.NewStore(),
		fonts:    fonts,
		cache:    resolve.NewCache(resolve.New(fonts)),
		registry: notify.NewRegistry(cfg.CoalesceWindow),
		logger:   logging.Component("engine"),
	}
	e.active.th = cfg.InitialTheme

	e.logger.Debug().
		Str("theme", cfg.InitialTheme.Name()).
		Dur("coalesce_window", cfg.CoalesceWindow).
		Msg("theming engine created")
	return e
}

// SwapTheme publishes a new active theme. The theme must already be
// validated (construction guarantees that); the swap clears the resolution
// cache and schedules one coalesced notification.
func (e *Engine) SwapTheme(th *theme.Theme) error {
	if th == nil {
		return ErrNilTheme
	}
	e.active.mu.Lock()
	prev := e.active.th
	e.active.th = th
	e.active.mu.Unlock()

	e.logger.Info().Str("from", prev.Name()).Str("to", th.Name()).Msg("active theme swapped")
	e.invalidate()
	return nil
}

// ActiveTheme returns the currently active theme.
func (e *Engine) ActiveTheme() *theme.Theme {
	e.active.mu.RLock()
	defer e.active.mu.RUnlock()
	return e.active.th
}

// SetOverride validates and stores an override, then invalidates and
// notifies. Validation failure leaves engine state untouched.
func (e *Engine) SetOverride(tier overrides.Tier, tok, value string) error {
	if err := e.ov.Set(tier, tok, value); err != nil {
		return err
	}
	e.invalidate()
	return nil
}

// ClearOverride removes an override; invalidation and notification happen
// only when something was actually removed.
func (e *Engine) ClearOverride(tier overrides.Tier, tok string) bool {
	if !e.ov.Clear(tier, tok) {
		return false
	}
	e.invalidate()
	return true
}

// Overrides returns a copy of one tier, for the embedding application to
// persist. The engine itself performs no I/O.
func (e *Engine) Overrides(tier overrides.Tier) map[string]string {
	return e.ov.Tier(tier)
}

// ResetOverrides clears the given tiers (both when none are named).
func (e *Engine) ResetOverrides(tiers ...overrides.Tier) {
	e.ov.ClearAll(tiers...)
	e.invalidate()
}

// ResolveColor resolves a color token to its canonical string form.
func (e *Engine) ResolveColor(tok string) string {
	v := e.resolveToken(tok)
	if v.Type != token.TypeColor {
		return resolve.SentinelColor
	}
	return v.Color
}

// ResolveFont resolves a font token. The field matching the token's
// property carries the resolved value; the remaining fields hold system
// defaults.
func (e *Engine) ResolveFont(tok string) theme.FontPropertyValue {
	fpv := theme.FontPropertyValue{
		Families:      resolve.Default(tok, token.TypeFontFamily).Families,
		Size:          resolve.Default(tok, token.TypeSize).Number,
		Weight:        resolve.Default(tok, token.TypeWeight).Weight,
		LineHeight:    resolve.Default(tok, token.TypeRatio).Number,
		LetterSpacing: resolve.Default(tok, token.TypeSpacing).Number,
	}

	switch v := e.resolveToken(tok); v.Type {
	case token.TypeFontFamily:
		fpv.Families = v.Families
	case token.TypeSize:
		fpv.Size = v.Number
	case token.TypeWeight:
		fpv.Weight = v.Weight
	case token.TypeRatio:
		fpv.LineHeight = v.Number
	case token.TypeSpacing:
		fpv.LetterSpacing = v.Number
	}
	return fpv
}

// ResolveSize resolves a size token in points.
func (e *Engine) ResolveSize(tok string) float64 {
	if v := e.resolveToken(tok); v.Type == token.TypeSize {
		return v.Number
	}
	return resolve.Default(tok, token.TypeSize).Number
}

// ResolveWeight resolves a weight token to its numeric 100-900 value.
func (e *Engine) ResolveWeight(tok string) int {
	if v := e.resolveToken(tok); v.Type == token.TypeWeight {
		return v.Weight
	}
	return resolve.Default(tok, token.TypeWeight).Weight
}

// ResolveRatio resolves a ratio token (line height).
func (e *Engine) ResolveRatio(tok string) float64 {
	if v := e.resolveToken(tok); v.Type == token.TypeRatio {
		return v.Number
	}
	return resolve.Default(tok, token.TypeRatio).Number
}

// ResolveSpacing resolves a spacing token in device-independent units.
func (e *Engine) ResolveSpacing(tok string) float64 {
	if v := e.resolveToken(tok); v.Type == token.TypeSpacing {
		return v.Number
	}
	return resolve.Default(tok, token.TypeSpacing).Number
}

// ResolveColorOr returns the caller's fallback instead of the heuristic or
// sentinel value when the token is entirely undefined.
func (e *Engine) ResolveColorOr(tok, fallback string) string {
	if e.ValidateTokenExists(tok) != nil {
		return fallback
	}
	return e.ResolveColor(tok)
}

// ResolveSizeOr returns the caller's fallback when the token is entirely
// undefined.
func (e *Engine) ResolveSizeOr(tok string, fallback float64) float64 {
	if e.ValidateTokenExists(tok) != nil {
		return fallback
	}
	return e.ResolveSize(tok)
}

// ResolveFontOr returns the caller's fallback when the token is entirely
// undefined.
func (e *Engine) ResolveFontOr(tok string, fallback theme.FontPropertyValue) theme.FontPropertyValue {
	if e.ValidateTokenExists(tok) != nil {
		return fallback
	}
	return e.ResolveFont(tok)
}

// ValidateTokenExists reports whether the token is defined (override or
// theme) rather than defaulted. Strict callers only; resolution never
// raises for missing tokens.
func (e *Engine) ValidateTokenExists(tok string) error {
	return resolve.ValidateTokenExists(tok, e.ActiveTheme(), e.ov)
}

// Subscribe registers owner's hook for coalesced change notification,
// holding owner weakly. The hook must not capture the owner; use a method
// expression.
func Subscribe[T any](e *Engine, owner *T, hook func(*T)) string {
	return notify.Subscribe(e.registry, owner, hook)
}

// SubscribeFunc registers a strongly-held callback; the caller owns its
// lifetime and should Unsubscribe on teardown.
func (e *Engine) SubscribeFunc(fn func()) string {
	return e.registry.SubscribeFunc(fn)
}

// Unsubscribe removes a subscriber by handle. Best-effort for weak
// subscribers, which drop out on collection anyway.
func (e *Engine) Unsubscribe(handle string) bool {
	return e.registry.Unsubscribe(handle)
}

// Flush delivers any pending coalesced notification synchronously.
func (e *Engine) Flush() {
	e.registry.Flush()
}

// ClearFontCache drops memoized font availability, for the rare case of
// fonts installed or removed at runtime. Triggers re-resolution.
func (e *Engine) ClearFontCache() {
	e.fonts.ClearCache()
	e.invalidate()
}

// Stats returns a snapshot of engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		ThemeName:     e.ActiveTheme().Name(),
		UserOverrides: len(e.ov.Tier(overrides.TierUser)),
		AppOverrides:  len(e.ov.Tier(overrides.TierApp)),
		Subscribers:   e.registry.Live(),
		Batches:       e.registry.Batches(),
		Cache:         e.cache.Stats(),
	}
}

// Close stops the notification debouncer and drops all subscribers.
func (e *Engine) Close() {
	e.registry.Close()
}

func (e *Engine) resolveToken(tok string) token.Value {
	return e.cache.GetOrResolve(tok, e.ActiveTheme(), e.ov)
}

// invalidate clears the resolution cache wholesale and schedules one
// coalesced notification. Every mutation entry point funnels through here.
func (e *Engine) invalidate() {
	e.cache.InvalidateAll()
	e.registry.Signal()
}
