// Package resolve computes effective token values through the fixed
// precedence list: user override > app override > base theme > fallback
// chain > system default.
package resolve

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/tintlab/tint/internal/fontscan"
	"github.com/tintlab/tint/internal/logging"
	"github.com/tintlab/tint/internal/theme"
	"github.com/tintlab/tint/internal/token"
)

// ErrUnknownToken is returned by ValidateTokenExists for tokens that would
// resolve purely from heuristic or system defaults. Resolution itself never
// returns it: the hot path is total.
var ErrUnknownToken = errors.New("unknown token")

// SentinelColor is the conspicuous ultimate fallback for colors. Seeing it
// on screen means a token resolved from nothing at all.
const SentinelColor = "#ff00ff"

// System defaults per token type, used when every other step comes up empty.
var (
	defaultMono = []string{"monospace"}
	defaultSans = []string{"sans-serif"}

	defaultSize    = 13.0
	defaultWeight  = 400
	defaultRatio   = 1.4
	defaultSpacing = 0.0
)

// OverrideSource is the subset of the override store resolution reads.
type OverrideSource interface {
	UserValue(tok string) (string, bool)
	AppValue(tok string) (string, bool)
	Fingerprint() uint64
}

// Engine resolves tokens against a theme and an override source. It is
// stateless apart from the font availability resolver it consults for
// family lists.
type Engine struct {
	fonts  *fontscan.Resolver
	logger zerolog.Logger
}

// New creates an engine. fonts may be nil, in which case family lists are
// returned as resolved, without availability reordering.
func New(fonts *fontscan.Resolver) *Engine {
	return &Engine{
		fonts:  fonts,
		logger: logging.Component("resolve"),
	}
}

// Resolve computes the effective value for a token using its declared (or
// inferred) type.
func (e *Engine) Resolve(tok string, th *theme.Theme, ov OverrideSource) token.Value {
	return e.ResolveTyped(tok, token.TypeOf(tok), th, ov)
}

// ResolveTyped is Resolve with an explicit type hint. It never fails for a
// syntactically valid token: each precedence step that cannot produce a
// well-typed value falls through to the next, ending at a hard system
// default.
func (e *Engine) ResolveTyped(tok string, typ token.Type, th *theme.Theme, ov OverrideSource) token.Value {
	// Steps 1-2: override tiers, user before app.
	if ov != nil {
		if raw, ok := ov.UserValue(tok); ok {
			if v, err := token.Coerce(raw, typ); err == nil {
				return e.finish(v)
			}
		}
		if raw, ok := ov.AppValue(tok); ok {
			if v, err := token.Coerce(raw, typ); err == nil {
				return e.finish(v)
			}
		}
	}

	// Step 3: walk the fallback chain against the theme's raw maps.
	if th != nil {
		for _, candidate := range token.Chain(tok) {
			raw, ok := th.Get(candidate)
			if !ok {
				continue
			}
			if v, err := token.Coerce(raw, typ); err == nil {
				return e.finish(v)
			}
		}
	}

	// Step 4: color heuristic keyed on the token's last segment.
	if typ == token.TypeColor {
		if hex, ok := heuristicColor(tok, themeDark(th)); ok {
			e.logger.Debug().Str("token", tok).Str("color", hex).Msg("token resolved by heuristic")
			return token.Value{Type: token.TypeColor, Color: hex}
		}
	}

	// Step 5: ultimate fallback. Deliberately skips font availability
	// probing; the generic families are the renderer's own last resort.
	e.logger.Debug().Str("token", tok).Str("type", typ.String()).Msg("token resolved by system default")
	return Default(tok, typ)
}

// finish applies font availability to family lists: the first installed
// family moves to the head of the list. Lists with no installed family pass
// through unchanged, leaving the render surface to fall back again.
func (e *Engine) finish(v token.Value) token.Value {
	if v.Type != token.TypeFontFamily || e.fonts == nil {
		return v
	}
	family, ok := e.fonts.FirstAvailable(v.Families)
	if !ok || v.Families[0] == family {
		return v
	}

	reordered := make([]string, 0, len(v.Families))
	reordered = append(reordered, family)
	for _, f := range v.Families {
		if f != family {
			reordered = append(reordered, f)
		}
	}
	v.Families = reordered
	return v
}

func themeDark(th *theme.Theme) bool {
	if th == nil {
		return true
	}
	return th.Kind().Dark()
}

// Default returns the hard system fallback for a type. Families pick mono
// versus sans from the token's chain terminus.
func Default(tok string, typ token.Type) token.Value {
	switch typ {
	case token.TypeFontFamily:
		families := defaultSans
		chain := token.Chain(tok)
		if chain[len(chain)-1] == "fonts.mono" || tok == "fonts.mono" {
			families = defaultMono
		}
		return token.Value{Type: typ, Families: families}
	case token.TypeSize:
		return token.Value{Type: typ, Number: defaultSize}
	case token.TypeWeight:
		return token.Value{Type: typ, Weight: defaultWeight}
	case token.TypeRatio:
		return token.Value{Type: typ, Number: defaultRatio}
	case token.TypeSpacing:
		return token.Value{Type: typ, Number: defaultSpacing}
	default:
		return token.Value{Type: token.TypeColor, Color: SentinelColor}
	}
}

// ValidateTokenExists reports whether a token is actually defined in
// overrides or reachable in the theme via its fallback chain, for callers
// (an editor UI) that must distinguish "defined" from "defaulted".
func ValidateTokenExists(tok string, th *theme.Theme, ov OverrideSource) error {
	if err := token.CheckSyntax(tok); err != nil {
		return err
	}
	if ov != nil {
		if _, ok := ov.UserValue(tok); ok {
			return nil
		}
		if _, ok := ov.AppValue(tok); ok {
			return nil
		}
	}
	if th != nil {
		for _, candidate := range token.Chain(tok) {
			if _, ok := th.Get(candidate); ok {
				return nil
			}
		}
	}
	return ErrUnknownToken
}
