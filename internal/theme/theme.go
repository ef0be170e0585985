// Package theme provides the immutable Theme value object and its
// construction-time validation.
package theme

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tintlab/tint/internal/token"
)

// Theme errors.
var (
	ErrInvalidFormat = errors.New("invalid theme format")
	ErrUnknownType   = errors.New("unknown theme type")
)

// Type classifies a theme's overall brightness profile.
type Type string

const (
	TypeDark         Type = "dark"
	TypeLight        Type = "light"
	TypeHighContrast Type = "high-contrast"
)

// Dark reports whether the theme type renders on a dark background.
// High contrast counts as dark.
func (t Type) Dark() bool {
	return t != TypeLight
}

// FontPropertyValue is the aggregate font result handed to consumers. The
// field matching the resolved token's property carries the resolved value;
// the remaining fields hold system defaults.
type FontPropertyValue struct {
	Families      []string
	Size          float64
	Weight        int
	LineHeight    float64
	LetterSpacing float64
}

// Theme is an immutable named bag of color and font tokens plus metadata.
// A "new theme" is always a new Theme instance; nothing mutates one in
// place after construction. Cache correctness depends on that.
type Theme struct {
	id       string
	name     string
	typ      Type
	colors   map[string]string
	fonts    map[string]string
	metadata map[string]string
}

// New validates the given token maps and constructs a Theme. Color values
// must be 6/8-digit hex, rgb()/rgba(), or a named CSS keyword; font values
// must satisfy the numeric range of their token's type. Validation failures
// wrap ErrInvalidFormat and abort construction.
func New(name string, typ Type, colors, fonts, metadata map[string]string) (*Theme, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: theme name is required", ErrInvalidFormat)
	}
	switch typ {
	case TypeDark, TypeLight, TypeHighContrast:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typ)
	}

	for tok, value := range colors {
		if err := token.CheckSyntax(tok); err != nil {
			return nil, fmt.Errorf("%w: color token %q: %v", ErrInvalidFormat, tok, err)
		}
		if _, err := token.CanonicalColor(value); err != nil {
			return nil, fmt.Errorf("%w: color %q=%q: %v", ErrInvalidFormat, tok, value, err)
		}
	}
	for tok, value := range fonts {
		if err := token.Validate(tok, value); err != nil {
			return nil, fmt.Errorf("%w: font %q=%q: %v", ErrInvalidFormat, tok, value, err)
		}
	}

	return &Theme{
		id:       uuid.NewString(),
		name:     name,
		typ:      typ,
		colors:   copyMap(colors),
		fonts:    copyMap(fonts),
		metadata: copyMap(metadata),
	}, nil
}

// ID returns the theme's identity, unique per constructed instance. It is
// the theme component of resolution cache keys.
func (t *Theme) ID() string { return t.id }

// Name returns the theme's display name.
func (t *Theme) Name() string { return t.name }

// Kind returns the theme's brightness type.
func (t *Theme) Kind() Type { return t.typ }

// Get performs a raw lookup with no fallback and no override awareness.
// Colors are consulted first, then fonts.
func (t *Theme) Get(tok string) (string, bool) {
	if v, ok := t.colors[tok]; ok {
		return v, true
	}
	v, ok := t.fonts[tok]
	return v, ok
}

// Meta returns a metadata value.
func (t *Theme) Meta(key string) (string, bool) {
	v, ok := t.metadata[key]
	return v, ok
}

// Colors returns a copy of the color token map.
func (t *Theme) Colors() map[string]string { return copyMap(t.colors) }

// Fonts returns a copy of the font token map.
func (t *Theme) Fonts() map[string]string { return copyMap(t.fonts) }

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
