// Package token defines the themeable token taxonomy: token identifiers,
// typed values, fallback chains, and the validation/coercion rules shared by
// themes, overrides, and the resolution engine.
package token

import (
	"errors"
	"fmt"
	"strings"
)

// Token errors.
var (
	ErrMalformedToken = errors.New("malformed token")
	ErrInvalidValue   = errors.New("invalid token value")
)

// Type identifies the value kind a token resolves to.
type Type int

const (
	TypeColor Type = iota
	TypeFontFamily
	TypeSize
	TypeWeight
	TypeRatio
	TypeSpacing
)

// String returns the lowercase name of the type.
func (t Type) String() string {
	switch t {
	case TypeColor:
		return "color"
	case TypeFontFamily:
		return "font-family"
	case TypeSize:
		return "size"
	case TypeWeight:
		return "weight"
	case TypeRatio:
		return "ratio"
	case TypeSpacing:
		return "spacing"
	default:
		return "unknown"
	}
}

// Value is the tagged result of resolving a token. The Type field selects
// which of the remaining fields is meaningful.
type Value struct {
	Type Type

	// Color holds the canonical color string for TypeColor.
	Color string

	// Families holds the ordered family list for TypeFontFamily.
	// Never empty after resolution.
	Families []string

	// Number holds the numeric value for TypeSize (points), TypeRatio and
	// TypeSpacing (device-independent units).
	Number float64

	// Weight holds the numeric font weight (100-900) for TypeWeight.
	Weight int
}

// CheckSyntax verifies the structural token invariant: non-empty,
// dot-separated non-empty segments of ASCII identifier characters
// (letters, digits, underscore, hyphen).
func CheckSyntax(tok string) error {
	if tok == "" {
		return fmt.Errorf("%w: empty token", ErrMalformedToken)
	}
	for _, seg := range strings.Split(tok, ".") {
		if seg == "" {
			return fmt.Errorf("%w: %q has an empty segment", ErrMalformedToken, tok)
		}
		for i := 0; i < len(seg); i++ {
			if !identChar(seg[i]) {
				return fmt.Errorf("%w: %q contains invalid character %q", ErrMalformedToken, tok, seg[i])
			}
		}
	}
	return nil
}

func identChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_', c == '-':
		return true
	}
	return false
}

// LastSegment returns the final dot-separated segment of a token.
func LastSegment(tok string) string {
	if i := strings.LastIndexByte(tok, '.'); i >= 0 {
		return tok[i+1:]
	}
	return tok
}
