package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Numeric validation ranges.
const (
	SizeMin    = 6
	SizeMax    = 144
	WeightMin  = 100
	WeightMax  = 900
	RatioMin   = 0.5
	RatioMax   = 3.0
	SpacingMin = -5
	SpacingMax = 20
)

// ParseFamilies splits a comma-separated font family string into an ordered
// list, trimming whitespace and surrounding quotes.
func ParseFamilies(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		name := strings.Trim(strings.TrimSpace(part), `"'`)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// Coerce parses a raw string value into a typed Value.
func Coerce(raw string, typ Type) (Value, error) {
	switch typ {
	case TypeColor:
		hex, err := CanonicalColor(raw)
		if err != nil {
			return Value{}, err
		}
		return Value{Type: TypeColor, Color: hex}, nil

	case TypeFontFamily:
		families := ParseFamilies(raw)
		if len(families) == 0 {
			return Value{}, fmt.Errorf("%w: empty font family list %q", ErrInvalidValue, raw)
		}
		return Value{Type: TypeFontFamily, Families: families}, nil

	case TypeSize:
		n, err := parseNumber(raw, "pt")
		if err != nil || n < SizeMin || n > SizeMax {
			return Value{}, fmt.Errorf("%w: font size %q must be %d-%d", ErrInvalidValue, raw, SizeMin, SizeMax)
		}
		return Value{Type: TypeSize, Number: n}, nil

	case TypeWeight:
		if w, ok := WeightFromName(raw); ok {
			return Value{Type: TypeWeight, Weight: w}, nil
		}
		w, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || w < WeightMin || w > WeightMax {
			return Value{}, fmt.Errorf("%w: font weight %q must be a name or %d-%d", ErrInvalidValue, raw, WeightMin, WeightMax)
		}
		return Value{Type: TypeWeight, Weight: w}, nil

	case TypeRatio:
		n, err := parseNumber(raw, "")
		if err != nil || n < RatioMin || n > RatioMax {
			return Value{}, fmt.Errorf("%w: ratio %q must be %.1f-%.1f", ErrInvalidValue, raw, RatioMin, RatioMax)
		}
		return Value{Type: TypeRatio, Number: n}, nil

	case TypeSpacing:
		n, err := parseNumber(raw, "")
		if err != nil || n < SpacingMin || n > SpacingMax {
			return Value{}, fmt.Errorf("%w: spacing %q must be %d-%d", ErrInvalidValue, raw, SpacingMin, SpacingMax)
		}
		return Value{Type: TypeSpacing, Number: n}, nil

	default:
		return Value{}, fmt.Errorf("%w: unknown token type %d", ErrInvalidValue, typ)
	}
}

// Validate checks a raw value against the type declared (or inferred) for
// the token. This is the shared validator behind theme construction and
// override writes.
func Validate(tok, raw string) error {
	if err := CheckSyntax(tok); err != nil {
		return err
	}
	_, err := Coerce(raw, TypeOf(tok))
	return err
}

func parseNumber(raw, unit string) (float64, error) {
	v := strings.TrimSpace(raw)
	if unit != "" {
		v = strings.TrimSpace(strings.TrimSuffix(v, unit))
	}
	return strconv.ParseFloat(v, 64)
}
