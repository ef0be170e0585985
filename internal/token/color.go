package token

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// namedColors covers the CSS basic keywords plus the extended names that
// show up in real theme files. Values are canonical #rrggbb.
var namedColors = map[string]string{
	"black":   "#000000",
	"silver":  "#c0c0c0",
	"gray":    "#808080",
	"grey":    "#808080",
	"white":   "#ffffff",
	"maroon":  "#800000",
	"red":     "#ff0000",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"magenta": "#ff00ff",
	"green":   "#008000",
	"lime":    "#00ff00",
	"olive":   "#808000",
	"yellow":  "#ffff00",
	"navy":    "#000080",
	"blue":    "#0000ff",
	"teal":    "#008080",
	"aqua":    "#00ffff",
	"cyan":    "#00ffff",
	"orange":  "#ffa500",

	"crimson":     "#dc143c",
	"coral":       "#ff7f50",
	"gold":        "#ffd700",
	"khaki":       "#f0e68c",
	"indigo":      "#4b0082",
	"violet":      "#ee82ee",
	"orchid":      "#da70d6",
	"pink":        "#ffc0cb",
	"salmon":      "#fa8072",
	"tomato":      "#ff6347",
	"chocolate":   "#d2691e",
	"brown":       "#a52a2a",
	"tan":         "#d2b48c",
	"beige":       "#f5f5dc",
	"ivory":       "#fffff0",
	"snow":        "#fffafa",
	"lavender":    "#e6e6fa",
	"plum":        "#dda0dd",
	"turquoise":   "#40e0d0",
	"skyblue":     "#87ceeb",
	"steelblue":   "#4682b4",
	"royalblue":   "#4169e1",
	"slategray":   "#708090",
	"slategrey":   "#708090",
	"dimgray":     "#696969",
	"dimgrey":     "#696969",
	"darkgray":    "#a9a9a9",
	"darkgrey":    "#a9a9a9",
	"lightgray":   "#d3d3d3",
	"lightgrey":   "#d3d3d3",
	"gainsboro":   "#dcdcdc",
	"whitesmoke":  "#f5f5f5",
	"seagreen":    "#2e8b57",
	"forestgreen": "#228b22",
	"darkgreen":   "#006400",
	"olivedrab":   "#6b8e23",
	"goldenrod":   "#daa520",
	"firebrick":   "#b22222",
	"darkred":     "#8b0000",
	"midnightblue": "#191970",
	"transparent":  "#00000000",
}

// CanonicalColor parses a color value and returns its canonical lowercase
// form: #rrggbb, or #rrggbbaa when the input carries alpha. Accepted inputs
// are 6/8-digit hex, rgb(), rgba(), and named CSS keywords. Shorthand
// 3-digit hex is rejected.
func CanonicalColor(value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", fmt.Errorf("%w: empty color", ErrInvalidValue)
	}

	lower := strings.ToLower(v)
	if hex, ok := namedColors[lower]; ok {
		return hex, nil
	}

	if strings.HasPrefix(v, "#") {
		return canonicalHex(lower)
	}
	if strings.HasPrefix(lower, "rgba(") || strings.HasPrefix(lower, "rgb(") {
		return canonicalRGBFunc(lower)
	}

	return "", fmt.Errorf("%w: unrecognized color %q", ErrInvalidValue, value)
}

func canonicalHex(v string) (string, error) {
	digits := v[1:]
	for _, r := range digits {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return "", fmt.Errorf("%w: bad hex color %q", ErrInvalidValue, v)
		}
	}
	switch len(digits) {
	case 6:
		c, err := colorful.Hex(v)
		if err != nil {
			return "", fmt.Errorf("%w: bad hex color %q", ErrInvalidValue, v)
		}
		return c.Hex(), nil
	case 8:
		return v, nil
	default:
		return "", fmt.Errorf("%w: hex color %q must have 6 or 8 digits", ErrInvalidValue, v)
	}
}

func canonicalRGBFunc(v string) (string, error) {
	open := strings.IndexByte(v, '(')
	if open < 0 || !strings.HasSuffix(v, ")") {
		return "", fmt.Errorf("%w: malformed rgb() color %q", ErrInvalidValue, v)
	}
	hasAlpha := strings.HasPrefix(v, "rgba(")

	parts := strings.Split(v[open+1:len(v)-1], ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return "", fmt.Errorf("%w: rgb() color %q needs %d components", ErrInvalidValue, v, want)
	}

	var rgb [3]int
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return "", fmt.Errorf("%w: rgb() component %q out of range", ErrInvalidValue, parts[i])
		}
		rgb[i] = n
	}

	if !hasAlpha {
		return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2]), nil
	}

	alpha, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil || alpha < 0 || alpha > 1 {
		return "", fmt.Errorf("%w: rgba() alpha %q out of range", ErrInvalidValue, parts[3])
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", rgb[0], rgb[1], rgb[2], int(alpha*255+0.5)), nil
}
