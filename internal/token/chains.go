package token

import "strings"

// chainEntry declares a token's type and its ordered fallback candidates.
// The token itself is always the first candidate.
type chainEntry struct {
	typ   Type
	chain []string
}

// chains is the static fallback-chain table. Every chain terminates at a
// category default token (fonts.*, ui.*) or, failing that, resolution uses
// the hard system default for the declared type.
var chains = map[string]chainEntry{
	// Font family tokens.
	"terminal.fontFamily": {TypeFontFamily, []string{"terminal.fontFamily", "fonts.mono"}},
	"editor.fontFamily":   {TypeFontFamily, []string{"editor.fontFamily", "fonts.mono"}},
	"ui.fontFamily":       {TypeFontFamily, []string{"ui.fontFamily", "fonts.sans"}},
	"tabs.fontFamily":     {TypeFontFamily, []string{"tabs.fontFamily", "ui.fontFamily", "fonts.sans"}},
	"fonts.mono":          {TypeFontFamily, []string{"fonts.mono"}},
	"fonts.sans":          {TypeFontFamily, []string{"fonts.sans"}},
	"fonts.serif":         {TypeFontFamily, []string{"fonts.serif"}},

	// Size tokens (points).
	"terminal.fontSize": {TypeSize, []string{"terminal.fontSize", "fonts.size"}},
	"editor.fontSize":   {TypeSize, []string{"editor.fontSize", "fonts.size"}},
	"ui.fontSize":       {TypeSize, []string{"ui.fontSize", "fonts.size"}},
	"tabs.fontSize":     {TypeSize, []string{"tabs.fontSize", "ui.fontSize", "fonts.size"}},
	"fonts.size":        {TypeSize, []string{"fonts.size"}},

	// Weight tokens.
	"ui.fontWeight":     {TypeWeight, []string{"ui.fontWeight", "fonts.weight"}},
	"editor.fontWeight": {TypeWeight, []string{"editor.fontWeight", "fonts.weight"}},
	"button.fontWeight": {TypeWeight, []string{"button.fontWeight", "ui.fontWeight", "fonts.weight"}},
	"tabs.fontWeight":   {TypeWeight, []string{"tabs.fontWeight", "ui.fontWeight", "fonts.weight"}},
	"fonts.weight":      {TypeWeight, []string{"fonts.weight"}},

	// Ratio tokens.
	"editor.lineHeight":   {TypeRatio, []string{"editor.lineHeight", "fonts.lineHeight"}},
	"terminal.lineHeight": {TypeRatio, []string{"terminal.lineHeight", "fonts.lineHeight"}},
	"ui.lineHeight":       {TypeRatio, []string{"ui.lineHeight", "fonts.lineHeight"}},
	"fonts.lineHeight":    {TypeRatio, []string{"fonts.lineHeight"}},

	// Spacing tokens.
	"editor.letterSpacing": {TypeSpacing, []string{"editor.letterSpacing", "fonts.letterSpacing"}},
	"ui.letterSpacing":     {TypeSpacing, []string{"ui.letterSpacing", "fonts.letterSpacing"}},
	"fonts.letterSpacing":  {TypeSpacing, []string{"fonts.letterSpacing"}},
}

// familyCategories are tokens known to name font-family categories even
// though their names carry no "family" fragment.
var familyCategories = map[string]struct{}{
	"fonts.mono":  {},
	"fonts.sans":  {},
	"fonts.serif": {},
}

// Chain returns the ordered fallback candidates for a token. Tokens without
// a table entry fall back to a single-element chain of themselves.
func Chain(tok string) []string {
	if e, ok := chains[tok]; ok {
		return e.chain
	}
	return []string{tok}
}

// DeclaredType reports the type declared in the chain table, if any.
func DeclaredType(tok string) (Type, bool) {
	e, ok := chains[tok]
	return e.typ, ok
}

// TypeOf returns the token's declared type, or infers one from the token's
// structure. Inference is a compatibility fallback for tokens absent from
// the chain table: "size" fragments infer Size, "weight" infers Weight,
// "family" (or a known family category) infers FontFamily, "lineheight"
// infers Ratio, "spacing" infers Spacing, everything else infers Color.
func TypeOf(tok string) Type {
	if t, ok := DeclaredType(tok); ok {
		return t
	}
	lower := strings.ToLower(tok)
	switch {
	case strings.Contains(lower, "size"):
		return TypeSize
	case strings.Contains(lower, "weight"):
		return TypeWeight
	case strings.Contains(lower, "family"):
		return TypeFontFamily
	case strings.Contains(lower, "lineheight"):
		return TypeRatio
	case strings.Contains(lower, "spacing"):
		return TypeSpacing
	}
	if _, ok := familyCategories[tok]; ok {
		return TypeFontFamily
	}
	return TypeColor
}
