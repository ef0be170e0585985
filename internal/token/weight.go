package token

import "strings"

// weightNames maps symbolic weight names to their numeric values. The table
// is fixed; changing it silently breaks persisted overrides.
var weightNames = map[string]int{
	"thin":     100,
	"light":    300,
	"normal":   400,
	"medium":   500,
	"semibold": 600,
	"bold":     700,
	"black":    900,
}

// WeightFromName maps a symbolic weight name ("semibold") to its numeric
// value. Lookup is case-insensitive.
func WeightFromName(name string) (int, bool) {
	w, ok := weightNames[strings.ToLower(strings.TrimSpace(name))]
	return w, ok
}
