package resolve

import (
	"strings"

	"github.com/tintlab/tint/internal/token"
)

// heuristicRule matches a substring of a color token's last segment to a
// canned value per theme brightness. Rules are evaluated in order; first
// match wins.
type heuristicRule struct {
	substr string
	dark   string
	light  string
}

// heuristicRules is implementation-defined (the exact pattern set is an
// acknowledged ambiguity for third-party tokens). Values follow the canned
// palettes the built-in themes use. High-contrast themes take the dark
// column.
var heuristicRules = []heuristicRule{
	{"background", "#1e1e1e", "#ffffff"},
	{"foreground", "#d4d4d4", "#1f1f1f"},
	{"border", "#454545", "#d0d0d0"},
	{"hover", "#2a2d2e", "#f0f0f0"},
	{"active", "#37373d", "#e4e6f1"},
	{"primary", "#0e639c", "#007acc"},
	{"secondary", "#3a3d41", "#e1e1e1"},
	{"error", "#f85149", "#d13438"},
	{"warning", "#d29922", "#bf8803"},
	{"success", "#3fb950", "#107c10"},
	{"info", "#58a6ff", "#0969da"},
	{"shadow", "#000000", "#dddddd"},
	{"highlight", "#264f78", "#add6ff"},
	{"text", "#d4d4d4", "#1f1f1f"},
}

// heuristicColor pattern-matches the token's last segment against the rule
// table. Only colors go through here; other types fall straight to their
// system defaults.
func heuristicColor(tok string, dark bool) (string, bool) {
	segment := strings.ToLower(token.LastSegment(tok))
	for _, rule := range heuristicRules {
		if strings.Contains(segment, rule.substr) {
			if dark {
				return rule.dark, true
			}
			return rule.light, true
		}
	}
	return "", false
}
