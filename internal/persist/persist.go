// Package persist restores and saves override tiers on behalf of the
// embedding application. The engine itself never touches disk; this
// adapter drives it through the same public surface any caller would use.
package persist

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/tintlab/tint/internal/engine"
	"github.com/tintlab/tint/internal/logging"
	"github.com/tintlab/tint/internal/overrides"
)

// overridesKey is the top-level config key. Entries are stored as a flat
// list rather than nested maps so dotted, case-sensitive token names
// survive the config round trip.
const overridesKey = "overrides"

// File reads and writes override state at a fixed config path. The format
// follows the file extension (yaml, json, toml — anything viper writes).
type File struct {
	path   string
	logger zerolog.Logger
}

// NewFile creates a persistence adapter for the given path.
func NewFile(path string) *File {
	return &File{
		path:   path,
		logger: logging.Component("persist"),
	}
}

// Restore loads the config file and applies each stored override to the
// engine. Entries that fail validation (stale tokens from an older install,
// hand-edited files) are logged and skipped, never fatal. Returns the
// number of overrides applied. A missing file applies nothing.
func (f *File) Restore(e *engine.Engine) (int, error) {
	v := viper.New()
	v.SetConfigFile(f.path)

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read override config: %w", err)
	}

	applied := 0
	raw, _ := v.Get(overridesKey).([]any)
	for _, item := range raw {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		tier, _ := entry["tier"].(string)
		tok, _ := entry["token"].(string)
		value, _ := entry["value"].(string)

		if err := e.SetOverride(overrides.Tier(tier), tok, value); err != nil {
			f.logger.Warn().
				Err(err).
				Str("tier", tier).
				Str("token", tok).
				Msg("skipping persisted override")
			continue
		}
		applied++
	}

	f.logger.Debug().Int("applied", applied).Str("path", f.path).Msg("overrides restored")
	return applied, nil
}

// Save writes both override tiers to the config file, replacing its
// previous contents. Entries are sorted for stable diffs.
func (f *File) Save(e *engine.Engine) error {
	var entries []map[string]string
	for _, tier := range []overrides.Tier{overrides.TierUser, overrides.TierApp} {
		m := e.Overrides(tier)
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			entries = append(entries, map[string]string{
				"tier":  string(tier),
				"token": k,
				"value": m[k],
			})
		}
	}
	v := viper.New()
	v.Set(overridesKey, entries)
	if err := v.WriteConfigAs(f.path); err != nil {
		return fmt.Errorf("failed to write override config: %w", err)
	}

	f.logger.Debug().Int("count", len(entries)).Str("path", f.path).Msg("overrides saved")
	return nil
}
