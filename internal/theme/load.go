package theme

import (
	"encoding/json"
	"fmt"
	"os"
)

// themeFile is the on-disk JSON shape for a theme.
type themeFile struct {
	Name     string            `json:"name"`
	Type     string            `json:"type"`
	Colors   map[string]string `json:"colors"`
	Fonts    map[string]string `json:"fonts"`
	Metadata map[string]string `json:"metadata"`
}

// LoadFile reads and validates a theme from a JSON file. Safe to call from
// a background goroutine; the returned Theme becomes visible to resolution
// only once the caller publishes it through the engine.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}
	return Parse(data)
}

// Parse validates and constructs a Theme from JSON bytes.
func Parse(data []byte) (*Theme, error) {
	var tf themeFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return New(tf.Name, Type(tf.Type), tf.Colors, tf.Fonts, tf.Metadata)
}
