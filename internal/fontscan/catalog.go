// Package fontscan probes the host font catalog and resolves font fallback
// chains against what is actually installed.
package fontscan

import (
	"context"
	"os/exec"
	"strings"
)

// Catalog enumerates installed font family names. Implementations may be
// slow (OS font enumeration); callers are expected to memoize through
// Resolver rather than query a Catalog directly.
type Catalog interface {
	Families(ctx context.Context) ([]string, error)
}

// FcListCatalog enumerates fonts via fontconfig's fc-list tool.
type FcListCatalog struct {
	// Path overrides the fc-list binary location. Empty means $PATH lookup.
	Path string
}

// Families runs `fc-list : family` and returns every family name found.
// Comma-separated aliases on one line are split into separate entries.
func (c *FcListCatalog) Families(ctx context.Context) ([]string, error) {
	bin := c.Path
	if bin == "" {
		bin = "fc-list"
	}

	out, err := exec.CommandContext(ctx, bin, ":", "family").Output()
	if err != nil {
		return nil, err
	}

	var families []string
	for _, line := range strings.Split(string(out), "\n") {
		for _, name := range strings.Split(line, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				families = append(families, name)
			}
		}
	}
	return families, nil
}
