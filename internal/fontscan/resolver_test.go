package fontscan

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeCatalog counts enumerations so tests can assert memoization.
type fakeCatalog struct {
	mu       sync.Mutex
	families []string
	err      error
	calls    int
}

func (c *fakeCatalog) Families(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.families, c.err
}

func (c *fakeCatalog) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestFirstAvailablePicksInOrder(t *testing.T) {
	cat := &fakeCatalog{families: []string{"DejaVu Sans", "Consolas", "Noto Sans"}}
	r := NewResolver(cat)

	family, ok := r.FirstAvailable([]string{"Cascadia Code", "Consolas", "monospace"})
	require.True(t, ok)
	require.Equal(t, "Consolas", family)

	// Candidate order wins, not catalog order.
	family, ok = r.FirstAvailable([]string{"Noto Sans", "Consolas"})
	require.True(t, ok)
	require.Equal(t, "Noto Sans", family)
}

func TestFirstAvailableCaseInsensitive(t *testing.T) {
	cat := &fakeCatalog{families: []string{"JetBrains Mono"}}
	r := NewResolver(cat)

	family, ok := r.FirstAvailable([]string{"jetbrains mono"})
	require.True(t, ok)
	require.Equal(t, "jetbrains mono", family)
}

func TestFirstAvailableNoneInstalled(t *testing.T) {
	cat := &fakeCatalog{families: []string{"Arial"}}
	r := NewResolver(cat)

	_, ok := r.FirstAvailable([]string{"Cascadia Code", "Fira Code"})
	require.False(t, ok)
}

func TestMemoizationPerTuple(t *testing.T) {
	cat := &fakeCatalog{families: []string{"Consolas"}}
	r := NewResolver(cat)

	for i := 0; i < 10; i++ {
		r.FirstAvailable([]string{"Consolas", "monospace"})
		r.FirstAvailable([]string{"Inter", "sans-serif"})
	}
	require.Equal(t, 1, cat.callCount())
}

func TestClearCacheReenumerates(t *testing.T) {
	cat := &fakeCatalog{}
	r := NewResolver(cat)

	_, ok := r.FirstAvailable([]string{"Fira Code"})
	require.False(t, ok)

	cat.mu.Lock()
	cat.families = []string{"Fira Code"}
	cat.mu.Unlock()

	// Still the stale answer until the cache is cleared.
	_, ok = r.FirstAvailable([]string{"Fira Code"})
	require.False(t, ok)

	r.ClearCache()
	family, ok := r.FirstAvailable([]string{"Fira Code"})
	require.True(t, ok)
	require.Equal(t, "Fira Code", family)
	require.Equal(t, 2, cat.callCount())
}

func TestCatalogErrorMeansNothingInstalled(t *testing.T) {
	cat := &fakeCatalog{err: errors.New("fc-list: not found")}
	r := NewResolver(cat)

	_, ok := r.FirstAvailable([]string{"Consolas"})
	require.False(t, ok)
}

func TestNilCatalog(t *testing.T) {
	r := NewResolver(nil)
	_, ok := r.FirstAvailable([]string{"Consolas"})
	require.False(t, ok)

	_, ok = r.FirstAvailable(nil)
	require.False(t, ok)
}
