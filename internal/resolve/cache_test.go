package resolve

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tintlab/tint/internal/overrides"
)

func TestCacheHitAvoidsRecompute(t *testing.T) {
	c := NewCache(New(nil))
	th := darkTheme(t)
	ov := overrides.NewStore()

	first := c.GetOrResolve("editor.background", th, ov)
	second := c.GetOrResolve("editor.background", th, ov)

	require.Equal(t, first, second)
	stats := c.Stats()
	require.Equal(t, uint64(1), stats.Misses)
	require.Equal(t, uint64(1), stats.Hits)
}

func TestCacheCoherenceAcrossMutations(t *testing.T) {
	c := NewCache(New(nil))
	th := darkTheme(t)
	ov := overrides.NewStore()

	base := c.GetOrResolve("editor.background", th, ov)
	require.Equal(t, "#101418", base.Color)

	// Mutate, read, mutate back, read again: both reads must be correct
	// and distinct even without an explicit InvalidateAll, because the
	// fingerprint is part of the key.
	require.NoError(t, ov.Set(overrides.TierUser, "editor.background", "#abcdef"))
	c.InvalidateAll()
	overridden := c.GetOrResolve("editor.background", th, ov)
	require.Equal(t, "#abcdef", overridden.Color)

	require.True(t, ov.Clear(overrides.TierUser, "editor.background"))
	c.InvalidateAll()
	reverted := c.GetOrResolve("editor.background", th, ov)
	require.Equal(t, "#101418", reverted.Color)

	require.NotEqual(t, overridden.Color, reverted.Color)
}

func TestCacheFingerprintGateWithoutClear(t *testing.T) {
	c := NewCache(New(nil))
	th := darkTheme(t)
	ov := overrides.NewStore()

	c.GetOrResolve("editor.background", th, ov)
	require.NoError(t, ov.Set(overrides.TierUser, "editor.background", "#abcdef"))

	// A stale entry is unreachable: the bumped fingerprint selects a new key.
	v := c.GetOrResolve("editor.background", th, ov)
	require.Equal(t, "#abcdef", v.Color)
}

func TestCacheKeyedByThemeIdentity(t *testing.T) {
	c := NewCache(New(nil))
	ov := overrides.NewStore()

	dark := darkTheme(t)
	v := c.GetOrResolve("editor.background", dark, ov)
	require.Equal(t, "#101418", v.Color)

	other := darkTheme(t) // same content, new identity
	v = c.GetOrResolve("editor.background", other, ov)
	require.Equal(t, "#101418", v.Color)
	require.Equal(t, uint64(2), c.Stats().Misses)
}

func TestInvalidateAllEmptiesWholesale(t *testing.T) {
	c := NewCache(New(nil))
	th := darkTheme(t)
	ov := overrides.NewStore()

	c.GetOrResolve("editor.background", th, ov)
	c.GetOrResolve("editor.foreground", th, ov)
	require.Equal(t, 2, c.Len())

	c.InvalidateAll()
	require.Equal(t, 0, c.Len())
	require.Equal(t, uint64(1), c.Stats().Invalidated)
}
