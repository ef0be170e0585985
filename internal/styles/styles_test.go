package styles

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/tintlab/tint/internal/engine"
	"github.com/tintlab/tint/internal/overrides"
	"github.com/tintlab/tint/internal/theme"
)

func newEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e := engine.New(engine.Config{
		InitialTheme:   theme.Dark(),
		CoalesceWindow: 5 * time.Millisecond,
	})
	t.Cleanup(e.Close)
	return e
}

func TestBuildUsesResolvedTokens(t *testing.T) {
	e := newEngine(t)
	s := Build(e)

	require.Equal(t, lipgloss.Color("#e6edf3"), s.Text.GetForeground())
	require.Equal(t, lipgloss.Color("#223043"), s.Border.GetForeground())
	require.True(t, s.Title.GetBold())
}

func TestBuildSeesOverrides(t *testing.T) {
	e := newEngine(t)
	require.NoError(t, e.SetOverride(overrides.TierUser, "accent.primary", "#ff8800"))

	s := Build(e)
	require.Equal(t, lipgloss.Color("#ff8800"), s.Accent.GetForeground())
}

func TestSheetRebuildsOnChange(t *testing.T) {
	e := newEngine(t)
	sheet := Watch(e)

	require.Equal(t, lipgloss.Color("#e6edf3"), sheet.Styles().Text.GetForeground())

	require.NoError(t, e.SetOverride(overrides.TierUser, "ui.foreground", "#ffcc00"))
	e.Flush()

	require.Equal(t, lipgloss.Color("#ffcc00"), sheet.Styles().Text.GetForeground())
}
