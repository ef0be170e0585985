// Package styles converts resolved theme tokens into lipgloss styles for
// the application's widgets.
package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/tintlab/tint/internal/engine"
)

// Styles contains lipgloss styles derived from resolved tokens. Overrides
// and fallback chains are already applied; widgets use these directly.
type Styles struct {
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Panel   lipgloss.Style
	Border  lipgloss.Style
	Focus   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

// Build resolves the widget token set through the engine and constructs
// the style sheet.
func Build(e *engine.Engine) Styles {
	fg := lipgloss.Color(e.ResolveColor("ui.foreground"))
	panel := lipgloss.Color(e.ResolveColor("panel.background"))
	border := lipgloss.Color(e.ResolveColor("border"))
	bold := e.ResolveWeight("ui.fontWeight") >= 600

	return Styles{
		Title:   lipgloss.NewStyle().Foreground(fg).Bold(true),
		Text:    lipgloss.NewStyle().Foreground(fg).Bold(bold),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(e.ResolveColor("text.muted"))),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(e.ResolveColor("accent.primary"))),
		Panel:   lipgloss.NewStyle().Foreground(fg).Background(panel).BorderStyle(lipgloss.NormalBorder()).BorderForeground(border),
		Border:  lipgloss.NewStyle().Foreground(border),
		Focus:   lipgloss.NewStyle().Foreground(lipgloss.Color(e.ResolveColor("border.focus"))).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(e.ResolveColor("status.success"))),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(e.ResolveColor("status.warning"))),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(e.ResolveColor("status.error"))),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color(e.ResolveColor("status.info"))),
	}
}

// Sheet is a live style sheet that rebuilds itself on theme change. It
// subscribes weakly, so dropping the last reference releases it without an
// explicit unsubscribe.
type Sheet struct {
	engine *engine.Engine

	mu      sync.RWMutex
	current Styles
}

// Watch builds a sheet and keeps it current across theme and override
// changes.
func Watch(e *engine.Engine) *Sheet {
	s := &Sheet{engine: e, current: Build(e)}
	engine.Subscribe(e, s, (*Sheet).rebuild)
	return s
}

// Styles returns the most recently built style sheet.
func (s *Sheet) Styles() Styles {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Sheet) rebuild() {
	built := Build(s.engine)
	s.mu.Lock()
	s.current = built
	s.mu.Unlock()
}
