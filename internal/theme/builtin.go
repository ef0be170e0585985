package theme

// Built-in palettes. The engine falls back to Dark() when no theme has been
// supplied, so a freshly constructed engine always resolves something.

func mustBuild(b *Builder) *Theme {
	t, err := b.Build()
	if err != nil {
		panic("builtin theme failed validation: " + err.Error())
	}
	return t
}

// Dark is the baseline dark palette.
func Dark() *Theme {
	return mustBuild(NewBuilder("dark", TypeDark).
		Color("ui.background", "#0B0F14").
		Color("panel.background", "#121821").
		Color("ui.foreground", "#E6EDF3").
		Color("text.muted", "#8B9AAE").
		Color("border", "#223043").
		Color("accent.primary", "#5B8DEF").
		Color("border.focus", "#7AA2F7").
		Color("status.success", "#3FB950").
		Color("status.warning", "#D29922").
		Color("status.error", "#F85149").
		Color("status.info", "#58A6FF").
		Font("fonts.mono", "JetBrains Mono, Consolas, monospace").
		Font("fonts.sans", "Inter, Segoe UI, sans-serif").
		Font("fonts.size", "13").
		Font("fonts.weight", "normal").
		Font("fonts.lineHeight", "1.4").
		Font("fonts.letterSpacing", "0"))
}

// Light is the baseline light palette.
func Light() *Theme {
	return mustBuild(NewBuilder("light", TypeLight).
		Color("ui.background", "#FFFFFF").
		Color("panel.background", "#F3F5F7").
		Color("ui.foreground", "#1F2328").
		Color("text.muted", "#59636E").
		Color("border", "#D1D9E0").
		Color("accent.primary", "#0969DA").
		Color("border.focus", "#218BFF").
		Color("status.success", "#1A7F37").
		Color("status.warning", "#9A6700").
		Color("status.error", "#CF222E").
		Color("status.info", "#0969DA").
		Font("fonts.mono", "JetBrains Mono, Consolas, monospace").
		Font("fonts.sans", "Inter, Segoe UI, sans-serif").
		Font("fonts.size", "13").
		Font("fonts.weight", "normal").
		Font("fonts.lineHeight", "1.4").
		Font("fonts.letterSpacing", "0"))
}

// HighContrast favors visibility for accessibility setups.
func HighContrast() *Theme {
	return mustBuild(NewBuilder("high-contrast", TypeHighContrast).
		Color("ui.background", "#000000").
		Color("panel.background", "#0A0A0A").
		Color("ui.foreground", "#FFFFFF").
		Color("text.muted", "#C0C0C0").
		Color("border", "#FFFFFF").
		Color("accent.primary", "#00A2FF").
		Color("border.focus", "#FFD400").
		Color("status.success", "#00FF5A").
		Color("status.warning", "#FFB000").
		Color("status.error", "#FF4040").
		Color("status.info", "#66CCFF").
		Font("fonts.mono", "JetBrains Mono, Consolas, monospace").
		Font("fonts.sans", "Inter, Segoe UI, sans-serif").
		Font("fonts.size", "14").
		Font("fonts.weight", "medium").
		Font("fonts.lineHeight", "1.5").
		Font("fonts.letterSpacing", "0"))
}
