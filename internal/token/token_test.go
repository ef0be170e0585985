package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckSyntax(t *testing.T) {
	require.NoError(t, CheckSyntax("editor.fontSize"))
	require.NoError(t, CheckSyntax("border"))

	require.NoError(t, CheckSyntax("issue.status.in_progress"))
	require.NoError(t, CheckSyntax("high-contrast.border"))

	require.ErrorIs(t, CheckSyntax(""), ErrMalformedToken)
	require.ErrorIs(t, CheckSyntax("editor..fontSize"), ErrMalformedToken)
	require.ErrorIs(t, CheckSyntax(".leading"), ErrMalformedToken)
	require.ErrorIs(t, CheckSyntax("trailing."), ErrMalformedToken)
	require.ErrorIs(t, CheckSyntax("écran.couleur"), ErrMalformedToken)
	require.ErrorIs(t, CheckSyntax("not a token"), ErrMalformedToken)
	require.ErrorIs(t, CheckSyntax("editor.font size"), ErrMalformedToken)
	require.ErrorIs(t, CheckSyntax("editor.fg#hex"), ErrMalformedToken)
}

func TestTypeOfDeclared(t *testing.T) {
	require.Equal(t, TypeFontFamily, TypeOf("terminal.fontFamily"))
	require.Equal(t, TypeSize, TypeOf("tabs.fontSize"))
	require.Equal(t, TypeWeight, TypeOf("button.fontWeight"))
	require.Equal(t, TypeRatio, TypeOf("editor.lineHeight"))
	require.Equal(t, TypeSpacing, TypeOf("ui.letterSpacing"))
	require.Equal(t, TypeFontFamily, TypeOf("fonts.mono"))
}

func TestTypeOfInferred(t *testing.T) {
	// Tokens absent from the chain table fall back to structural inference.
	require.Equal(t, TypeSize, TypeOf("sidebar.iconSize"))
	require.Equal(t, TypeWeight, TypeOf("statusbar.fontWeight"))
	require.Equal(t, TypeFontFamily, TypeOf("popup.fontFamily"))
	require.Equal(t, TypeColor, TypeOf("sidebar.background"))
	require.Equal(t, TypeColor, TypeOf("some.custom.token"))
}

func TestChain(t *testing.T) {
	require.Equal(t, []string{"terminal.fontFamily", "fonts.mono"}, Chain("terminal.fontFamily"))
	require.Equal(t, []string{"tabs.fontSize", "ui.fontSize", "fonts.size"}, Chain("tabs.fontSize"))
	// Unknown tokens chain to themselves only.
	require.Equal(t, []string{"custom.thing"}, Chain("custom.thing"))
}

func TestWeightFromName(t *testing.T) {
	cases := map[string]int{
		"thin":     100,
		"light":    300,
		"normal":   400,
		"medium":   500,
		"semibold": 600,
		"bold":     700,
		"black":    900,
	}
	for name, want := range cases {
		got, ok := WeightFromName(name)
		require.True(t, ok, name)
		require.Equal(t, want, got, name)
	}

	got, ok := WeightFromName(" Bold ")
	require.True(t, ok)
	require.Equal(t, 700, got)

	_, ok = WeightFromName("heavy")
	require.False(t, ok)
}

func TestCanonicalColor(t *testing.T) {
	for input, want := range map[string]string{
		"#FFAA00":           "#ffaa00",
		"#FFAA0080":         "#ffaa0080",
		"rgb(255, 170, 0)":  "#ffaa00",
		"rgba(255,170,0,1)": "#ffaa00ff",
		"rgba(0,0,0,0.5)":   "#00000080",
		"red":               "#ff0000",
		"SteelBlue":         "#4682b4",
	} {
		got, err := CanonicalColor(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}

	// Shorthand 3-digit hex is not an accepted theme color form.
	for _, bad := range []string{"", "#fa0", "#12345", "#gggggg", "rgb(256,0,0)", "rgba(0,0,0,2)", "rgb(1,2)", "notacolor"} {
		_, err := CanonicalColor(bad)
		require.ErrorIs(t, err, ErrInvalidValue, bad)
	}
}

func TestCoerce(t *testing.T) {
	v, err := Coerce("Cascadia Code, 'JetBrains Mono', monospace", TypeFontFamily)
	require.NoError(t, err)
	require.Equal(t, []string{"Cascadia Code", "JetBrains Mono", "monospace"}, v.Families)

	v, err = Coerce("13", TypeSize)
	require.NoError(t, err)
	require.Equal(t, 13.0, v.Number)

	v, err = Coerce("14pt", TypeSize)
	require.NoError(t, err)
	require.Equal(t, 14.0, v.Number)

	v, err = Coerce("semibold", TypeWeight)
	require.NoError(t, err)
	require.Equal(t, 600, v.Weight)

	v, err = Coerce("450", TypeWeight)
	require.NoError(t, err)
	require.Equal(t, 450, v.Weight)

	v, err = Coerce("1.4", TypeRatio)
	require.NoError(t, err)
	require.Equal(t, 1.4, v.Number)

	_, err = Coerce("5", TypeSize)
	require.ErrorIs(t, err, ErrInvalidValue)
	_, err = Coerce("950", TypeWeight)
	require.ErrorIs(t, err, ErrInvalidValue)
	_, err = Coerce("0.1", TypeRatio)
	require.ErrorIs(t, err, ErrInvalidValue)
	_, err = Coerce("", TypeFontFamily)
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate("editor.background", "#101010"))
	require.NoError(t, Validate("editor.fontSize", "12"))
	require.ErrorIs(t, Validate("editor.fontSize", "300"), ErrInvalidValue)
	require.ErrorIs(t, Validate("", "#101010"), ErrMalformedToken)
}
