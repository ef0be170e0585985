package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewValidates(t *testing.T) {
	th, err := New("test", TypeDark,
		map[string]string{"editor.background": "#101010", "editor.foreground": "rgb(212,212,212)"},
		map[string]string{"fonts.mono": "Consolas, monospace", "fonts.size": "13"},
		nil)
	require.NoError(t, err)

	v, ok := th.Get("editor.background")
	require.True(t, ok)
	require.Equal(t, "#101010", v)

	v, ok = th.Get("fonts.mono")
	require.True(t, ok)
	require.Equal(t, "Consolas, monospace", v)

	_, ok = th.Get("missing.token")
	require.False(t, ok)
}

func TestNewRejectsMalformedColor(t *testing.T) {
	_, err := New("test", TypeDark, map[string]string{"editor.background": "#12345"}, nil, nil)
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = New("test", TypeDark, map[string]string{"editor.background": "blurple"}, nil, nil)
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestNewRejectsOutOfRangeFont(t *testing.T) {
	_, err := New("test", TypeDark, nil, map[string]string{"fonts.size": "300"}, nil)
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = New("test", TypeDark, nil, map[string]string{"fonts.weight": "950"}, nil)
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = New("test", TypeDark, nil, map[string]string{"fonts.lineHeight": "9.0"}, nil)
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestNewRejectsUnknownType(t *testing.T) {
	_, err := New("test", Type("sepia"), nil, nil, nil)
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestThemeIsIsolatedFromInputMaps(t *testing.T) {
	colors := map[string]string{"editor.background": "#101010"}
	th, err := New("test", TypeDark, colors, nil, nil)
	require.NoError(t, err)

	colors["editor.background"] = "#ffffff"
	v, _ := th.Get("editor.background")
	require.Equal(t, "#101010", v)

	// Accessor copies must not alias internal state either.
	th.Colors()["editor.background"] = "#000001"
	v, _ = th.Get("editor.background")
	require.Equal(t, "#101010", v)
}

func TestThemeIdentityIsUniquePerInstance(t *testing.T) {
	a, err := New("same", TypeDark, nil, nil, nil)
	require.NoError(t, err)
	b, err := New("same", TypeDark, nil, nil, nil)
	require.NoError(t, err)
	require.NotEqual(t, a.ID(), b.ID())
}

func TestBuilder(t *testing.T) {
	th, err := NewBuilder("custom", TypeLight).
		Color("ui.background", "white").
		Font("fonts.size", "12").
		Meta("author", "tint").
		Build()
	require.NoError(t, err)
	require.Equal(t, "custom", th.Name())
	require.Equal(t, TypeLight, th.Kind())

	author, ok := th.Meta("author")
	require.True(t, ok)
	require.Equal(t, "tint", author)
}

func TestParseAndLoadFile(t *testing.T) {
	data := []byte(`{
		"name": "slate",
		"type": "dark",
		"colors": {"ui.background": "#1E293B"},
		"fonts": {"fonts.mono": "Fira Code, monospace"}
	}`)

	th, err := Parse(data)
	require.NoError(t, err)
	require.Equal(t, "slate", th.Name())

	path := filepath.Join(t.TempDir(), "slate.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	th, err = LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, TypeDark, th.Kind())

	_, err = Parse([]byte(`{not json`))
	require.ErrorIs(t, err, ErrInvalidFormat)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestBuiltinsValidate(t *testing.T) {
	for _, th := range []*Theme{Dark(), Light(), HighContrast()} {
		require.NotEmpty(t, th.Name())
		_, ok := th.Get("ui.background")
		require.True(t, ok, th.Name())
	}
	require.True(t, TypeDark.Dark())
	require.True(t, TypeHighContrast.Dark())
	require.False(t, TypeLight.Dark())
}
