package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTheme = `
name = "Paper"

[styles.Default]
fg = "#101010"
bg = "white"

[styles.Element]
bold = true

[styles."Element.selected"]
bg = "#ffee00"
`

func TestParseThemeInheritsDefault(t *testing.T) {
	th, err := ParseTheme(sampleTheme)
	require.NoError(t, err)
	assert.Equal(t, "Paper", th.Name)

	fg, bg, attrs := th.GetStyle(StyleElement).Decompose()
	assert.Equal(t, tcell.NewHexColor(0x101010), fg)
	assert.Equal(t, tcell.ColorWhite, bg)
	assert.NotZero(t, attrs&tcell.AttrBold)

	_, bg, _ = th.GetStyle(StyleElementSelected).Decompose()
	assert.Equal(t, tcell.NewHexColor(0xffee00), bg)

	// Element.focused is missing and falls back to Element.
	assert.Equal(t, th.GetStyle(StyleElement), th.GetStyle(StyleElementFocused))
	// Toolbar is missing entirely and falls back to Default.
	assert.Equal(t, th.GetStyle(StyleDefault), th.GetStyle(StyleToolbarButton))
}

func TestParseColorString(t *testing.T) {
	c, err := parseColorString("#FF0000")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewHexColor(0xff0000), c)

	c, err = parseColorString("reset")
	require.NoError(t, err)
	assert.Equal(t, tcell.ColorReset, c)

	_, err = parseColorString("#123")
	assert.Error(t, err)
	_, err = parseColorString("no-such-color")
	assert.Error(t, err)
}

func TestManagerLoadsDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "paper.toml"), []byte(sampleTheme), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.toml"), []byte("[styles"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	mgr := NewManager(dir)
	assert.Equal(t, []string{"Canvas Dark", "Canvas Light", "Paper"}, mgr.ListThemes())
	assert.Equal(t, "Canvas Dark", mgr.Current().Name)

	require.NoError(t, mgr.SetTheme("paper"))
	assert.Equal(t, "Paper", mgr.Current().Name)
	assert.Error(t, mgr.SetTheme("missing"))
}

func TestManagerMissingDirectory(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "nope"))
	assert.Len(t, mgr.ListThemes(), 2)
}

func TestLoadFileNamesThemeAfterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nameless.toml")
	require.NoError(t, os.WriteFile(path, []byte("[styles.Default]\nfg = \"red\"\n"), 0o644))

	mgr := NewManager("")
	th, err := mgr.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "nameless", th.Name)
	require.NoError(t, mgr.SetTheme("nameless"))
}
