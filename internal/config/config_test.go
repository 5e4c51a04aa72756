package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hy4ri/widget-tui/internal/colorpick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "#FFFFFF", cfg.Color.Initial)
	assert.Equal(t, WidgetColor, cfg.UI.StartWidget)
	assert.True(t, cfg.UI.VimMode)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
ui:
  vim_mode: false
  start_widget: todo
color:
  initial: "#FF0000"
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.False(t, cfg.UI.VimMode)
	assert.Equal(t, WidgetTodo, cfg.UI.StartWidget)
	assert.Equal(t, "#FF0000", cfg.Color.Initial)
	assert.Equal(t, colorpick.DefaultPalette, cfg.Color.Palette)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsBadColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color:\n  palette: [\"#FFF\", \"red\"]\n"), 0600))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidColor)
	assert.ErrorIs(t, err, colorpick.ErrInvalidHex)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: [unclosed"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.UI.StartWidget = "calendar"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Log.Level = "verbose"
	assert.Error(t, cfg.Validate())
}

func TestLogPathExplicit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.File = "/tmp/x.log"

	path, err := cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.log", path)
}
