package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeSettings(t, `
log_level = "debug"
log_format = "json"

[window]
width = 1280
height = 720

[table]
skip_blank_rows = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, float32(1280), cfg.Window.Width)
	assert.Equal(t, float32(720), cfg.Window.Height)
	assert.True(t, cfg.Table.SkipBlankRows)
	// untouched keys keep their defaults
	assert.Equal(t, Default().Table.MaxColumnWidth, cfg.Table.MaxColumnWidth)
	assert.Equal(t, Default().Table.AutoSizeSample, cfg.Table.AutoSizeSample)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := writeSettings(t, `log_level = `)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"level":  `log_level = "loud"`,
		"format": `log_format = "xml"`,
		"window": "[window]\nwidth = 0",
		"column": "[table]\nmax_column_width = -1",
		"sample": "[table]\nauto_size_sample = -5",
	}
	for name, content := range cases {
		_, err := Load(writeSettings(t, content))
		assert.Error(t, err, name)
	}
}

func TestPaths(t *testing.T) {
	base := filepath.Join("opt", "viewer")
	assert.Equal(t, filepath.Join(base, "Excel"), DataFolder(base))
	assert.Equal(t, filepath.Join(base, "sheet-viewer.toml"), SettingsPath(base))
}

func TestExecutableDir(t *testing.T) {
	dir, err := ExecutableDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))
}
