// Package config resolves the executable-relative paths used by the viewer and
// loads the optional read-only settings file that sits next to the binary.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"sheet-viewer/internal/logger"
)

const (
	// FolderName is the subfolder, next to the executable, that holds the workbooks.
	FolderName = "Excel"
	// FileName is the optional settings file, next to the executable.
	FileName = "sheet-viewer.toml"
)

type Config struct {
	LogLevel  string       `toml:"log_level"`
	LogFormat string       `toml:"log_format"`
	Window    WindowConfig `toml:"window"`
	Table     TableConfig  `toml:"table"`
}

type WindowConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// TableConfig controls how a rendered sheet is laid out
type TableConfig struct {
	// SkipBlankRows drops rows of the used range that hold no value at all.
	SkipBlankRows bool `toml:"skip_blank_rows"`
	// MaxColumnWidth caps auto-sized columns.
	MaxColumnWidth float32 `toml:"max_column_width"`
	// AutoSizeSample is how many data rows are measured when sizing columns.
	AutoSizeSample int `toml:"auto_size_sample"`
}

func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: string(logger.FormatConsole),
		Window: WindowConfig{
			Width:  1000,
			Height: 600,
		},
		Table: TableConfig{
			SkipBlankRows:  false,
			MaxColumnWidth: 320,
			AutoSizeSample: 200,
		},
	}
}

// Load decodes path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch logger.Format(c.LogFormat) {
	case logger.FormatConsole, logger.FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %.0fx%.0f", c.Window.Width, c.Window.Height)
	}
	if c.Table.MaxColumnWidth <= 0 {
		return fmt.Errorf("max_column_width must be positive")
	}
	if c.Table.AutoSizeSample < 0 {
		return fmt.Errorf("auto_size_sample must not be negative")
	}
	return nil
}

// ExecutableDir returns the directory holding the running binary
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func DataFolder(baseDir string) string {
	return filepath.Join(baseDir, FolderName)
}

func SettingsPath(baseDir string) string {
	return filepath.Join(baseDir, FileName)
}
