// Package config provides YAML-based configuration for depusage.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/Sumatoshi-tech/depusage/pkg/importscan"
)

// Default configuration values. They reproduce the layout of the
// telnyx-webrtc-android checkout the tool was written for.
const (
	DefaultProjectRoot = "/workspace/telnyx-webrtc-android"
	DefaultSourceDir   = "telnyx_rtc/src/main/java"
	DefaultExtension   = importscan.DefaultExtension
	DefaultFormat      = "text"
	DefaultLogLevel    = "warn"
)

// validFormats lists the accepted output.format values.
var validFormats = []string{"text", "table", "json", "yaml"}

// Sentinel errors for configuration validation.
var (
	// ErrEmptyExtension indicates that scan.extension is empty.
	ErrEmptyExtension = errors.New("scan.extension must not be empty")
	// ErrEmptySourceDir indicates that project.source_dir is empty.
	ErrEmptySourceDir = errors.New("project.source_dir must not be empty")
	// ErrInvalidFormat indicates an unsupported output.format.
	ErrInvalidFormat = errors.New("output.format is not supported")
	// ErrInvalidLogLevel indicates an unparseable logging.level.
	ErrInvalidLogLevel = errors.New("logging.level is not a valid level")
)

// Config is the top-level configuration struct for depusage.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Project ProjectConfig `mapstructure:"project"`
	Scan    ScanConfig    `mapstructure:"scan"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ProjectConfig locates the sources to scan.
type ProjectConfig struct {
	// Root is the directory the process changes into before scanning.
	// Empty keeps the current working directory.
	Root      string `mapstructure:"root"`
	SourceDir string `mapstructure:"source_dir"`
}

// ScanConfig holds import collection settings.
type ScanConfig struct {
	Extension  string `mapstructure:"extension"`
	SkipVendor bool   `mapstructure:"skip_vendor"`
	// Table is an optional YAML dependency table replacing the built-in one.
	Table string `mapstructure:"table"`
}

// OutputConfig holds report rendering settings.
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// Validate checks Config invariants and normalizes the extension to carry a leading dot.
func (c *Config) Validate() error {
	c.Scan.Extension = strings.TrimSpace(c.Scan.Extension)
	if c.Scan.Extension == "" || c.Scan.Extension == "." {
		return ErrEmptyExtension
	}

	if !strings.HasPrefix(c.Scan.Extension, ".") {
		c.Scan.Extension = "." + c.Scan.Extension
	}

	if c.Project.SourceDir == "" {
		return ErrEmptySourceDir
	}

	if !slices.Contains(validFormats, c.Output.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.Format)
	}

	_, err := c.Logging.SlogLevel()
	if err != nil {
		return err
	}

	return nil
}

// SlogLevel parses Logging.Level.
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level

	err := level.UnmarshalText([]byte(l.Level))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, l.Level)
	}

	return level, nil
}
