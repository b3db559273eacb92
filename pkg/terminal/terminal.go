// Package terminal provides terminal detection and text helpers for CLI output.
package terminal

import (
	"os"
	"strconv"

	"github.com/fatih/color"
)

// Default width constants.
const (
	DefaultWidth = 80
	MinWidth     = 40
)

// Config holds terminal rendering configuration.
type Config struct {
	Width   int
	NoColor bool
}

// NewConfig creates a Config from the environment.
// Color is off when NO_COLOR is set or stdout is not a terminal.
func NewConfig() Config {
	return Config{
		Width:   DetectWidth(),
		NoColor: os.Getenv("NO_COLOR") != "" || color.NoColor,
	}
}

// DetectWidth returns the terminal width from the COLUMNS environment variable,
// or DefaultWidth if not set or invalid.
func DetectWidth() int {
	columnsEnv := os.Getenv("COLUMNS")
	if columnsEnv == "" {
		return DefaultWidth
	}

	width, err := strconv.Atoi(columnsEnv)
	if err != nil || width < MinWidth {
		return DefaultWidth
	}

	return width
}
