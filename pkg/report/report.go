// Package report renders dependency usage results for the terminal and for machines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/depusage/pkg/deps"
	"github.com/Sumatoshi-tech/depusage/pkg/importmodel"
)

// Format mode constants.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Report marks.
const (
	MarkUsed   = "✓"
	MarkUnused = "✗"
	MarkImport = "-"
)

// ErrUnknownFormat is returned for an output format that has no renderer.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatTable, FormatJSON, FormatYAML}
}

// Report is the outcome of one dependency analysis run.
type Report struct {
	Result  deps.Result
	Imports []string
}

// New builds a Report from a classification and the imports it was computed from.
func New(result deps.Result, imports importmodel.Set) Report {
	return Report{
		Result:  result,
		Imports: imports.Sorted(),
	}
}

// Options controls rendering.
type Options struct {
	NoColor bool
	Width   int
}

// Write renders rep in the given format.
func Write(w io.Writer, format string, rep Report, opts Options) error {
	var err error

	switch format {
	case FormatText, "":
		err = writeText(w, rep, opts)
	case FormatTable:
		err = writeTable(w, rep, opts)
	case FormatJSON:
		err = writeJSON(w, rep)
	case FormatYAML:
		err = writeYAML(w, rep)
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}

	if err != nil {
		return fmt.Errorf("write %s report: %w", format, err)
	}

	return nil
}

// writeText prints the plain-text report in the layout of the original script.
func writeText(w io.Writer, rep Report, opts Options) error {
	used := color.New(color.FgGreen)
	unused := color.New(color.FgRed)

	if opts.NoColor {
		used.DisableColor()
		unused.DisableColor()
	}

	var sb strings.Builder

	sb.WriteString("=== DEPENDENCY ANALYSIS ===\n")

	fmt.Fprintf(&sb, "\nUSED DEPENDENCIES (%d):\n", len(rep.Result.Used))

	for _, name := range rep.Result.Used {
		fmt.Fprintf(&sb, "  %s %s\n", used.Sprint(MarkUsed), name)
	}

	fmt.Fprintf(&sb, "\nPOTENTIALLY UNUSED DEPENDENCIES (%d):\n", len(rep.Result.Unused))

	for _, name := range rep.Result.Unused {
		fmt.Fprintf(&sb, "  %s %s\n", unused.Sprint(MarkUnused), name)
	}

	fmt.Fprintf(&sb, "\nALL IMPORTS FOUND (%d):\n", len(rep.Imports))

	for _, imp := range rep.Imports {
		fmt.Fprintf(&sb, "  %s %s\n", MarkImport, imp)
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// document is the machine-readable form of a Report.
type document struct {
	UsedCount   int                 `json:"used_count"   yaml:"used_count"`
	UnusedCount int                 `json:"unused_count" yaml:"unused_count"`
	ImportCount int                 `json:"import_count" yaml:"import_count"`
	Used        []string            `json:"used"         yaml:"used"`
	Unused      []string            `json:"unused"       yaml:"unused"`
	Matches     map[string][]string `json:"matches"      yaml:"matches"`
	Imports     []string            `json:"imports"      yaml:"imports"`
}

func newDocument(rep Report) document {
	imports := rep.Imports
	if imports == nil {
		imports = []string{}
	}

	return document{
		UsedCount:   len(rep.Result.Used),
		UnusedCount: len(rep.Result.Unused),
		ImportCount: len(imports),
		Used:        rep.Result.Used,
		Unused:      rep.Result.Unused,
		Matches:     rep.Result.Matches,
		Imports:     imports,
	}
}

func writeJSON(w io.Writer, rep Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(newDocument(rep))
}

func writeYAML(w io.Writer, rep Report) error {
	data, err := yaml.Marshal(newDocument(rep))
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
