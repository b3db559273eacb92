package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/Sumatoshi-tech/depusage/pkg/deps"
	"github.com/Sumatoshi-tech/depusage/pkg/terminal"
)

const (
	statusUsed   = "used"
	statusUnused = "unused"

	// sampleWidthShare is the share of the terminal width given to sample imports.
	sampleWidthShare = 2
)

// writeTable renders the classification as a dependency table followed by the import list.
func writeTable(w io.Writer, rep Report, opts Options) error {
	width := opts.Width
	if width <= 0 {
		width = terminal.DefaultWidth
	}

	depTable := newTable(width, opts.NoColor)
	depTable.SetTitle("DEPENDENCY ANALYSIS")
	depTable.AppendHeader(table.Row{"Dependency", "Status", "Imports", "Example"})

	for _, name := range rep.Result.Used {
		matches := rep.Result.Matches[name]

		example := ""
		if len(matches) > 0 {
			example = terminal.TruncateWithEllipsis(matches[0], width/sampleWidthShare)
		}

		depTable.AppendRow(table.Row{name, statusUsed, len(matches), example})
	}

	for _, name := range rep.Result.Unused {
		depTable.AppendRow(table.Row{name, statusUnused, 0, ""})
	}

	depTable.AppendFooter(table.Row{
		"Total",
		fmt.Sprintf("%d used / %d unused", len(rep.Result.Used), len(rep.Result.Unused)),
		len(rep.Imports),
		"",
	})

	importTable := newTable(width, opts.NoColor)
	importTable.SetTitle(fmt.Sprintf("ALL IMPORTS FOUND (%d)", len(rep.Imports)))
	importTable.AppendHeader(table.Row{"Import"})

	for _, imp := range rep.Imports {
		importTable.AppendRow(table.Row{imp})
	}

	out := strings.Join([]string{depTable.Render(), importTable.Render()}, "\n\n") + "\n"

	_, err := io.WriteString(w, out)

	return err
}

// WriteDependencyTable renders a dependency table with one row per entry.
func WriteDependencyTable(w io.Writer, depTable []deps.Dependency, opts Options) error {
	width := opts.Width
	if width <= 0 {
		width = terminal.DefaultWidth
	}

	tw := newTable(width, opts.NoColor)
	tw.AppendHeader(table.Row{"Dependency", "Patterns"})

	for _, dep := range depTable {
		tw.AppendRow(table.Row{dep.Name, strings.Join(dep.Patterns, ", ")})
	}

	_, err := io.WriteString(w, tw.Render()+"\n")
	if err != nil {
		return fmt.Errorf("write dependency table: %w", err)
	}

	return nil
}

func newTable(width int, noColor bool) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.SetAllowedRowLength(width)

	if noColor {
		return tw
	}

	tw.Style().Color.Header = text.Colors{text.Bold}
	tw.SetRowPainter(table.RowPainter(func(row table.Row) text.Colors {
		if len(row) > 1 {
			switch row[1] {
			case statusUsed:
				return text.Colors{text.FgGreen}
			case statusUnused:
				return text.Colors{text.FgRed}
			}
		}

		return nil
	}))

	return tw
}
