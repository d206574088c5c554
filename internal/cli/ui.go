package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/svgkit/pkg/diag"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleDim     = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	StyleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	StyleError   = lipgloss.NewStyle().Foreground(colorRed)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, dimmed line.
func printDetail(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printStats prints document statistics on a single line. Cached documents
// were not rebuilt, so only the cache status is shown.
func printStats(w io.Writer, elements, diagnostics int, cached bool) {
	if cached {
		fmt.Fprintln(w, "  "+styleCached.Render(iconCached))
		return
	}
	parts := []string{
		fmt.Sprintf("%d elements", elements),
		fmt.Sprintf("%d diagnostics", diagnostics),
	}
	line := "  "
	for _, part := range parts {
		line += StyleDim.Render(part) + StyleDim.Render(" · ")
	}
	fmt.Fprintln(w, line+styleComputed.Render(iconFresh))
}

// =============================================================================
// Diagnostic Tables
// =============================================================================

// diagnosticTable renders one row per diagnostic kind with its count and
// the first message seen, ordered by catalogue position.
func diagnosticTable(ds []diag.Diagnostic) string {
	counts := map[diag.Kind]int{}
	first := map[diag.Kind]string{}
	for _, d := range ds {
		if counts[d.Kind] == 0 {
			first[d.Kind] = d.Message()
		}
		counts[d.Kind]++
	}
	kinds := make([]diag.Kind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	rows := make([][]string, len(kinds))
	severities := make([]diag.Severity, len(kinds))
	for i, k := range kinds {
		rows[i] = []string{k.String(), k.Severity().String(), strconv.Itoa(counts[k]), first[k]}
		severities[i] = k.Severity()
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Kind", "Severity", "Count", "Example").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			switch col {
			case 1:
				if severities[row] == diag.SeverityError {
					return base.Inherit(StyleError)
				}
				return base.Inherit(StyleWarning)
			case 2:
				return base.Inherit(StyleNumber)
			case 3:
				return base.Inherit(StyleDim)
			}
			return base
		}).
		Render()
}

// kindsTable renders the diagnostic catalogue.
func kindsTable() string {
	var rows [][]string
	for _, k := range diag.Kinds() {
		rows = append(rows, []string{k.String(), k.Severity().String(), diag.Diagnostic{Kind: k}.Message()})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Kind", "Severity", "Meaning").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Render()
}
