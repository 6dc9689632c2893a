// Package render formats generated passwords and strength analyses for a terminal.
package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/vaultpass/passmeter-go/internal/analyzer"
)

var (
	ColorVeryStrong = lipgloss.Color("#2a9d90")
	ColorStrong     = lipgloss.Color("#16a34a")
	ColorMedium     = lipgloss.Color("#e8c468")
	ColorWeak       = lipgloss.Color("#f4a462")
	ColorVeryWeak   = lipgloss.Color("#ef4444")
	ColorMuted      = lipgloss.Color("#808080")
	colorForeground = lipgloss.Color("#fafafa")
)

// StrengthColor returns the badge background for a strength bucket.
func StrengthColor(s analyzer.Strength) lipgloss.Color {
	switch s {
	case analyzer.VeryStrong:
		return ColorVeryStrong
	case analyzer.Strong:
		return ColorStrong
	case analyzer.Medium:
		return ColorMedium
	case analyzer.Weak:
		return ColorWeak
	case analyzer.VeryWeak:
		return ColorVeryWeak
	default:
		return ColorMuted
	}
}

// Badge renders the strength label on its bucket color.
func Badge(s analyzer.Strength) string {
	return lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Foreground(colorForeground).
		Background(StrengthColor(s)).
		Render(s.Label())
}

// Combinations renders the search space size. Large values use scientific notation.
func Combinations(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case v >= 1e15:
		return strconv.FormatFloat(v, 'e', 2, 64)
	default:
		return humanize.Comma(int64(v))
	}
}

// CharacterSets lists the detected classes, or "none".
func CharacterSets(c analyzer.CharacterSets) string {
	var names []string
	if c.Lowercase {
		names = append(names, "lowercase")
	}
	if c.Uppercase {
		names = append(names, "uppercase")
	}
	if c.Digits {
		names = append(names, "digits")
	}
	if c.Symbols {
		names = append(names, "symbols")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// AnalysisTable lays out an analysis as a two-column table.
func AnalysisTable(a analyzer.Analysis) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Colors: text.Colors{text.Bold}},
	})

	t.AppendRow(table.Row{"Strength", Badge(a.Strength)})
	t.AppendRow(table.Row{"Character sets", fmt.Sprintf("%s (pool %d)", CharacterSets(a.CharacterSets), a.CharacterSets.Size())})
	t.AppendRow(table.Row{"Combinations", Combinations(a.TotalCombinations)})
	t.AppendRow(table.Row{"Time to crack", analyzer.TimeToCrackString(a.TimeToCrack)})
	t.AppendRow(table.Row{"Attack rate", "At " + humanize.Comma(int64(a.AttemptsPerSecond)) + " attempts/second"})
	t.AppendSeparator()
	for i, rec := range a.Recommendations {
		label := ""
		if i == 0 {
			label = "Recommendations"
		}
		t.AppendRow(table.Row{label, "- " + rec})
	}

	return t.Render()
}

// WriteAnalysis prints the analysis table followed by a newline.
func WriteAnalysis(w io.Writer, a analyzer.Analysis) error {
	_, err := fmt.Fprintln(w, AnalysisTable(a))
	return err
}
