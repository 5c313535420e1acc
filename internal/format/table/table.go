// Package table lays out attribute rows for the playground inspector.
package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Format returns the rows padded according to the widest entry in each column.
// Widths are measured in terminal cells, so styled or wide text lines up.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	widths := columnWidths(rows)
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = formatRow(row, widths, alignments)
	}
	return out
}

// FormatWithHeader formats header above rows with a rule underneath it.
func FormatWithHeader(header []string, rows [][]string, alignments []Alignment) []string {
	all := make([][]string, 0, len(rows)+1)
	all = append(all, header)
	all = append(all, rows...)
	widths := columnWidths(all)
	out := make([]string, 0, len(all)+1)
	out = append(out, formatRow(header, widths, alignments))
	rule := make([]string, len(widths))
	for c, w := range widths {
		rule[c] = strings.Repeat("─", w)
	}
	out = append(out, formatRow(rule, widths, nil))
	for _, row := range rows {
		out = append(out, formatRow(row, widths, alignments))
	}
	return out
}

func columnWidths(rows [][]string) []int {
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if width := cellWidth(cell); width > widths[c] {
				widths[c] = width
			}
		}
	}
	return widths
}

func formatRow(row []string, widths []int, alignments []Alignment) string {
	var b strings.Builder
	for c, cell := range row {
		if c > 0 {
			b.WriteString("  ")
		}
		pad := widths[c] - cellWidth(cell)
		if c < len(alignments) && alignments[c] == AlignRight {
			writeSpaces(&b, pad)
			b.WriteString(cell)
			continue
		}
		b.WriteString(cell)
		if c < len(row)-1 {
			writeSpaces(&b, pad)
		}
	}
	return b.String()
}

func cellWidth(text string) int {
	return ansi.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
