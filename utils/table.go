package utils

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
)

// Render output into an ASCII table
func RenderTable(headers []string, data [][]string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(headers)
	table.Bulk(data)
	table.Render()
}

// RenderKeyValues renders name/value pairs as a two-column table.
func RenderKeyValues(title string, pairs [][2]string) {
	data := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		data = append(data, []string{p[0], p[1]})
	}
	RenderTable([]string{title, "Value"}, data)
}

func RenderBox(title string, lines []string) string {
	// Determine max line width using visual character count (runes), not byte count
	titleWidth := utf8.RuneCountInString(title)
	maxWidth := titleWidth + 4 // for padding
	for _, line := range lines {
		lineWidth := utf8.RuneCountInString(line)
		if lineWidth+2 > maxWidth {
			maxWidth = lineWidth + 2
		}
	}

	var b strings.Builder

	// Top border with title
	b.WriteString("┌─ " + title + " " + strings.Repeat("─", maxWidth-titleWidth-3) + "┐\n")

	// Content lines
	for _, line := range lines {
		lineWidth := utf8.RuneCountInString(line)
		padding := maxWidth - lineWidth - 2
		b.WriteString("│ " + line + strings.Repeat(" ", padding) + " │\n")
	}

	// Bottom border
	b.WriteString("└" + strings.Repeat("─", maxWidth) + "┘\n")

	return b.String()
}
