package display

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Report renders the trailing report section listing unparseable files and
// suspected archive duplicates. It returns the empty string when both lists
// are empty so callers can skip the section entirely.
func Report(unparseable, duplicates []string) string {
	if len(unparseable) == 0 && len(duplicates) == 0 {
		return ""
	}

	var b strings.Builder
	if len(unparseable) > 0 {
		b.WriteString("Unparseable files (moved to error):\n")
		b.WriteString(renderList("File", unparseable))
		b.WriteString("\n")
	}
	if len(duplicates) > 0 {
		if len(unparseable) > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Possible duplicates (already in archive):\n")
		b.WriteString(renderList("File", duplicates))
		b.WriteString("\n")
	}
	return b.String()
}

// renderList renders a numbered single-column table.
func renderList(header string, rows []string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", header})
	for i, row := range rows {
		tw.AppendRow(table.Row{i + 1, row})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
