package cli

import (
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// printTable renders rows under header, painting every column with fg when
// colors are enabled. A nil header renders a body-only table.
func printTable(w io.Writer, fg text.Color, header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault

	columns := len(header)
	if header != nil {
		t.AppendHeader(toRow(header))
	}
	for _, r := range rows {
		columns = max(columns, len(r))
		t.AppendRow(toRow(r))
	}

	if !color.NoColor {
		configs := make([]table.ColumnConfig, 0, columns)
		for i := 0; i < columns; i++ {
			configs = append(configs, table.ColumnConfig{
				Number:       i + 1,
				Colors:       text.Colors{fg},
				ColorsHeader: text.Colors{fg, text.Bold},
			})
		}
		t.SetColumnConfigs(configs)
	}

	t.Render()
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
