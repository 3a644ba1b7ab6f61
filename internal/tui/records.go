package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	mdwargs "github.com/msto63/argv/foundation/args"
	mdwstringx "github.com/msto63/argv/foundation/utils/stringx"
)

// Column indexes of the record table
const (
	ColumnIndex = iota
	ColumnKind
	ColumnName
	ColumnValue
)

// RecordRows returns one row per record: index, kind, identifier and the
// captured value (quoted when needed, "-" without a value)
func RecordRows(c *mdwargs.Container) [][]string {
	rows := make([][]string, 0, c.Len())
	for i, a := range c.Records() {
		value := "-"
		if v, ok := a.Captured(); ok {
			value = mdwstringx.QuoteIfNeeded(v)
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			a.Kind().String(),
			mdwstringx.QuoteIfNeeded(a.Identifier()),
			value,
		})
	}
	return rows
}

// RecordTable renders the container as a table
func RecordTable(c *mdwargs.Container) string {
	rows := RecordRows(c)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers("#", "KIND", "NAME", "VALUE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderCellStyle
			}
			switch col {
			case ColumnKind:
				return KindStyle(c.At(row).Kind())
			case ColumnValue:
				return ValueStyle
			default:
				return CellStyle
			}
		})
	return t.String()
}

// Summary describes the container in one line
func Summary(c *mdwargs.Container) string {
	return fmt.Sprintf("%d records, %d captured values, %d parameters",
		c.Len(), c.Captures(), len(c.Parameters()))
}
