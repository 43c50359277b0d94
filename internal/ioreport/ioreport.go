// Package ioreport prints gradebook results to the terminal.
package ioreport

import (
	"fmt"
	"io"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gngrades/pkg/table"
	"github.com/olekukonko/tablewriter"
)

// Print renders the named columns of a table. Unknown names are skipped.
// With no names, identity columns listed in ids and all derived columns
// are printed.
func Print(w io.Writer, t table.Table, ids []string, names ...string) {
	if len(names) == 0 {
		names = defaultColumns(t, ids)
	}
	names = slices.DeleteFunc(slices.Clone(names), func(n string) bool {
		return !t.Has(n)
	})

	tw := tablewriter.NewWriter(w)
	tw.SetHeader(names)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	for i := range t.Len() {
		row := make([]string, len(names))
		for j, n := range names {
			row[j] = cellText(t.Cell(i, n))
		}
		tw.Append(row)
	}
	tw.Render()
}

// Distribution prints how many students got each letter in a column.
func Distribution(w io.Writer, t table.Table, column string, letters []string) {
	counts := make(map[string]int)
	for _, c := range t.Values(column) {
		counts[c.String()]++
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{column, "Students", "Share"})
	tw.SetAutoFormatHeaders(false)
	for _, l := range letters {
		n := counts[l]
		var share float64
		if t.Len() > 0 {
			share = float64(n) / float64(t.Len())
		}
		tw.Append([]string{
			l,
			humanize.Comma(int64(n)),
			fmt.Sprintf("%.1f%%", share*100),
		})
	}
	tw.Render()
}

func defaultColumns(t table.Table, ids []string) []string {
	var res []string
	for _, c := range t.Columns() {
		if c.Role == table.Derived || slices.Contains(ids, c.Name) {
			res = append(res, c.Name)
		}
	}
	return res
}

// cellText shortens long decimals for the terminal. Files keep full
// precision.
func cellText(c table.Cell) string {
	if v, ok := c.Float(); ok {
		return table.FormatFloat(table.Round(v, 4))
	}
	return c.String()
}
