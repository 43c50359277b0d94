package iotable

import (
	"fmt"

	"github.com/gnames/gngrades/pkg/table"
	"github.com/xuri/excelize/v2"
)

// Sheet is the worksheet that holds the table.
const Sheet = "Sheet1"

func readXLSX(path string) (table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return table.Table{}, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return table.Table{}, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return table.Table{}, err
	}
	return fromRows(rows)
}

func writeXLSX(path string, t table.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	header, _ := t.Records()
	row := make([]any, len(header))
	for i, h := range header {
		row[i] = h
	}
	if err := f.SetSheetRow(Sheet, "A1", &row); err != nil {
		return err
	}

	for i := range t.Len() {
		cells := t.Row(i)
		vals := make([]any, len(cells))
		for j, c := range cells {
			vals[j] = xlsxValue(c)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err = f.SetSheetRow(Sheet, cell, &vals); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func xlsxValue(c table.Cell) any {
	switch c.Kind {
	case table.Absent:
		return nil
	case table.Number:
		// leading zeros and long IDs would not survive a numeric cell
		if isDigits(c.Str) && c.Str != table.FormatFloat(c.Num) {
			return c.Str
		}
		return c.Num
	default:
		return c.String()
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
