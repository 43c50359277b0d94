package iotable

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/gnames/gngrades/pkg/table"
)

const bom = "\ufeff"

func readCSV(path string) (table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return table.Table{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return table.Table{}, err
	}
	return fromRows(recs)
}

func writeCSV(path string, t table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	header, recs := t.Records()
	if err = w.Write(header); err == nil {
		err = w.WriteAll(recs)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// fromRows treats the first row as a header. Exports from spreadsheets
// often start with a byte order mark and end with empty rows.
func fromRows(rows [][]string) (table.Table, error) {
	if len(rows) == 0 {
		return table.Table{}, fmt.Errorf("no header row")
	}
	header := rows[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], bom)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	recs := rows[1:]
	for len(recs) > 0 && blank(recs[len(recs)-1]) {
		recs = recs[:len(recs)-1]
	}
	return table.FromRecords(header, recs)
}

func blank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
