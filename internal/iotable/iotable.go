// Package iotable reads and writes pipeline tables. The format is chosen
// by the file extension: .csv, .xlsx or .sqlite.
//
// Cells are stored in their serialized form, so Unattainable cells are
// written and read back as the "-" marker in every format.
package iotable

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gnames/gngrades/pkg/table"
)

// Format is a supported table format.
type Format int

const (
	CSV Format = iota
	XLSX
	SQLite
)

var formatExt = map[string]Format{
	".csv":    CSV,
	".xlsx":   XLSX,
	".sqlite": SQLite,
}

func (f Format) String() string {
	switch f {
	case XLSX:
		return "xlsx"
	case SQLite:
		return "sqlite"
	default:
		return "csv"
	}
}

// FormatOf returns the format of a file by its extension.
func FormatOf(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := formatExt[ext]; ok {
		return f, nil
	}
	return CSV, UnsupportedFormatError(path)
}

// Read loads a table from a file. Tables read from .sqlite keep column
// metadata and key, other formats give identity columns only.
func Read(path string) (table.Table, error) {
	format, err := FormatOf(path)
	if err != nil {
		return table.Table{}, err
	}
	if _, err = os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return table.Table{}, InputNotFoundError(path, err)
		}
		return table.Table{}, ReadTableError(path, err)
	}

	var res table.Table
	switch format {
	case XLSX:
		res, err = readXLSX(path)
	case SQLite:
		res, err = readSQLite(path)
	default:
		res, err = readCSV(path)
	}
	if err != nil {
		return table.Table{}, ReadTableError(path, err)
	}

	slog.Debug("Read table",
		"path", path,
		"format", format.String(),
		"rows", res.Len(),
		"columns", res.Width(),
	)
	return res, nil
}

// Write saves a table to a file, replacing an existing one.
func Write(path string, t table.Table) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}

	switch format {
	case XLSX:
		err = writeXLSX(path, t)
	case SQLite:
		err = writeSQLite(path, t)
	default:
		err = writeCSV(path, t)
	}
	if err != nil {
		return WriteTableError(path, err)
	}

	slog.Info("Wrote table",
		"path", path,
		"format", format.String(),
		"rows", t.Len(),
		"columns", t.Width(),
	)
	return nil
}

// TimestampedName creates a file name such as
// scores_2024-05-17_03-45-PM.xlsx.
func TimestampedName(prefix string, now time.Time, format string) string {
	return fmt.Sprintf("%s_%s.%s",
		prefix, now.Format("2006-01-02_03-04-PM"), format)
}
