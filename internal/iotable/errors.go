package iotable

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gngrades/pkg/errcode"
)

// InputNotFoundError creates an error for a table file that does not
// exist.
func InputNotFoundError(path string, err error) error {
	msg := `Input file <em>%s</em> does not exist

<em>How to fix:</em>
  1. Check <em>paths</em> settings in config.yaml or command flags
  2. Create sample data: <em>gngrades generate</em>`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.InputNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("input not found %s: %w", path, err),
	}
}

// UnsupportedFormatError creates an error for a file with an extension
// of an unknown table format.
func UnsupportedFormatError(path string) error {
	msg := `Cannot decide table format of <em>%s</em>
Use one of the extensions: .csv, .xlsx, .sqlite`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.UnsupportedFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unsupported table format: %s", path),
	}
}

// ReadTableError creates an error for a table file that cannot be read
// or parsed.
func ReadTableError(path string, err error) error {
	msg := `Cannot read table from <em>%s</em>

<em>Possible causes:</em>
  - File is not a valid CSV, XLSX or SQLite file
  - The first row is not a header
  - Permission denied`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ReadTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to read table %s: %w", path, err),
	}
}

// WriteTableError creates an error for a table that cannot be saved.
func WriteTableError(path string, err error) error {
	msg := `Cannot write table to <em>%s</em>

<em>Possible causes:</em>
  - Directory does not exist
  - File is open in another program
  - Permission denied`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.WriteTableError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to write table %s: %w", path, err),
	}
}
