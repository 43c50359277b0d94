package ioload

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gngrades/pkg/errcode"
	"github.com/gnames/gngrades/pkg/normalize"
)

// MissingColumnError creates an error for a source without a required
// column.
func MissingColumnError(path, column string) error {
	msg := `Column <em>%s</em> not found in <em>%s</em>`

	vars := []any{column, path}

	return &gn.Error{
		Code: errcode.MissingColumnError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("column %q not found in %s", column, path),
	}
}

// ScoreOutOfRangeError creates an error for a score that is not a number
// or is outside of its column range.
func ScoreOutOfRangeError(path string, se *normalize.ScoreError) error {
	msg := `Invalid score <em>%s</em> in <em>%s</em>
Column <em>%s</em>, row %d`

	vars := []any{se.Value, path, se.Column, se.Row}

	return &gn.Error{
		Code: errcode.ScoreOutOfRangeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s: %w", path, se),
	}
}

// InputFormatError creates an error for a source that cannot be
// normalized.
func InputFormatError(path string, err error) error {
	msg := `Cannot normalize data from <em>%s</em>`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.InputFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("bad input %s: %w", path, err),
	}
}
