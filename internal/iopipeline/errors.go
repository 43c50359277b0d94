package iopipeline

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gngrades/pkg/errcode"
)

// JoinKeyMismatchError creates an error for students that are not
// present in every source while strict merge is on.
func JoinKeyMismatchError(n int) error {
	msg := `<em>%d</em> students are missing from some of the sources

<em>How to fix:</em>
  1. Check names and IDs in the exports (see warnings above and the log)
  2. Or set <em>merge.strict: false</em> to merge matched students only`

	vars := []any{n}

	return &gn.Error{
		Code: errcode.JoinKeyMismatchError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%d unmatched students in strict mode", n),
	}
}

// EmptyJoinError creates an error for a merge without any matched
// student.
func EmptyJoinError() error {
	msg := `No student is present in all sources

<em>Possible causes:</em>
  - Student IDs of roster and LMS export differ
  - Names in the homework export are not in 'lastname, firstname' form`

	return &gn.Error{
		Code: errcode.EmptyJoinError,
		Msg:  msg,
		Err:  errors.New("gradebook is empty after merge"),
	}
}

// DuplicateKeyError creates an error for a source in which two students
// share a join key, for example two roster students whose names reduce
// to the same 'lastname, firstname'.
func DuplicateKeyError(err error) error {
	msg := `Students cannot be told apart: %s

<em>How to fix:</em>
  1. Make the names of these students distinct in the exports
  2. Or remove the duplicate rows`

	vars := []any{err.Error()}

	return &gn.Error{
		Code: errcode.DuplicateKeyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("merge failed: %w", err),
	}
}

// ZeroDenominatorError creates an error for a score computed against
// zero possible points.
func ZeroDenominatorError(err error) error {
	msg := `Cannot compute scores: no points are possible yet

<em>How to fix:</em>
  Increase the number of elapsed weeks`

	return &gn.Error{
		Code: errcode.ZeroDenominatorError,
		Msg:  msg,
		Err:  fmt.Errorf("zero denominator: %w", err),
	}
}

// ElapsedWeeksError creates an error for a week number after the end of
// the course.
func ElapsedWeeksError(weeks, total int) error {
	msg := `Elapsed weeks <em>%d</em> exceed the course length of %d weeks`

	vars := []any{weeks, total}

	return &gn.Error{
		Code: errcode.ElapsedWeeksError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("elapsed weeks %d outside of [0, %d]", weeks, total),
	}
}

// MergeError creates an error for sources that cannot be combined.
func MergeError(err error) error {
	msg := `Cannot combine sources: %s`

	vars := []any{err.Error()}

	return &gn.Error{
		Code: errcode.InputFormatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("merge failed: %w", err),
	}
}
