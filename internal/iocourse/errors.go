package iocourse

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gngrades/pkg/errcode"
)

// CourseConfigError creates an error for when course.yaml
// cannot be loaded.
func CourseConfigError(path string, err error) error {
	msg := `Cannot load course policy

<em>Course file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - Permission denied

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Validate YAML syntax
  3. Remove the file to get the default policy on the next run`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.CourseConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load course policy: %w", err),
	}
}

// CourseValidationError creates an error for a course policy with invalid
// settings.
func CourseValidationError(path string, err error) error {
	msg := `Course policy <em>%s</em> is invalid:
  %s`

	vars := []any{path, err.Error()}

	return &gn.Error{
		Code: errcode.CourseValidationError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid course policy: %w", err),
	}
}

// ZeroTotalError creates an error for a course policy that has no points
// to grade against.
func ZeroTotalError(path string, err error) error {
	msg := `Course policy <em>%s</em> has zero total points

<em>How to fix:</em>
  Add at least one category that is not extra credit`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ZeroDenominatorError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("course total is zero: %w", err),
	}
}
