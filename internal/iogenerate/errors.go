package iogenerate

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gngrades/pkg/errcode"
)

// GenerateParamsError creates an error for generator settings that
// cannot produce data.
func GenerateParamsError(err error) error {
	msg := `Cannot generate data: %s

<em>How to fix:</em>
  Check <em>generate</em> settings in config.yaml or command flags`

	vars := []any{err.Error()}

	return &gn.Error{
		Code: errcode.GenerateParamsError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to generate data: %w", err),
	}
}
