/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/gnames/gn"
	"github.com/gnames/gngrades/pkg/config"
	"github.com/spf13/cobra"
)

// getMergeCmd returns the merge command.
func getMergeCmd() *cobra.Command {
	var (
		fill   string
		strict bool
	)

	mergeCmd := &cobra.Command{
		Use:   "merge",
		Short: "Normalize and join exports into a gradebook",
		Long: `Normalize the roster, homework and LMS exports and join them into a
gradebook.

This command:
  1. Lowercases identity fields and reduces names to 'lastname, firstname'
  2. Drops non-scored columns and renames headers to short forms
  3. Joins roster with LMS on student ID, then with homework on name
  4. Adds a deterministic Student Key to every student
  5. Fills scores missing after the joins according to the fill policy

Students missing from some of the sources are reported. With --strict
they stop the merge.

Fill policies:
  zero    missing scores give no credit (default)
  absent  missing scores stay empty

Examples:
  gngrades merge
  gngrades merge --fill absent --strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runMerge(cmd, fill, strict)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	mergeCmd.Flags().StringVarP(
		&fill, "fill", "f", "",
		"policy for missing scores: zero or absent",
	)
	mergeCmd.Flags().BoolVar(
		&strict, "strict", false,
		"fail if a student is missing from any source",
	)

	return mergeCmd
}

func runMerge(cmd *cobra.Command, fill string, strict bool) error {
	cfg.Update(mergeOptions(cmd, fill, strict))

	p, _, err := newPipeline()
	if err != nil {
		return err
	}
	_, err = p.Merge()
	return err
}

func mergeOptions(cmd *cobra.Command, fill string, strict bool) []config.Option {
	var res []config.Option
	if cmd.Flags().Changed("fill") {
		res = append(res, config.OptMergeFill(fill))
	}
	if cmd.Flags().Changed("strict") {
		res = append(res, config.OptMergeStrict(strict))
	}
	return res
}
