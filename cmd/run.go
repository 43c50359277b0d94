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
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gngrades/internal/iogenerate"
	"github.com/spf13/cobra"
)

// getRunCmd returns the run command.
func getRunCmd() *cobra.Command {
	var (
		gen    bool
		fill   string
		strict bool
		quiet  bool
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Merge exports and compute final grades in one go",
		Long: `Run the whole pipeline: merge the exports into a gradebook and compute
final grades. With --generate, synthetic exports are created first.

Examples:
  # Demo with synthetic data
  gngrades run -g

  # Real exports from ./fall
  gngrades run -d fall --strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRun(cmd, gen, fill, strict, quiet)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	runCmd.Flags().BoolVarP(
		&gen, "generate", "g", false,
		"create synthetic exports first",
	)
	runCmd.Flags().StringVarP(
		&fill, "fill", "f", "",
		"policy for missing scores: zero or absent",
	)
	runCmd.Flags().BoolVar(
		&strict, "strict", false,
		"fail if a student is missing from any source",
	)
	quietFlag(runCmd, &quiet)

	return runCmd
}

func runRun(
	cmd *cobra.Command,
	gen bool,
	fill string,
	strict bool,
	quiet bool,
) error {
	start := time.Now()
	cfg.Update(mergeOptions(cmd, fill, strict))

	p, c, err := newPipeline()
	if err != nil {
		return err
	}

	if gen {
		if err = iogenerate.New(cfg).Generate(); err != nil {
			return err
		}
	}
	if _, err = p.Merge(); err != nil {
		return err
	}
	res, err := p.Grade()
	if err != nil {
		return err
	}
	if !quiet {
		printFinal(res, c)
	}

	gn.Info("Pipeline finished in <em>%s</em>",
		gnfmt.TimeString(time.Since(start).Seconds()))
	return nil
}
