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
	"os"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gngrades/internal/ioload"
	"github.com/gnames/gngrades/internal/ioreport"
	"github.com/gnames/gngrades/pkg/config"
	"github.com/gnames/gngrades/pkg/grade"
	"github.com/spf13/cobra"
)

// getExtrapolateCmd returns the extrapolate command.
func getExtrapolateCmd() *cobra.Command {
	var (
		weeks  int
		format string
		quiet  bool
	)

	extrapolateCmd := &cobra.Command{
		Use:   "extrapolate",
		Short: "Show points needed for each letter grade mid-course",
		Long: `Project the merged gradebook in the middle of the course.

Regular assignments are prorated by elapsed weeks. An exam counts only
after its due week has passed.

Added columns:
  Current Pts, Current Score     points and score so far
  Completed Pts, Remaining Pts   points possible so far and still to come
  Pts Needed (L), % Needed (L)   what is needed for each letter L

A target that cannot be reached anymore is shown as '-'.

The result is saved next to the gradebook as
scores_YYYY-MM-DD_HH-MM-PM.<format>.

Examples:
  gngrades extrapolate -w 3
  gngrades extrapolate -w 4 -f csv`,
		Aliases: []string{"ex"},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runExtrapolate(cmd, weeks, format, quiet)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	extrapolateCmd.Flags().IntVarP(
		&weeks, "weeks", "w", 0,
		"number of weeks that have passed",
	)
	extrapolateCmd.Flags().StringVarP(
		&format, "format", "f", "",
		"output format: csv, xlsx or sqlite",
	)
	quietFlag(extrapolateCmd, &quiet)

	return extrapolateCmd
}

func runExtrapolate(
	cmd *cobra.Command,
	weeks int,
	format string,
	quiet bool,
) error {
	var opts []config.Option
	if cmd.Flags().Changed("weeks") {
		opts = append(opts, config.OptExtrapolateWeeks(weeks))
	}
	if cmd.Flags().Changed("format") {
		opts = append(opts, config.OptPathsFormat(format))
	}
	cfg.Update(opts)

	p, c, err := newPipeline()
	if err != nil {
		return err
	}
	res, _, err := p.Extrapolate(time.Now())
	if err != nil {
		return err
	}
	if quiet {
		return nil
	}

	cols := []string{ioload.RosterName, grade.CurrentPoints, grade.CurrentScore}
	for _, l := range c.Letters {
		cols = append(cols, grade.PointsNeeded(l.Letter))
	}
	ioreport.Print(os.Stdout, res, nil, cols...)
	return nil
}
