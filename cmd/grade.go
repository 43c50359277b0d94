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

	"github.com/gnames/gn"
	"github.com/gnames/gngrades/internal/ioload"
	"github.com/gnames/gngrades/internal/ioreport"
	"github.com/gnames/gngrades/pkg/course"
	"github.com/gnames/gngrades/pkg/grade"
	"github.com/gnames/gngrades/pkg/table"
	"github.com/spf13/cobra"
)

// getGradeCmd returns the grade command.
func getGradeCmd() *cobra.Command {
	var quiet bool

	gradeCmd := &cobra.Command{
		Use:   "grade",
		Short: "Compute final scores and letter grades",
		Long: `Compute final grades from the merged gradebook.

Added columns:
  TTL <category>      total points of each category
  TTL Points          total points without extra credit
  Final Score (%)     total points over course maximum
  Weighted Score (%)  score with exams and other work weighted by policy
  Points Grade        letter of the final score
  Weights Grade       letter of the weighted score

Letter thresholds and category points come from the course policy.

Examples:
  gngrades grade
  gngrades grade -q`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runGrade(quiet)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	quietFlag(gradeCmd, &quiet)
	return gradeCmd
}

func runGrade(quiet bool) error {
	p, c, err := newPipeline()
	if err != nil {
		return err
	}
	res, err := p.Grade()
	if err != nil {
		return err
	}
	if !quiet {
		printFinal(res, c)
	}
	return nil
}

func printFinal(res table.Table, c *course.Course) {
	ioreport.Print(os.Stdout, res, nil,
		ioload.RosterName,
		grade.TotalPoints,
		grade.FinalScore,
		grade.WeightedScore,
		grade.PointsGrade,
		grade.WeightsGrade,
	)
	ioreport.Distribution(os.Stdout, res, grade.PointsGrade, letters(c))
}

func letters(c *course.Course) []string {
	res := make([]string, 0, len(c.Letters)+1)
	for _, l := range c.Letters {
		res = append(res, l.Letter)
	}
	return append(res, c.Fallback)
}
