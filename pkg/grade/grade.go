// Package grade computes derived gradebook columns: category totals,
// percentage and weighted scores, letter grades and, in the middle of a
// course, the points still needed for each letter.
//
// Every function returns a new table. Score columns must carry their
// category, which is assigned when sources are normalized.
package grade

import (
	"errors"

	"github.com/gnames/gngrades/pkg/course"
	"github.com/gnames/gngrades/pkg/table"
)

// Headers of derived columns.
const (
	TotalPoints   = "TTL Points"
	FinalScore    = "Final Score (%)"
	WeightedScore = "Weighted Score (%)"
	PointsGrade   = "Points Grade"
	WeightsGrade  = "Weights Grade"
)

// ErrZeroDenominator is returned when a percentage would be computed
// against zero possible points.
var ErrZeroDenominator = errors.New("maximum possible points is zero")

// Final adds category totals, total points, percentage and weighted
// scores and both letter grades.
func Final(t table.Table, c *course.Course) (table.Table, error) {
	if c.Total() == 0 {
		return table.Table{}, ErrZeroDenominator
	}
	res, err := CategoryTotals(t, c.Categories)
	if err != nil {
		return table.Table{}, err
	}

	weights := Weights(c)
	n := res.Len()
	points := make([]table.Cell, n)
	final := make([]table.Cell, n)
	weighted := make([]table.Cell, n)
	pGrade := make([]table.Cell, n)
	wGrade := make([]table.Cell, n)
	for i := range n {
		var pts, ws float64
		for _, cat := range c.Categories {
			if cat.ExtraCredit {
				continue
			}
			v, _ := res.Cell(i, cat.TotalName()).Float()
			pts += v
			ws += table.Round(v/cat.Max()*weights[cat.Name], 4)
		}
		score := table.Round(pts/c.Total(), 4)
		// per-term rounding can push a perfect score to 1.0001
		ws = min(table.Round(ws, 4), 1)
		points[i] = table.Num(table.Round(pts, 4))
		final[i] = table.Num(score)
		weighted[i] = table.Num(ws)
		pGrade[i] = table.Str(Letter(score, c))
		wGrade[i] = table.Str(Letter(ws, c))
	}

	return withColumns(res, []derived{
		{table.Column{Name: TotalPoints, Role: table.Derived, MaxPoints: c.Total()}, points},
		{table.Column{Name: FinalScore, Role: table.Derived, MaxPoints: 1}, final},
		{table.Column{Name: WeightedScore, Role: table.Derived, MaxPoints: 1}, weighted},
		{table.Column{Name: PointsGrade, Role: table.Derived}, pGrade},
		{table.Column{Name: WeightsGrade, Role: table.Derived}, wGrade},
	})
}

// CategoryTotals adds a "TTL <category>" column for each category. The
// total is the sum of numeric cells of the score columns that were
// assigned to the category. Cells of other kinds add nothing.
func CategoryTotals(
	t table.Table,
	cats []course.Category,
) (table.Table, error) {
	var err error
	res := t
	for _, cat := range cats {
		names := t.ColumnsOf(cat.Name)
		cells := make([]table.Cell, t.Len())
		for i := range t.Len() {
			cells[i] = table.Num(table.Round(t.SumRow(i, names), 4))
		}
		col := table.Column{
			Name:      cat.TotalName(),
			Role:      table.Derived,
			Category:  cat.Name,
			MaxPoints: cat.Max(),
		}
		if res, err = res.WithColumn(col, cells); err != nil {
			return table.Table{}, err
		}
	}
	return res, nil
}

// Weights returns the weight of every category in the weighted score.
// Exam categories split the exam block share equally, other categories
// split the rest in proportion to their maximum points. Extra credit has
// no weight. Weights are rounded to 6 decimals.
func Weights(c *course.Course) map[string]float64 {
	res := make(map[string]float64, len(c.Categories))
	var exams int
	var regular float64
	for _, cat := range c.Categories {
		switch {
		case cat.ExtraCredit:
		case cat.Exam:
			exams++
		default:
			regular += cat.Max()
		}
	}

	var examShare float64
	switch {
	case exams == 0:
	case regular == 0:
		examShare = 1
	default:
		examShare = c.ExamBlock() / c.Total()
	}

	for _, cat := range c.Categories {
		var w float64
		switch {
		case cat.ExtraCredit:
		case cat.Exam:
			w = examShare / float64(exams)
		default:
			w = (1 - examShare) * cat.Max() / regular
		}
		res[cat.Name] = table.Round(w, 6)
	}
	return res
}

// Letter maps a score to the letter of the highest threshold it meets or
// exceeds. Scores below every threshold get the fallback letter.
func Letter(score float64, c *course.Course) string {
	for _, l := range c.Letters {
		if score >= l.Min {
			return l.Letter
		}
	}
	return c.Fallback
}

type derived struct {
	col   table.Column
	cells []table.Cell
}

func withColumns(t table.Table, ds []derived) (table.Table, error) {
	var err error
	for _, d := range ds {
		if t, err = t.WithColumn(d.col, d.cells); err != nil {
			return table.Table{}, err
		}
	}
	return t, nil
}
