package grade

import (
	"fmt"

	"github.com/gnames/gngrades/pkg/course"
	"github.com/gnames/gngrades/pkg/table"
)

// Headers of extrapolation columns.
const (
	CurrentPoints   = "Current Pts"
	CurrentScore    = "Current Score"
	CompletedPoints = "Completed Pts"
	RemainingPoints = "Remaining Pts"
)

// PointsNeeded returns the header of the points-needed column of a letter.
func PointsNeeded(letter string) string {
	return fmt.Sprintf("Pts Needed (%s)", letter)
}

// PercentNeeded returns the header of the percent-needed column of a
// letter.
func PercentNeeded(letter string) string {
	return fmt.Sprintf("%% Needed (%s)", letter)
}

// Portion is the split of a category maximum at some week of the course.
type Portion struct {
	Category  course.Category
	Done      float64
	Remaining float64
}

// Split divides every category maximum into points possible so far and
// points still to come after the given number of weeks. Regular
// categories are prorated by week. Exams are all-or-nothing: an exam is
// done when its due week has passed.
func Split(c *course.Course, elapsed int) ([]Portion, error) {
	if elapsed < 0 || elapsed > c.Weeks {
		return nil, fmt.Errorf(
			"elapsed weeks must be within [0, %d], got %d", c.Weeks, elapsed,
		)
	}
	res := make([]Portion, len(c.Categories))
	for i, cat := range c.Categories {
		p := Portion{Category: cat}
		switch {
		case cat.Exam && cat.DueWeek <= elapsed:
			p.Done = cat.Max()
		case cat.Exam:
			p.Remaining = cat.Max()
		default:
			p.Done = cat.Max() * float64(elapsed) / float64(c.Weeks)
			p.Remaining = cat.Max() - p.Done
		}
		res[i] = p
	}
	return res, nil
}

// Extrapolate adds totals of categories that have started, the current
// points and score, and for every letter the points and the fraction of
// remaining points still needed. Targets that cannot be reached are
// Unattainable cells. Extra credit counts toward neither current nor
// possible points.
func Extrapolate(
	t table.Table,
	c *course.Course,
	elapsed int,
) (table.Table, error) {
	portions, err := Split(c, elapsed)
	if err != nil {
		return table.Table{}, err
	}

	var started []course.Category
	var done, remaining float64
	for _, p := range portions {
		if p.Done > 0 {
			started = append(started, p.Category)
		}
		if p.Category.ExtraCredit {
			continue
		}
		done += p.Done
		remaining += p.Remaining
	}
	if done == 0 {
		return table.Table{}, ErrZeroDenominator
	}

	res, err := CategoryTotals(t, started)
	if err != nil {
		return table.Table{}, err
	}

	n := res.Len()
	current := make([]table.Cell, n)
	score := make([]table.Cell, n)
	for i := range n {
		var pts float64
		for _, cat := range started {
			if cat.ExtraCredit {
				continue
			}
			v, _ := res.Cell(i, cat.TotalName()).Float()
			pts += v
		}
		pts = table.Round(pts, 4)
		current[i] = table.Num(pts)
		score[i] = table.Num(table.Round(pts/done, 4))
	}

	add := []derived{
		{table.Column{Name: CurrentPoints, Role: table.Derived}, current},
		{table.Column{Name: CurrentScore, Role: table.Derived, MaxPoints: 1}, score},
		{table.Column{Name: CompletedPoints, Role: table.Derived}, repeat(table.Num(done), n)},
		{table.Column{Name: RemainingPoints, Role: table.Derived}, repeat(table.Num(remaining), n)},
	}
	for _, l := range c.Letters {
		pts := make([]table.Cell, n)
		pct := make([]table.Cell, n)
		for i := range n {
			cur, _ := current[i].Float()
			pts[i], pct[i] = Needed(l.Min*c.Total()-cur, remaining)
		}
		add = append(add,
			derived{table.Column{Name: PointsNeeded(l.Letter), Role: table.Derived}, pts},
			derived{table.Column{Name: PercentNeeded(l.Letter), Role: table.Derived}, pct},
		)
	}
	return withColumns(res, add)
}

// Needed converts the points required for a target into the points and
// percent-needed cells. Both are Unattainable when the target needs more
// than the remaining points. A target that is already met stays numeric,
// even when nothing remains.
func Needed(need, remaining float64) (table.Cell, table.Cell) {
	need = table.Round(need, 4)
	if need > remaining {
		return table.Sentinel(), table.Sentinel()
	}
	if remaining == 0 {
		return table.Num(need), table.Num(0)
	}
	pct := table.Round(need/remaining, 4)
	if pct > 1 {
		return table.Num(need), table.Sentinel()
	}
	return table.Num(need), table.Num(pct)
}

func repeat(c table.Cell, n int) []table.Cell {
	res := make([]table.Cell, n)
	for i := range res {
		res[i] = c
	}
	return res
}
