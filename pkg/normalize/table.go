package normalize

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gnames/gngrades/pkg/course"
	"github.com/gnames/gngrades/pkg/table"
)

// Source describes how one export is normalized.
type Source struct {
	// Key is the header of the column rows are joined on.
	Key string
	// NameColumn holds the student name that is reduced to
	// "lastname, firstname". Empty if the source has no name.
	NameColumn string
	// Identity lists headers of identity columns. Every other column that
	// is not ignored is a score column.
	Identity []string
	// Rules rename score headers.
	Rules []course.Rule
	// Ignore lists substrings of headers of non-scored columns.
	Ignore []string
}

// ScoreError reports a score that is not a number or lies outside of
// the allowed range of its column.
type ScoreError struct {
	Column string
	Row    int
	Value  string
	Max    float64
}

func (e *ScoreError) Error() string {
	if e.Max > 0 {
		return fmt.Sprintf(
			"score %q in column %q, row %d is outside of [0, %g]",
			e.Value, e.Column, e.Row, e.Max,
		)
	}
	return fmt.Sprintf(
		"score %q in column %q, row %d is not a valid score",
		e.Value, e.Column, e.Row,
	)
}

// Result is a normalized table with names that could not be reduced to
// the canonical form.
type Result struct {
	Table    table.Table
	BadNames []string
	Dropped  []string
	Renamed  map[string]string
	// Unclassified lists score headers that match no category. They do
	// not count toward any total.
	Unclassified []string
	// PointsMismatch lists score headers whose points in parentheses
	// differ from the points of their category.
	PointsMismatch []string
}

// Normalize lowercases identity values, reduces names to the canonical
// form, removes non-scored and empty columns, renames score headers and
// assigns each score column its category and maximum points. The maximum
// of a classified column is the points of its category, the same value
// Annotate restores for a reread gradebook. Points in the header are used
// only for columns without a category.
func Normalize(
	t table.Table,
	src Source,
	c *course.Course,
) (Result, error) {
	res := Result{Renamed: make(map[string]string)}
	if !t.Has(src.Key) {
		return res, fmt.Errorf("key column %q not found", src.Key)
	}
	if src.NameColumn != "" && !t.Has(src.NameColumn) {
		return res, fmt.Errorf("name column %q not found", src.NameColumn)
	}

	t = t.Select(func(col table.Column) bool {
		if slices.Contains(src.Identity, col.Name) {
			return true
		}
		if Ignored(col.Name, src.Ignore) {
			res.Dropped = append(res.Dropped, col.Name)
			return false
		}
		return true
	})

	t = t.MapCells(
		func(col table.Column) bool {
			return slices.Contains(src.Identity, col.Name)
		},
		func(cell table.Cell) table.Cell {
			return table.Str(Identity(cell.String()))
		},
	)

	if src.NameColumn != "" {
		names := t.Values(src.NameColumn)
		for i, n := range names {
			if cn, ok := StudentName(n.String()); ok {
				names[i] = table.Str(cn)
				continue
			}
			res.BadNames = append(res.BadNames, n.String())
		}
		col, _ := t.Column(src.NameColumn)
		var err error
		if t, err = t.WithColumn(col, names); err != nil {
			return res, err
		}
	}

	t, err := t.MapColumns(func(col table.Column) table.Column {
		if slices.Contains(src.Identity, col.Name) {
			col.Role = table.Identity
			return col
		}
		name := Header(col.Name, src.Rules)
		if name != col.Name {
			res.Renamed[col.Name] = name
		}
		out := table.Column{Name: name, Role: table.Score}
		pts, hasPts := PointsInHeader(col.Name)
		cat, ok := Classify(name, c.Categories)
		switch {
		case ok:
			out.Category = cat.Name
			out.MaxPoints = cat.Points
			if hasPts && pts != cat.Points {
				res.PointsMismatch = append(res.PointsMismatch, col.Name)
			}
		default:
			res.Unclassified = append(res.Unclassified, name)
			if hasPts {
				out.MaxPoints = pts
			}
		}
		return out
	})
	if err != nil {
		return res, err
	}

	if err = CheckScores(t); err != nil {
		return res, err
	}

	t = t.DropEmpty()
	res.Unclassified = slices.DeleteFunc(res.Unclassified, func(n string) bool {
		return !t.Has(n)
	})
	if t, err = t.WithKey(src.Key); err != nil {
		return res, err
	}
	res.Table = t
	return res, nil
}

// CheckScores makes sure every score cell is absent, not applicable or a
// number within [0, MaxPoints]. Columns with unknown maximum are only
// checked for negative values.
func CheckScores(t table.Table) error {
	for _, col := range t.Columns() {
		if col.Role != table.Score {
			continue
		}
		for i, cell := range t.Values(col.Name) {
			switch cell.Kind {
			case table.Absent, table.NotApplicable:
				continue
			case table.Number:
				if cell.Num >= 0 && (col.MaxPoints == 0 || cell.Num <= col.MaxPoints) {
					continue
				}
			}
			res := &ScoreError{Column: col.Name, Row: i + 1, Value: cell.String()}
			if cell.Kind == table.Number {
				res.Max = col.MaxPoints
			}
			return res
		}
	}
	return nil
}

// Annotate restores column metadata of a gradebook that was read from a
// format without it. Headers starting with "TTL " are derived columns,
// headers that match a category are scores of that category, all other
// columns are identity columns.
func Annotate(t table.Table, key string, c *course.Course) (table.Table, error) {
	res, err := t.MapColumns(func(col table.Column) table.Column {
		out := table.Column{Name: col.Name}
		if col.Name == key {
			return out
		}
		if strings.HasPrefix(col.Name, "TTL ") {
			out.Role = table.Derived
			return out
		}
		if cat, ok := Classify(col.Name, c.Categories); ok {
			out.Role = table.Score
			out.Category = cat.Name
			out.MaxPoints = cat.Points
		}
		return out
	})
	if err != nil {
		return table.Table{}, err
	}
	res = res.MapCells(
		func(col table.Column) bool { return col.Role == table.Identity },
		func(cell table.Cell) table.Cell {
			if cell.Kind == table.Number {
				return table.Str(cell.String())
			}
			return cell
		},
	)
	return res.WithKey(key)
}
