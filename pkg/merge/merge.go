// Package merge joins normalized roster, LMS and homework tables into one
// gradebook.
//
// Joins are inner joins. Students present in only one of the sources do
// not reach the gradebook, but they are always listed in a Report so the
// caller can warn about them or fail the run.
package merge

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gnames/gngrades/pkg/table"
	"github.com/gnames/gnuuid"
)

// StudentKey is the header of the deterministic student identifier that
// the gradebook adds as its first column.
const StudentKey = "Student Key"

// ErrDuplicateKey is returned when two rows of a joined table share a key.
// Such rows would both pick up the scores of a single partner row.
var ErrDuplicateKey = errors.New("duplicate join key")

// Policy decides what happens with score cells that are Absent after the
// joins.
//
// An un-submitted assignment and a gap in the exported data look the same
// after the join. FillZero treats both as "no credit", KeepAbsent leaves
// them for the caller to inspect.
type Policy int

const (
	// FillZero replaces Absent score cells with zero.
	FillZero Policy = iota
	// KeepAbsent leaves Absent score cells as they are.
	KeepAbsent
)

// NewPolicy converts a configuration string to a Policy.
func NewPolicy(s string) (Policy, error) {
	switch s {
	case "", "zero":
		return FillZero, nil
	case "absent":
		return KeepAbsent, nil
	}
	return FillZero, fmt.Errorf("unknown fill policy %q", s)
}

func (p Policy) String() string {
	if p == KeepAbsent {
		return "absent"
	}
	return "zero"
}

// Report lists join keys that found no partner.
type Report struct {
	// Left and Right name the joined sources.
	Left, Right string
	// Matched is the number of joined rows.
	Matched int
	// LeftOnly are keys of the left table missing from the right one.
	LeftOnly []string
	// RightOnly are keys of the right table missing from the left one.
	RightOnly []string
}

// Mismatched is the number of keys without a partner on either side.
func (r Report) Mismatched() int {
	return len(r.LeftOnly) + len(r.RightOnly)
}

// Join performs an inner join of two tables on their key columns. Rows
// keep the order of the left table. The right key column is not repeated
// in the result, and the result keeps the left key.
func Join(left, right table.Table) (table.Table, Report, error) {
	var rep Report
	lk, rk := left.Key(), right.Key()
	if lk == "" || rk == "" {
		return table.Table{}, rep, fmt.Errorf("both tables need a key column")
	}

	leftRows, err := keyIndex(left)
	if err != nil {
		return table.Table{}, rep, err
	}
	rightRows, err := keyIndex(right)
	if err != nil {
		return table.Table{}, rep, err
	}

	rcols := slices.DeleteFunc(right.Columns(), func(c table.Column) bool {
		return c.Name == rk
	})
	cols := append(left.Columns(), rcols...)

	var rows [][]table.Cell
	for i := range left.Len() {
		k := left.KeyOf(i)
		j, ok := rightRows[k]
		if !ok {
			rep.LeftOnly = append(rep.LeftOnly, k)
			continue
		}
		row := left.Row(i)
		for _, c := range rcols {
			row = append(row, right.Cell(j, c.Name))
		}
		rows = append(rows, row)
	}
	for i := range right.Len() {
		if _, ok := leftRows[right.KeyOf(i)]; !ok {
			rep.RightOnly = append(rep.RightOnly, right.KeyOf(i))
		}
	}
	rep.Matched = len(rows)

	res, err := table.New(cols, rows)
	if err != nil {
		return table.Table{}, rep, err
	}
	res, err = res.WithKey(lk)
	if err != nil {
		return table.Table{}, rep, err
	}
	return res, rep, nil
}

// keyIndex maps keys of a table to row numbers. Duplicate keys are an
// error.
func keyIndex(t table.Table) (map[string]int, error) {
	res := make(map[string]int, t.Len())
	for i := range t.Len() {
		k := t.KeyOf(i)
		if j, ok := res[k]; ok {
			return nil, fmt.Errorf("%w %q in column %q, rows %d and %d",
				ErrDuplicateKey, k, t.Key(), j+1, i+1)
		}
		res[k] = i
	}
	return res, nil
}

// Input holds normalized sources with their join keys already set:
// roster and LMS keyed on the student ID, homework keyed on the
// normalized name.
type Input struct {
	Roster   table.Table
	LMS      table.Table
	Homework table.Table
	// NameColumn is the roster column joined with the homework key.
	NameColumn string
	// Drop lists identity columns duplicated by the joins.
	Drop []string
}

// Gradebook joins roster with LMS scores on the student ID and the result
// with homework scores on the normalized name. It drops duplicated
// identity columns, adds a Student Key and fills Absent score cells
// according to the policy. Reports of both joins are returned even if the
// gradebook is empty.
func Gradebook(in Input, policy Policy) (table.Table, []Report, error) {
	first, rep1, err := Join(in.Roster, in.LMS)
	rep1.Left, rep1.Right = "roster", "lms"
	if err != nil {
		return table.Table{}, []Report{rep1}, err
	}

	first, err = first.WithKey(in.NameColumn)
	if err != nil {
		return table.Table{}, []Report{rep1}, err
	}
	res, rep2, err := Join(first, in.Homework)
	rep2.Left, rep2.Right = "roster+lms", "homework"
	reps := []Report{rep1, rep2}
	if err != nil {
		return table.Table{}, reps, err
	}

	res = res.Drop(in.Drop...)

	keys := make([]table.Cell, res.Len())
	for i := range res.Len() {
		keys[i] = table.Str(Key(res.KeyOf(i)))
	}
	res, err = prepend(res, table.Column{Name: StudentKey}, keys)
	if err != nil {
		return table.Table{}, reps, err
	}

	if policy == FillZero {
		res = Fill(res, table.Num(0))
	}
	return res, reps, nil
}

// Key returns a deterministic identifier of a student with the given
// normalized name.
func Key(name string) string {
	return gnuuid.New(name).String()
}

// Fill replaces Absent cells of score columns with the given cell.
func Fill(t table.Table, with table.Cell) table.Table {
	return t.MapCells(
		func(c table.Column) bool { return c.Role == table.Score },
		func(c table.Cell) table.Cell {
			if c.IsAbsent() {
				return with
			}
			return c
		},
	)
}

func prepend(
	t table.Table,
	col table.Column,
	cells []table.Cell,
) (table.Table, error) {
	key := t.Key()
	cols := append([]table.Column{col}, t.Columns()...)
	rows := make([][]table.Cell, t.Len())
	for i := range t.Len() {
		rows[i] = append([]table.Cell{cells[i]}, t.Row(i)...)
	}
	res, err := table.New(cols, rows)
	if err != nil {
		return table.Table{}, err
	}
	if key == "" {
		return res, nil
	}
	return res.WithKey(key)
}
