// Package table provides an immutable, column-annotated table used by every
// stage of the gradebook pipeline.
//
// A Table never changes after creation. All transformations return a new
// Table, so stages can be composed and tested in isolation. Columns carry
// their role, assignment category and maximum points as structured
// metadata, which is assigned once when a source is loaded.
package table

import (
	"fmt"
	"slices"
	"sort"
)

// Role tells how a column takes part in grade computation.
type Role int

const (
	// Identity columns describe a student (name, ID, email...).
	Identity Role = iota
	// Score columns hold points for a single assignment.
	Score
	// Derived columns are computed by the calculator.
	Derived
)

// Column describes one column of a Table.
type Column struct {
	// Name is the header of the column.
	Name string
	// Role is identity, score or derived.
	Role Role
	// Category is the assignment category of a score column, empty if the
	// column does not belong to any configured category.
	Category string
	// MaxPoints is the maximum for a score column, 0 when unknown.
	MaxPoints float64
}

// Table is an immutable table of cells. The zero value is an empty table.
type Table struct {
	cols []Column
	rows [][]Cell
	key  int
}

// New creates a table from columns and rows. Every row must have the
// same width as the column list and column names must be unique.
func New(cols []Column, rows [][]Cell) (Table, error) {
	seen := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		if _, ok := seen[c.Name]; ok {
			return Table{}, fmt.Errorf("duplicate column %q", c.Name)
		}
		seen[c.Name] = struct{}{}
	}
	res := Table{cols: slices.Clone(cols), key: -1}
	res.rows = make([][]Cell, len(rows))
	for i, r := range rows {
		if len(r) != len(cols) {
			return Table{}, fmt.Errorf(
				"row %d has %d cells, expected %d", i+1, len(r), len(cols),
			)
		}
		res.rows[i] = slices.Clone(r)
	}
	return res, nil
}

// FromRecords creates a table from a header and string records. Cells are
// parsed with Parse, columns are identity columns until annotated. Short
// records are padded with Absent cells.
func FromRecords(header []string, records [][]string) (Table, error) {
	cols := make([]Column, len(header))
	for i, h := range header {
		cols[i] = Column{Name: h}
	}
	rows := make([][]Cell, len(records))
	for i, rec := range records {
		if len(rec) > len(header) {
			return Table{}, fmt.Errorf(
				"record %d has %d fields, header has %d",
				i+1, len(rec), len(header),
			)
		}
		row := make([]Cell, len(header))
		for j, v := range rec {
			row[j] = Parse(v)
		}
		rows[i] = row
	}
	return New(cols, rows)
}

// Records renders the table into a header and string records.
func (t Table) Records() ([]string, [][]string) {
	header := make([]string, len(t.cols))
	for i, c := range t.cols {
		header[i] = c.Name
	}
	res := make([][]string, len(t.rows))
	for i, r := range t.rows {
		rec := make([]string, len(r))
		for j, c := range r {
			rec[j] = c.String()
		}
		res[i] = rec
	}
	return header, res
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.rows)
}

// Width returns the number of columns.
func (t Table) Width() int {
	return len(t.cols)
}

// Columns returns a copy of the column descriptions.
func (t Table) Columns() []Column {
	return slices.Clone(t.cols)
}

// Names returns the column headers.
func (t Table) Names() []string {
	res := make([]string, len(t.cols))
	for i, c := range t.cols {
		res[i] = c.Name
	}
	return res
}

// Index returns the position of a column or -1.
func (t Table) Index(name string) int {
	for i, c := range t.cols {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Has is true if the table has a column with the given name.
func (t Table) Has(name string) bool {
	return t.Index(name) >= 0
}

// Column returns the description of a column.
func (t Table) Column(name string) (Column, bool) {
	idx := t.Index(name)
	if idx < 0 {
		return Column{}, false
	}
	return t.cols[idx], true
}

// Row returns a copy of the cells of row i.
func (t Table) Row(i int) []Cell {
	return slices.Clone(t.rows[i])
}

// Cell returns the cell at row i of the named column. Unknown columns
// return an Absent cell.
func (t Table) Cell(i int, name string) Cell {
	idx := t.Index(name)
	if idx < 0 {
		return Missing()
	}
	return t.rows[i][idx]
}

// Key returns the name of the key column, empty if none is set.
func (t Table) Key() string {
	if t.key < 0 || t.key >= len(t.cols) {
		return ""
	}
	return t.cols[t.key].Name
}

// KeyOf returns the join key of row i.
func (t Table) KeyOf(i int) string {
	if t.key < 0 || t.key >= len(t.cols) {
		return ""
	}
	return t.rows[i][t.key].String()
}

// WithKey sets the key column used for joins.
func (t Table) WithKey(name string) (Table, error) {
	idx := t.Index(name)
	if idx < 0 {
		return Table{}, fmt.Errorf("key column %q not found", name)
	}
	res := t.clone()
	res.key = idx
	return res, nil
}

// Values returns the cells of a column.
func (t Table) Values(name string) []Cell {
	idx := t.Index(name)
	if idx < 0 {
		return nil
	}
	res := make([]Cell, len(t.rows))
	for i, r := range t.rows {
		res[i] = r[idx]
	}
	return res
}

// WithColumn appends a column, or replaces the column with the same name.
func (t Table) WithColumn(col Column, cells []Cell) (Table, error) {
	if len(cells) != len(t.rows) {
		return Table{}, fmt.Errorf(
			"column %q has %d cells, table has %d rows",
			col.Name, len(cells), len(t.rows),
		)
	}
	res := t.clone()
	idx := res.Index(col.Name)
	if idx >= 0 {
		res.cols[idx] = col
		for i := range res.rows {
			res.rows[i][idx] = cells[i]
		}
		return res, nil
	}
	res.cols = append(res.cols, col)
	for i := range res.rows {
		res.rows[i] = append(res.rows[i], cells[i])
	}
	return res, nil
}

// Select keeps columns for which keep returns true, in their current order.
func (t Table) Select(keep func(Column) bool) Table {
	var idxs []int
	for i, c := range t.cols {
		if keep(c) {
			idxs = append(idxs, i)
		}
	}
	return t.project(idxs)
}

// Drop removes the named columns. Unknown names are ignored.
func (t Table) Drop(names ...string) Table {
	return t.Select(func(c Column) bool {
		return !slices.Contains(names, c.Name)
	})
}

// DropEmpty removes score columns in which every cell is Absent.
func (t Table) DropEmpty() Table {
	var idxs []int
	for j, c := range t.cols {
		if c.Role != Score || j == t.key {
			idxs = append(idxs, j)
			continue
		}
		for _, r := range t.rows {
			if !r[j].IsAbsent() {
				idxs = append(idxs, j)
				break
			}
		}
	}
	return t.project(idxs)
}

// MapColumns returns a table with every column description replaced by
// the result of fn. Column names must stay unique.
func (t Table) MapColumns(fn func(Column) Column) (Table, error) {
	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = fn(c)
	}
	res, err := New(cols, t.rows)
	if err != nil {
		return Table{}, err
	}
	res.key = t.key
	return res, nil
}

// MapCells returns a table where every cell of the columns accepted by
// match is replaced by fn(cell).
func (t Table) MapCells(match func(Column) bool, fn func(Cell) Cell) Table {
	res := t.clone()
	for j, c := range res.cols {
		if !match(c) {
			continue
		}
		for i := range res.rows {
			res.rows[i][j] = fn(res.rows[i][j])
		}
	}
	return res
}

// FilterRows keeps rows for which keep returns true.
func (t Table) FilterRows(keep func(i int) bool) Table {
	res := Table{cols: slices.Clone(t.cols), key: t.key}
	for i, r := range t.rows {
		if keep(i) {
			res.rows = append(res.rows, slices.Clone(r))
		}
	}
	return res
}

// SortBy returns a table with rows sorted by the string form of a column.
// The sort is stable, unknown columns leave the order unchanged.
func (t Table) SortBy(name string) Table {
	res := t.clone()
	idx := res.Index(name)
	if idx < 0 {
		return res
	}
	sort.SliceStable(res.rows, func(a, b int) bool {
		return res.rows[a][idx].String() < res.rows[b][idx].String()
	})
	return res
}

// ColumnsOf returns the names of columns assigned to a category.
func (t Table) ColumnsOf(category string) []string {
	var res []string
	for _, c := range t.cols {
		if c.Role == Score && c.Category == category {
			res = append(res, c.Name)
		}
	}
	return res
}

// SumRow adds the numeric cells of the named columns in row i. Cells that
// are not numbers contribute nothing.
func (t Table) SumRow(i int, names []string) float64 {
	var res float64
	for _, n := range names {
		idx := t.Index(n)
		if idx < 0 {
			continue
		}
		if v, ok := t.rows[i][idx].Float(); ok {
			res += v
		}
	}
	return res
}

func (t Table) project(idxs []int) Table {
	res := Table{key: -1}
	res.cols = make([]Column, len(idxs))
	for i, j := range idxs {
		res.cols[i] = t.cols[j]
		if j == t.key {
			res.key = i
		}
	}
	res.rows = make([][]Cell, len(t.rows))
	for i, r := range t.rows {
		row := make([]Cell, len(idxs))
		for k, j := range idxs {
			row[k] = r[j]
		}
		res.rows[i] = row
	}
	return res
}

func (t Table) clone() Table {
	res := Table{cols: slices.Clone(t.cols), key: t.key}
	res.rows = make([][]Cell, len(t.rows))
	for i, r := range t.rows {
		res.rows[i] = slices.Clone(r)
	}
	return res
}
