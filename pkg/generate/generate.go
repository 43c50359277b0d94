// Package generate creates synthetic roster, homework and LMS tables for
// demos and tests. All randomness comes from the supplied *rand.Rand, so
// a fixed seed reproduces the same files.
package generate

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/gnames/gngrades/pkg/table"
)

// Params define the distribution of one assignment type.
type Params struct {
	Max  float64
	Mean float64
	SD   float64
}

// Default distributions of assignment types.
var (
	Reading    = Params{Max: 0}
	Homework   = Params{Max: 5, Mean: 4.416, SD: 0.731}
	XC         = Params{Max: 2, Mean: 1.647, SD: 0.770}
	Quiz       = Params{Max: 5, Mean: 4.00, SD: 1.092}
	Lab        = Params{Max: 5, Mean: 4.354, SD: 0.946}
	Discussion = Params{Max: 2, Mean: 1.833, SD: 0.280}
	MidtermMC  = Params{Max: 90, Mean: 70.25, SD: 20.58}
	MidtermSA  = Params{Max: 60, Mean: 39.87, SD: 20.03}
	Cumulative = Params{Max: 100, Mean: 76.64, SD: 24.78}
)

// Score draws a normally distributed score rounded to two decimals and
// clamped into [0, p.Max]. A zero maximum always gives zero (ungraded
// items).
func Score(r *rand.Rand, p Params) float64 {
	if p.Max == 0 {
		return 0
	}
	v := table.Round(r.NormFloat64()*p.SD+p.Mean, 2)
	switch {
	case v > p.Max:
		return p.Max
	case v < 0:
		return 0
	}
	return v
}

// Student is a generated identity.
type Student struct {
	Name    string `csv:"Student Name"`
	ID      int    `csv:"Student ID"`
	Program string `csv:"Academic Program"`
	Email   string `csv:"Preferred Email"`
}

// ShortName drops the middle initial, the way students report their
// names to the homework publisher.
func (s Student) ShortName() string {
	parts := strings.Split(s.Name, ", ")
	if len(parts) > 2 {
		return parts[0] + ", " + parts[1]
	}
	return s.Name
}

// Roster creates n students sorted by name. Names without the middle
// initial and IDs are unique. Every second student gets a middle initial.
func Roster(r *rand.Rand, n int) ([]Student, error) {
	if n <= 0 {
		return nil, fmt.Errorf("number of students must be positive, got %d", n)
	}
	if n > len(lastNames)*len(firstNames) {
		return nil, fmt.Errorf("cannot create more than %d unique names",
			len(lastNames)*len(firstNames))
	}
	names := make(map[string]struct{}, n)
	ids := make(map[int]struct{}, n)
	res := make([]Student, n)
	for i := range res {
		var last, first, name string
		for {
			last, first = pick(r, lastNames), pick(r, firstNames)
			name = last + ", " + first
			if _, ok := names[name]; !ok {
				names[name] = struct{}{}
				break
			}
		}
		id := 100000 + r.IntN(4999999-100000)
		for {
			if _, ok := ids[id]; !ok {
				ids[id] = struct{}{}
				break
			}
			id = 100000 + r.IntN(4999999-100000)
		}
		if (i+1)%2 == 0 {
			name += ", " + string(rune('A'+r.IntN(26))) + "."
		}
		email := fmt.Sprintf("%s%c%d@university.edu",
			last, first[0], 100+r.IntN(899))
		res[i] = Student{
			Name:    name,
			ID:      id,
			Program: pick(r, programs),
			Email:   strings.ToLower(email),
		}
	}
	slices.SortStableFunc(res, func(a, b Student) int {
		return strings.Compare(a.Name, b.Name)
	})
	return res, nil
}

// HomeworkTable creates the publisher export: reading, homework and
// extra credit per unit, with maximum points in headers.
func HomeworkTable(
	r *rand.Rand,
	students []Student,
	units int,
) (table.Table, error) {
	cols := []table.Column{{Name: "Name"}}
	for u := 1; u <= units; u++ {
		cols = append(cols,
			table.Column{Name: fmt.Sprintf("Chapter %d: E-BOOK (Not Graded) (10)", u)},
			table.Column{Name: fmt.Sprintf("Chapter %d: Required (%.1f)", u, Homework.Max)},
			table.Column{Name: fmt.Sprintf("Chapter %d: Extra Credit (%.1f)", u, XC.Max)},
		)
	}
	rows := make([][]table.Cell, len(students))
	for i, s := range students {
		row := []table.Cell{table.Str(s.ShortName())}
		for u := 1; u <= units; u++ {
			for _, p := range []Params{Reading, Homework, XC} {
				row = append(row, table.Num(Score(r, p)))
			}
		}
		rows[i] = row
	}
	return table.New(cols, rows)
}

// LMSTable creates the learning management system export: quizzes, labs
// and discussions per unit, two-part midterms and a cumulative exam.
func LMSTable(
	r *rand.Rand,
	students []Student,
	units, midterms int,
	section string,
) (table.Table, error) {
	cols := []table.Column{
		{Name: "Name"}, {Name: "Student ID Number"}, {Name: "Course Section"},
	}
	for u := 1; u <= units; u++ {
		cols = append(cols,
			table.Column{Name: fmt.Sprintf("Canvas Quiz %d: Chapter %d", u, u)},
			table.Column{Name: fmt.Sprintf("Laboratory #%d", u)},
			table.Column{Name: fmt.Sprintf("Discussion Week %d", u)},
		)
	}
	for m := 1; m <= midterms; m++ {
		cols = append(cols,
			table.Column{Name: fmt.Sprintf("Midterm #%d: Multiple Choice", m)},
			table.Column{Name: fmt.Sprintf("Midterm #%d: Short Answer", m)},
		)
	}
	cols = append(cols, table.Column{Name: "Cumulative Exam"})

	rows := make([][]table.Cell, len(students))
	for i, s := range students {
		row := []table.Cell{
			table.Str(s.ShortName()),
			table.Str(fmt.Sprint(s.ID)),
			table.Str(section),
		}
		for u := 1; u <= units; u++ {
			for _, p := range []Params{Quiz, Lab, Discussion} {
				row = append(row, table.Num(Score(r, p)))
			}
		}
		for m := 1; m <= midterms; m++ {
			row = append(row,
				table.Num(Score(r, MidtermMC)),
				table.Num(Score(r, MidtermSA)),
			)
		}
		row = append(row, table.Num(Score(r, Cumulative)))
		rows[i] = row
	}
	return table.New(cols, rows)
}

func pick(r *rand.Rand, list []string) string {
	return list[r.IntN(len(list))]
}
