// Package ioload reads the roster, homework and LMS exports and turns
// them into normalized tables ready to be merged.
package ioload

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gngrades/internal/iotable"
	"github.com/gnames/gngrades/pkg/config"
	"github.com/gnames/gngrades/pkg/course"
	"github.com/gnames/gngrades/pkg/merge"
	"github.com/gnames/gngrades/pkg/normalize"
	"github.com/gnames/gngrades/pkg/table"
	"github.com/gocarina/gocsv"
)

// Headers of identity columns in source exports.
const (
	RosterName    = "Student Name"
	RosterID      = "Student ID"
	NameColumn    = "Name"
	LMSID         = "Student ID Number"
	SectionColumn = "Course Section"
)

// RosterRecord is one row of the class roster export.
type RosterRecord struct {
	Name    string `csv:"Student Name"`
	ID      string `csv:"Student ID"`
	Program string `csv:"Academic Program"`
	Email   string `csv:"Preferred Email"`
}

// Roster loads the class roster keyed on the student ID. Every column is
// an identity column.
func Roster(path string) (table.Table, error) {
	var t table.Table
	var err error
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		t, err = rosterCSV(path)
	} else {
		t, err = iotable.Read(path)
	}
	if err != nil {
		return table.Table{}, err
	}

	src := normalize.Source{
		Key:        RosterID,
		NameColumn: RosterName,
		Identity:   t.Names(),
	}
	return load(path, t, src, nil)
}

func rosterCSV(path string) (table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return table.Table{}, iotable.InputNotFoundError(path, err)
		}
		return table.Table{}, iotable.ReadTableError(path, err)
	}
	defer f.Close()

	var recs []*RosterRecord
	if err = gocsv.UnmarshalFile(f, &recs); err != nil {
		return table.Table{}, iotable.ReadTableError(path, err)
	}

	cols := []table.Column{
		{Name: RosterName}, {Name: RosterID},
		{Name: "Academic Program"}, {Name: "Preferred Email"},
	}
	rows := make([][]table.Cell, 0, len(recs))
	for _, r := range recs {
		if r.ID == "" && r.Name == "" {
			continue
		}
		rows = append(rows, []table.Cell{
			table.Str(r.Name), table.Str(r.ID),
			table.Str(r.Program), table.Str(r.Email),
		})
	}
	if len(recs) > 0 && len(rows) == 0 {
		return table.Table{}, MissingColumnError(path, RosterID)
	}
	return table.New(cols, rows)
}

// Homework loads the publisher export keyed on the normalized student
// name.
func Homework(path string, c *course.Course) (table.Table, error) {
	t, err := iotable.Read(path)
	if err != nil {
		return table.Table{}, err
	}
	src := normalize.Source{
		Key:        NameColumn,
		NameColumn: NameColumn,
		Identity:   []string{NameColumn},
		Rules:      c.Rules.Homework,
		Ignore:     c.Rules.Ignore,
	}
	return load(path, t, src, c)
}

// LMS loads the learning management system export keyed on the student
// ID.
func LMS(path string, c *course.Course) (table.Table, error) {
	t, err := iotable.Read(path)
	if err != nil {
		return table.Table{}, err
	}
	src := normalize.Source{
		Key:        LMSID,
		NameColumn: NameColumn,
		Identity:   []string{NameColumn, LMSID, SectionColumn},
		Rules:      c.Rules.LMS,
		Ignore:     c.Rules.Ignore,
	}
	return load(path, t, src, c)
}

// Sources loads all three exports named in the configuration.
func Sources(cfg *config.Config, c *course.Course) (merge.Input, error) {
	var res merge.Input
	var err error
	if res.Roster, err = Roster(cfg.Path(cfg.Paths.Roster)); err != nil {
		return res, err
	}
	if res.LMS, err = LMS(cfg.Path(cfg.Paths.LMS), c); err != nil {
		return res, err
	}
	if res.Homework, err = Homework(cfg.Path(cfg.Paths.Homework), c); err != nil {
		return res, err
	}
	res.NameColumn = RosterName
	res.Drop = []string{NameColumn}
	return res, nil
}

// Gradebook loads a merged gradebook. Column metadata is restored from
// headers unless the file keeps it.
func Gradebook(path string, c *course.Course) (table.Table, error) {
	t, err := iotable.Read(path)
	if err != nil {
		return table.Table{}, err
	}
	if t.Key() == "" {
		if !t.Has(merge.StudentKey) {
			return table.Table{}, MissingColumnError(path, merge.StudentKey)
		}
		if t, err = normalize.Annotate(t, merge.StudentKey, c); err != nil {
			return table.Table{}, InputFormatError(path, err)
		}
	}
	if err = normalize.CheckScores(t); err != nil {
		return table.Table{}, scoreError(path, err)
	}
	return t, nil
}

func load(
	path string,
	t table.Table,
	src normalize.Source,
	c *course.Course,
) (table.Table, error) {
	for _, col := range []string{src.Key, src.NameColumn} {
		if col != "" && !t.Has(col) {
			return table.Table{}, MissingColumnError(path, col)
		}
	}
	if c == nil {
		c = &course.Course{}
	}

	res, err := normalize.Normalize(t, src, c)
	if err != nil {
		return table.Table{}, scoreError(path, err)
	}

	if n := len(res.BadNames); n > 0 {
		slog.Warn("Names not in 'lastname, firstname' form",
			"path", path, "count", n, "names", res.BadNames)
		gn.Warn("<em>%s</em>: %s names are not in 'lastname, firstname' form",
			filepath.Base(path), humanize.Comma(int64(n)))
	}
	if n := len(res.Unclassified); n > 0 {
		slog.Warn("Score columns without category",
			"path", path, "count", n, "columns", res.Unclassified)
		gn.Warn("<em>%s</em>: %s score columns match no category "+
			"and are left out of totals: %s",
			filepath.Base(path), humanize.Comma(int64(n)),
			strings.Join(res.Unclassified, ", "))
	}
	if n := len(res.PointsMismatch); n > 0 {
		slog.Warn("Header points differ from course points",
			"path", path, "count", n, "columns", res.PointsMismatch)
		gn.Warn("<em>%s</em>: points of %s columns differ from course.yaml, "+
			"course points are used",
			filepath.Base(path), humanize.Comma(int64(n)))
	}
	if len(res.Dropped) > 0 {
		slog.Debug("Dropped non-scored columns",
			"path", path, "columns", res.Dropped)
	}
	slog.Info("Loaded source",
		"path", path,
		"students", res.Table.Len(),
		"columns", res.Table.Width(),
	)
	return res.Table, nil
}

func scoreError(path string, err error) error {
	var se *normalize.ScoreError
	if errors.As(err, &se) {
		return ScoreOutOfRangeError(path, se)
	}
	return InputFormatError(path, err)
}
