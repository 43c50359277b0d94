package normalize_test

import (
	"errors"
	"testing"

	"github.com/gnames/gngrades/pkg/course"
	"github.com/gnames/gngrades/pkg/normalize"
	"github.com/gnames/gngrades/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentName(t *testing.T) {
	tests := []struct {
		msg string
		in  string
		res string
		ok  bool
	}{
		{"plain", "Smith, John", "smith, john", true},
		{"middle initial", "Smith, John, A.", "smith, john", true},
		{"apostrophe", "O'Brien, Mary", "o'brien, mary", true},
		{"hyphen", "Garcia-Lopez, Ana", "garcia-lopez, ana", true},
		{"spaces", "  DOE, Jane  ", "doe, jane", true},
		{"no comma", "John Smith", "", false},
		{"empty", "", "", false},
	}

	for _, v := range tests {
		res, ok := normalize.StudentName(v.in)
		assert.Equal(t, v.ok, ok, v.msg)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestHeader(t *testing.T) {
	c := course.Default()
	tests := []struct {
		msg   string
		in    string
		rules []course.Rule
		res   string
	}{
		{"homework", "Chapter 1: Required (5.0)", c.Rules.Homework, "CH 1 HMWK"},
		{"extra credit", "Chapter 3: Extra Credit (2.0)", c.Rules.Homework, "CH 3 XC"},
		{"quiz", "Canvas Quiz 2: Chapter 2", c.Rules.LMS, "Qz 2: CH 2"},
		{"lab", "Laboratory #4", c.Rules.LMS, "Lab #4"},
		{"discussion", "Discussion Week 5", c.Rules.LMS, "Disc #5"},
		{"midterm mc", "Midterm #1: Multiple Choice", c.Rules.LMS, "MidT #1: MCQs"},
		{"midterm sa", "Midterm #2: Short Answer", c.Rules.LMS, "MidT #2: SAQs"},
		{"untouched", "Cumulative Exam", c.Rules.LMS, "Cumulative Exam"},
	}

	for _, v := range tests {
		res := normalize.Header(v.in, v.rules)
		assert.Equal(t, v.res, res, v.msg)
		assert.Equal(t, res, normalize.Header(res, v.rules), v.msg+": idempotent")
	}
}

func TestPointsInHeader(t *testing.T) {
	pts, ok := normalize.PointsInHeader("Chapter 1: Required (5.0)")
	assert.True(t, ok)
	assert.Equal(t, 5.0, pts)

	pts, ok = normalize.PointsInHeader("Chapter 1: E-BOOK (Not Graded) (10)")
	assert.True(t, ok)
	assert.Equal(t, 10.0, pts)

	_, ok = normalize.PointsInHeader("Laboratory #1")
	assert.False(t, ok)
}

func TestClassify(t *testing.T) {
	cats := course.Default().Categories
	tests := []struct {
		header string
		res    string
		ok     bool
	}{
		{"Qz 1: CH 1", "Qzs", true},
		{"CH 1 HMWK", "HMWKs", true},
		{"CH 1 XC", "XCs", true},
		{"MidT #1: MCQs", "MidT #1", true},
		{"MidT #2: SAQs", "MidT #2", true},
		{"Cumulative Exam", "Cumulative", true},
		{"Course Section", "", false},
	}

	for _, v := range tests {
		res, ok := normalize.Classify(v.header, cats)
		assert.Equal(t, v.ok, ok, v.header)
		assert.Equal(t, v.res, res.Name, v.header)
	}
}

func homework(t *testing.T, score string) table.Table {
	t.Helper()
	tbl, err := table.FromRecords(
		[]string{
			"Name",
			"Chapter 1: E-BOOK (Not Graded) (10)",
			"Chapter 1: Required (5.0)",
			"Chapter 1: Extra Credit (2.0)",
			"Chapter 2: Required (5.0)",
		},
		[][]string{
			{"Smith, John", "10", score, "2", ""},
			{"Doe, Jane", "0", "5", "", ""},
			{"Prince", "0", "1", "", ""},
		},
	)
	require.Nil(t, err)
	return tbl
}

func homeworkSource(c *course.Course) normalize.Source {
	return normalize.Source{
		Key:        "Name",
		NameColumn: "Name",
		Identity:   []string{"Name"},
		Rules:      c.Rules.Homework,
		Ignore:     c.Rules.Ignore,
	}
}

func TestNormalize(t *testing.T) {
	c := course.Default()
	res, err := normalize.Normalize(homework(t, "4.5"), homeworkSource(c), c)
	require.Nil(t, err)

	tbl := res.Table
	assert.Equal(t, []string{"Name", "CH 1 HMWK", "CH 1 XC"}, tbl.Names())
	assert.Equal(t, "Name", tbl.Key())
	assert.Equal(t, "smith, john", tbl.KeyOf(0))
	assert.Equal(t, "doe, jane", tbl.KeyOf(1))
	assert.Equal(t, []string{"prince"}, res.BadNames)
	assert.Equal(t, []string{"Chapter 1: E-BOOK (Not Graded) (10)"}, res.Dropped)
	assert.Equal(t, "CH 1 HMWK", res.Renamed["Chapter 1: Required (5.0)"])

	col, ok := tbl.Column("CH 1 HMWK")
	require.True(t, ok)
	assert.Equal(t, table.Score, col.Role)
	assert.Equal(t, "HMWKs", col.Category)
	assert.Equal(t, 5.0, col.MaxPoints)

	col, _ = tbl.Column("CH 1 XC")
	assert.Equal(t, "XCs", col.Category)
	assert.Equal(t, 2.0, col.MaxPoints)

	col, _ = tbl.Column("Name")
	assert.Equal(t, table.Identity, col.Role)

	assert.True(t, tbl.Cell(1, "CH 1 XC").IsAbsent(), "absent stays absent")
}

func TestNormalizeTwice(t *testing.T) {
	c := course.Default()
	res, err := normalize.Normalize(homework(t, "4.5"), homeworkSource(c), c)
	require.Nil(t, err)

	again, err := normalize.Normalize(res.Table, homeworkSource(c), c)
	require.Nil(t, err)
	assert.Equal(t, res.Table.Names(), again.Table.Names())
	assert.Empty(t, again.Renamed)
}

func TestNormalizeScoreErrors(t *testing.T) {
	c := course.Default()
	tests := []struct {
		msg   string
		score string
		max   float64
	}{
		{"above max", "6", 5},
		{"negative", "-1", 5},
		{"not a number", "abc", 0},
	}

	for _, v := range tests {
		_, err := normalize.Normalize(homework(t, v.score), homeworkSource(c), c)
		require.NotNil(t, err, v.msg)
		var se *normalize.ScoreError
		require.True(t, errors.As(err, &se), v.msg)
		assert.Equal(t, "CH 1 HMWK", se.Column, v.msg)
		assert.Equal(t, 1, se.Row, v.msg)
		assert.Equal(t, v.max, se.Max, v.msg)
	}
}

func TestNormalizeMaxPoints(t *testing.T) {
	c := course.Default()
	tbl, err := table.FromRecords(
		[]string{"Name", "Chapter 1: Required (10)", "Bonus Project (3)",
			"Poster (4)"},
		[][]string{
			{"Smith, John", "5", "3", ""},
			{"Doe, Jane", "4", "1", ""},
		},
	)
	require.Nil(t, err)

	res, err := normalize.Normalize(tbl, homeworkSource(c), c)
	require.Nil(t, err)
	assert.Equal(t, []string{"Chapter 1: Required (10)"}, res.PointsMismatch)
	assert.Equal(t, []string{"Bonus Project"}, res.Unclassified,
		"empty columns are not reported")

	col, ok := res.Table.Column("CH 1 HMWK")
	require.True(t, ok)
	assert.Equal(t, 5.0, col.MaxPoints, "category points win over the header")

	col, ok = res.Table.Column("Bonus Project")
	require.True(t, ok)
	assert.Equal(t, "", col.Category)
	assert.Equal(t, 3.0, col.MaxPoints)

	// a reread gradebook gets the same maximum
	gb, err := normalize.Annotate(res.Table, "Name", c)
	require.Nil(t, err)
	col, _ = gb.Column("CH 1 HMWK")
	assert.Equal(t, 5.0, col.MaxPoints)
	assert.Nil(t, normalize.CheckScores(gb))

	// a score that fits the header but not the category fails at load
	tbl, err = table.FromRecords(
		[]string{"Name", "Chapter 1: Required (10)"},
		[][]string{{"Smith, John", "7"}},
	)
	require.Nil(t, err)
	_, err = normalize.Normalize(tbl, homeworkSource(c), c)
	var se *normalize.ScoreError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 5.0, se.Max)
}

func TestNormalizeMissingKey(t *testing.T) {
	c := course.Default()
	src := homeworkSource(c)
	src.Key = "Student ID"
	_, err := normalize.Normalize(homework(t, "1"), src, c)
	assert.NotNil(t, err)
}

func TestAnnotate(t *testing.T) {
	c := course.Default()
	tbl, err := table.FromRecords(
		[]string{"Student Key", "Name", "Qz 1: CH 1", "MidT #1: MCQs",
			"CH 2 XC", "TTL Qzs", "Final Score (%)"},
		[][]string{{"k1", "doe, jane", "4", "60", "2", "4", "0.5"}},
	)
	require.Nil(t, err)

	res, err := normalize.Annotate(tbl, "Student Key", c)
	require.Nil(t, err)
	assert.Equal(t, "Student Key", res.Key())

	tests := []struct {
		col  string
		role table.Role
		cat  string
	}{
		{"Student Key", table.Identity, ""},
		{"Name", table.Identity, ""},
		{"Qz 1: CH 1", table.Score, "Qzs"},
		{"MidT #1: MCQs", table.Score, "MidT #1"},
		{"CH 2 XC", table.Score, "XCs"},
		{"TTL Qzs", table.Derived, ""},
		{"Final Score (%)", table.Identity, ""},
	}
	for _, v := range tests {
		col, ok := res.Column(v.col)
		require.True(t, ok, v.col)
		assert.Equal(t, v.role, col.Role, v.col)
		assert.Equal(t, v.cat, col.Category, v.col)
	}

	_, err = normalize.Annotate(tbl, "Student ID", c)
	assert.NotNil(t, err)
}

func TestAnnotateIdentityText(t *testing.T) {
	tbl, err := table.FromRecords(
		[]string{"Student Key", "Student ID", "Qz 1: CH 1"},
		[][]string{{"k1", "0042", "4"}},
	)
	require.Nil(t, err)

	res, err := normalize.Annotate(tbl, "Student Key", course.Default())
	require.Nil(t, err)
	id := res.Cell(0, "Student ID")
	assert.Equal(t, table.Text, id.Kind)
	assert.Equal(t, "0042", id.String())
	assert.Equal(t, table.Number, res.Cell(0, "Qz 1: CH 1").Kind)
}
