package iotable

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gngrades/pkg/errcode"
	"github.com/gnames/gngrades/pkg/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) table.Table {
	t.Helper()
	tbl, err := table.New(
		[]table.Column{
			{Name: "Student Name"},
			{Name: "Qz 1: CH 1", Role: table.Score, Category: "Qzs", MaxPoints: 5},
			{Name: "TTL Qzs", Role: table.Derived, Category: "Qzs", MaxPoints: 30},
			{Name: "Pts Needed (A)", Role: table.Derived},
			{Name: "Notes \"quoted\""},
		},
		[][]table.Cell{
			{table.Str("adams, ana"), table.Num(4.5), table.Num(29.25),
				table.Sentinel(), table.Str("late")},
			{table.Str("baker, luis"), table.Missing(), table.Num(0),
				table.Num(-12.5), table.Missing()},
		},
	)
	require.NoError(t, err)
	tbl, err = tbl.WithKey("Student Name")
	require.NoError(t, err)
	return tbl
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		res  Format
		err  bool
	}{
		{"a.csv", CSV, false},
		{"dir/a.XLSX", XLSX, false},
		{"a.sqlite", SQLite, false},
		{"a.txt", CSV, true},
		{"a", CSV, true},
	}
	for _, v := range tests {
		res, err := FormatOf(v.path)
		assert.Equal(t, v.res, res, v.path)
		assert.Equal(t, v.err, err != nil, v.path)
	}
}

func TestRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	for _, ext := range []string{"csv", "xlsx", "sqlite"} {
		t.Run(ext, func(t *testing.T) {
			tbl := sample(t)
			path := filepath.Join(t.TempDir(), "gradebook."+ext)
			require.NoError(t, Write(path, tbl))
			// writing again replaces the file
			require.NoError(t, Write(path, tbl))

			res, err := Read(path)
			require.NoError(t, err)
			assert.Equal(t, tbl.Names(), res.Names())
			assert.Equal(t, 2, res.Len())

			sentinel := res.Cell(0, "Pts Needed (A)")
			assert.Equal(t, table.Unattainable, sentinel.Kind,
				"sentinel is not coerced to a number")
			assert.Equal(t, "-", sentinel.String())
			assert.Equal(t, -12.5, res.Cell(1, "Pts Needed (A)").Num)
			assert.Equal(t, 4.5, res.Cell(0, "Qz 1: CH 1").Num)
			assert.True(t, res.Cell(1, "Qz 1: CH 1").IsAbsent())
			assert.Equal(t, "late", res.Cell(0, "Notes \"quoted\"").String())
		})
	}
}

func TestIdentityDigits(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	tbl, err := table.FromRecords(
		[]string{"Student ID", "Course Section", "Qz 1"},
		[][]string{
			{"0042", "007", "4.5"},
			{"12345678901234567891", "010", "5"},
		},
	)
	require.NoError(t, err)

	for _, ext := range []string{"csv", "xlsx", "sqlite"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "roster."+ext)
			require.NoError(t, Write(path, tbl))
			res, err := Read(path)
			require.NoError(t, err)

			assert.Equal(t, "0042", res.Cell(0, "Student ID").String())
			assert.Equal(t, "12345678901234567891",
				res.Cell(1, "Student ID").String())
			assert.Equal(t, "007", res.Cell(0, "Course Section").String())
			assert.Equal(t, 4.5, res.Cell(0, "Qz 1").Num)
		})
	}
}

func TestSQLiteMetadata(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	path := filepath.Join(t.TempDir(), "gradebook.sqlite")
	require.NoError(t, Write(path, sample(t)))
	res, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, "Student Name", res.Key())
	col, ok := res.Column("Qz 1: CH 1")
	require.True(t, ok)
	assert.Equal(t, table.Score, col.Role)
	assert.Equal(t, "Qzs", col.Category)
	assert.Equal(t, 5.0, col.MaxPoints)

	col, _ = res.Column("TTL Qzs")
	assert.Equal(t, table.Derived, col.Role)
}

func TestReadCSVExport(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	content := "\ufeffName , Laboratory #1\nSmith, 4\nDoe,5,extra\n,\n"
	path := filepath.Join(t.TempDir(), "lms.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Read(path)
	require.Error(t, err, "record wider than header")

	content = "\ufeffName , Laboratory #1\nSmith, 4\nDoe\n,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	res, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Laboratory #1"}, res.Names())
	assert.Equal(t, 2, res.Len(), "trailing blank rows removed")
	assert.Equal(t, 4.0, res.Cell(0, "Laboratory #1").Num)
	assert.True(t, res.Cell(1, "Laboratory #1").IsAbsent())
}

func TestReadErrors(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, nil, 0644))

	tests := []struct {
		name string
		path string
		code gn.ErrorCode
	}{
		{"missing", filepath.Join(dir, "none.csv"), errcode.InputNotFoundError},
		{"missing sqlite", filepath.Join(dir, "none.sqlite"), errcode.InputNotFoundError},
		{"format", filepath.Join(dir, "a.ods"), errcode.UnsupportedFormatError},
		{"empty", empty, errcode.ReadTableError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(tt.path)
			require.Error(t, err)
			gnErr, ok := err.(*gn.Error)
			require.True(t, ok)
			assert.Equal(t, tt.code, gnErr.Code)
		})
	}

	_, err := os.Stat(filepath.Join(dir, "none.sqlite"))
	assert.True(t, os.IsNotExist(err), "reading does not create a database")
}

func TestWriteError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}
	path := filepath.Join(t.TempDir(), "missing", "out.csv")
	err := Write(path, sample(t))
	require.Error(t, err)
	assert.Equal(t, errcode.WriteTableError, err.(*gn.Error).Code)
}

func TestTimestampedName(t *testing.T) {
	now := time.Date(2024, 5, 17, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "scores_2024-05-17_03-04-PM.xlsx",
		TimestampedName("scores", now, "xlsx"))
	now = time.Date(2024, 12, 1, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "scores_2024-12-01_09-30-AM.csv",
		TimestampedName("scores", now, "csv"))
}
