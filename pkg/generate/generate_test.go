package generate_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/gnames/gngrades/pkg/generate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreClamp(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	params := []generate.Params{
		generate.Homework, generate.XC, generate.Quiz, generate.Lab,
		generate.Discussion, generate.MidtermMC, generate.MidtermSA,
		generate.Cumulative,
		{Max: 1, Mean: 5, SD: 10},
		{Max: 10, Mean: -5, SD: 10},
	}
	for _, p := range params {
		for range 2000 {
			v := generate.Score(r, p)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, p.Max)
		}
	}
}

func TestScoreZeroMax(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		assert.Equal(t, 0.0, generate.Score(r, generate.Reading))
		assert.Equal(t, 0.0, generate.Score(r, generate.Params{SD: 5, Mean: 3}))
	}
}

func TestRoster(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 7))
	_, err := generate.Roster(r, 0)
	assert.NotNil(t, err)

	students, err := generate.Roster(r, 40)
	require.Nil(t, err)
	assert.Len(t, students, 40)

	var initials int
	for i, s := range students {
		if i > 0 {
			assert.LessOrEqual(t, students[i-1].Name, s.Name, "sorted by name")
		}
		assert.GreaterOrEqual(t, s.ID, 100000)
		assert.Less(t, s.ID, 4999999)
		assert.True(t, strings.HasSuffix(s.Email, "@university.edu"))
		assert.Equal(t, strings.ToLower(s.Email), s.Email)
		last := strings.ToLower(strings.Split(s.Name, ", ")[0])
		assert.True(t, strings.HasPrefix(s.Email, last), "email stays with student")
		if strings.Count(s.Name, ", ") == 2 {
			initials++
			assert.Equal(t, 1, strings.Count(s.ShortName(), ", "))
		}
	}
	assert.Equal(t, 20, initials)
}

func TestDeterministic(t *testing.T) {
	gen := func() []string {
		r := rand.New(rand.NewPCG(42, 0))
		students, err := generate.Roster(r, 5)
		require.Nil(t, err)
		hw, err := generate.HomeworkTable(r, students, 2)
		require.Nil(t, err)
		_, recs := hw.Records()
		var res []string
		for _, rec := range recs {
			res = append(res, strings.Join(rec, "|"))
		}
		return res
	}
	assert.Equal(t, gen(), gen())
}

func TestTables(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	students, err := generate.Roster(r, 5)
	require.Nil(t, err)

	hw, err := generate.HomeworkTable(r, students, 6)
	require.Nil(t, err)
	assert.Equal(t, 5, hw.Len())
	assert.Equal(t, 1+6*3, hw.Width())
	assert.Equal(t, "Chapter 1: E-BOOK (Not Graded) (10)", hw.Names()[1])
	assert.Equal(t, "Chapter 1: Required (5.0)", hw.Names()[2])
	assert.Equal(t, "Chapter 1: Extra Credit (2.0)", hw.Names()[3])

	lms, err := generate.LMSTable(r, students, 6, 2, "CHEM100 - 1234")
	require.Nil(t, err)
	assert.Equal(t, 3+6*3+2*2+1, lms.Width())
	names := lms.Names()
	assert.Equal(t, "Canvas Quiz 1: Chapter 1", names[3])
	assert.Equal(t, "Laboratory #1", names[4])
	assert.Equal(t, "Discussion Week 1", names[5])
	assert.Equal(t, "Midterm #1: Multiple Choice", names[21])
	assert.Equal(t, "Cumulative Exam", names[len(names)-1])

	for i, s := range students {
		assert.Equal(t, s.ShortName(), hw.Cell(i, "Name").String())
		assert.Equal(t, s.ShortName(), lms.Cell(i, "Name").String())
		id := lms.Cell(i, "Student ID Number").String()
		assert.NotEmpty(t, id)
		assert.Equal(t, "CHEM100 - 1234", lms.Cell(i, "Course Section").String())
		assert.Equal(t, 0.0, hw.Cell(i, "Chapter 1: E-BOOK (Not Graded) (10)").Num)
	}
}
