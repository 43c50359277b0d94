package course_test

import (
	"errors"
	"testing"

	"github.com/gnames/gngrades/pkg/course"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := course.Default()
	err := c.Validate()
	require.Nil(t, err)
	assert.Empty(t, c.Warnings)

	assert.Equal(t, 502.0, c.Total())
	assert.Equal(t, 502.0, c.CategoryTotal())
	assert.Equal(t, 400.0, c.ExamBlock())

	cat, ok := c.Category("Qzs")
	require.True(t, ok)
	assert.Equal(t, 30.0, cat.Max())
	assert.Equal(t, "TTL Qzs", cat.TotalName())

	_, ok = c.Category("Unknown")
	assert.False(t, ok)
}

func TestComputedTotals(t *testing.T) {
	c := course.Default()
	c.MaxPoints = 0
	c.ExamBlockPoints = 0
	require.Nil(t, c.Validate())
	assert.Equal(t, 502.0, c.Total(), "extra credit is excluded")
	assert.Equal(t, 400.0, c.ExamBlock())
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		msg    string
		modify func(*course.Course)
	}{
		{"no units", func(c *course.Course) { c.Units = 0 }},
		{"no weeks", func(c *course.Course) { c.Weeks = -1 }},
		{"no categories", func(c *course.Course) { c.Categories = nil }},
		{"zero points", func(c *course.Course) { c.Categories[0].Points = 0 }},
		{"zero count", func(c *course.Course) { c.Categories[1].Count = 0 }},
		{"duplicate tag", func(c *course.Course) { c.Categories[1].Tag = "Qz" }},
		{"duplicate name", func(c *course.Course) { c.Categories[1].Name = "Qzs" }},
		{"exam without week", func(c *course.Course) { c.Categories[4].DueWeek = 0 }},
		{"exam and extra credit", func(c *course.Course) {
			c.Categories[4].ExtraCredit = true
		}},
		{"threshold above one", func(c *course.Course) { c.Letters[0].Min = 90 }},
		{"negative threshold", func(c *course.Course) { c.Letters[3].Min = -0.1 }},
		{"duplicate letter", func(c *course.Course) { c.Letters[1].Letter = "A" }},
		{"no letters", func(c *course.Course) { c.Letters = nil }},
		{"exam block too big", func(c *course.Course) { c.ExamBlockPoints = 600 }},
		{"bad regex", func(c *course.Course) {
			c.Rules.Homework[0].From = `(`
		}},
		{"empty rule", func(c *course.Course) {
			c.Rules.LMS = append(c.Rules.LMS, course.Rule{To: "X"})
		}},
		{"rule is not idempotent", func(c *course.Course) {
			c.Rules.LMS = append(c.Rules.LMS, course.Rule{From: "Qz", To: "Quiz"})
		}},
		{"empty ignore pattern", func(c *course.Course) {
			c.Rules.Ignore = append(c.Rules.Ignore, " ")
		}},
	}

	for _, v := range tests {
		c := course.Default()
		v.modify(c)
		assert.NotNil(t, c.Validate(), v.msg)
	}
}

func TestValidateZeroTotal(t *testing.T) {
	c := course.Default()
	c.Categories = []course.Category{
		{Name: "XCs", Tag: "XC", Points: 2, Count: 6, ExtraCredit: true},
	}
	c.MaxPoints = 0
	c.ExamBlockPoints = 0
	err := c.Validate()
	assert.True(t, errors.Is(err, course.ErrZeroTotal))
}

func TestValidateWarnings(t *testing.T) {
	c := course.Default()
	c.MaxPoints = 500
	c.Fallback = ""
	require.Nil(t, c.Validate())

	fields := make([]string, len(c.Warnings))
	for i, w := range c.Warnings {
		fields[i] = w.Field
	}
	assert.Contains(t, fields, "max_points")
	assert.Contains(t, fields, "fallback")
	assert.Equal(t, "F", c.Fallback)
	assert.Equal(t, 500.0, c.Total(), "configured total wins")
}

func TestValidateShadowedTag(t *testing.T) {
	c := course.Default()
	c.Categories[1].Tag = "Qz Lab"
	require.Nil(t, c.Validate())
	require.Len(t, c.Warnings, 1)
	assert.Equal(t, "categories", c.Warnings[0].Field)
}

func TestValidateSortsLetters(t *testing.T) {
	c := course.Default()
	c.Letters = []course.Letter{
		{Letter: "C", Min: 0.7},
		{Letter: "A", Min: 0.9},
		{Letter: "B", Min: 0.8},
	}
	require.Nil(t, c.Validate())
	var res []string
	for _, l := range c.Letters {
		res = append(res, l.Letter)
	}
	assert.Equal(t, []string{"A", "B", "C"}, res)
}
