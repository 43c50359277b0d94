package course

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"
)

// ErrZeroTotal is returned when the course maximum is zero, which would
// make every percentage a division by zero.
var ErrZeroTotal = errors.New("course total points is zero")

// Validate checks the course for errors, applies defaults and sorts
// letter thresholds in descending order. Non-fatal issues are collected
// in Warnings.
func (c *Course) Validate() error {
	c.Warnings = nil

	if c.Units <= 0 {
		return fmt.Errorf("units must be positive, got %d", c.Units)
	}
	if c.Weeks <= 0 {
		return fmt.Errorf("weeks must be positive, got %d", c.Weeks)
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("no categories specified")
	}

	if err := c.validateCategories(); err != nil {
		return err
	}

	if c.CategoryTotal() == 0 || c.MaxPoints < 0 {
		return ErrZeroTotal
	}

	if c.MaxPoints > 0 && math.Abs(c.MaxPoints-c.CategoryTotal()) > 1e-9 {
		c.warn("max_points", fmt.Sprintf(
			"max_points %g differs from the category table total %g",
			c.MaxPoints, c.CategoryTotal(),
		))
	}

	if c.ExamBlock() > c.Total() {
		return fmt.Errorf(
			"exam_block_points %g exceeds course total %g",
			c.ExamBlock(), c.Total(),
		)
	}

	if err := c.validateLetters(); err != nil {
		return err
	}

	if err := validateRules("homework", c.Rules.Homework); err != nil {
		return err
	}
	if err := validateRules("lms", c.Rules.LMS); err != nil {
		return err
	}
	for _, v := range c.Rules.Ignore {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("ignore patterns cannot be empty")
		}
	}
	return nil
}

func (c *Course) validateCategories() error {
	names := make(map[string]struct{})
	tags := make(map[string]struct{})
	for i, cat := range c.Categories {
		switch {
		case cat.Name == "":
			return fmt.Errorf("category %d: name is required", i+1)
		case cat.Tag == "":
			return fmt.Errorf("category %s: tag is required", cat.Name)
		case cat.Points <= 0:
			return fmt.Errorf("category %s: points must be positive", cat.Name)
		case cat.Count <= 0:
			return fmt.Errorf("category %s: count must be positive", cat.Name)
		case cat.Exam && cat.ExtraCredit:
			return fmt.Errorf(
				"category %s: cannot be both exam and extra credit", cat.Name,
			)
		case cat.Exam && cat.DueWeek <= 0:
			return fmt.Errorf("category %s: exam needs due_week", cat.Name)
		}
		if _, ok := names[cat.Name]; ok {
			return fmt.Errorf("duplicate category name %q", cat.Name)
		}
		if _, ok := tags[cat.Tag]; ok {
			return fmt.Errorf("duplicate category tag %q", cat.Tag)
		}
		names[cat.Name] = struct{}{}
		tags[cat.Tag] = struct{}{}

		// A shorter tag listed first would claim the longer tag's columns.
		for _, prev := range c.Categories[:i] {
			if strings.Contains(cat.Tag, prev.Tag) {
				c.warn("categories", fmt.Sprintf(
					"tag %q of %s is shadowed by tag %q of %s",
					cat.Tag, cat.Name, prev.Tag, prev.Name,
				))
			}
		}
	}
	return nil
}

func (c *Course) validateLetters() error {
	if len(c.Letters) == 0 {
		return fmt.Errorf("no letter thresholds specified")
	}
	seen := make(map[string]struct{})
	for _, l := range c.Letters {
		if l.Letter == "" {
			return fmt.Errorf("letter cannot be empty")
		}
		if l.Min < 0 || l.Min > 1 {
			return fmt.Errorf(
				"threshold of %s must be within [0, 1], got %g", l.Letter, l.Min,
			)
		}
		if _, ok := seen[l.Letter]; ok {
			return fmt.Errorf("duplicate letter %q", l.Letter)
		}
		seen[l.Letter] = struct{}{}
	}
	if c.Fallback == "" {
		c.Fallback = "F"
		c.warn("fallback", "fallback letter is empty, using F")
	}
	slices.SortStableFunc(c.Letters, func(a, b Letter) int {
		switch {
		case a.Min > b.Min:
			return -1
		case a.Min < b.Min:
			return 1
		}
		return 0
	})
	return nil
}

// validateRules makes sure no rule pattern can match text introduced by
// a replacement, so normalizing a header twice changes nothing.
func validateRules(source string, rules []Rule) error {
	for i, r := range rules {
		if r.From == "" {
			return fmt.Errorf("%s rule %d: 'from' cannot be empty", source, i+1)
		}
		if r.Regex {
			if _, err := regexp.Compile(r.From); err != nil {
				return fmt.Errorf("%s rule %d: %w", source, i+1, err)
			}
		}
	}
	for i, r := range rules {
		for _, other := range rules {
			if other.To == "" {
				continue
			}
			if matches(r, other.To) {
				return fmt.Errorf(
					"%s rule %d: pattern %q matches replacement %q",
					source, i+1, r.From, other.To,
				)
			}
		}
	}
	return nil
}

func matches(r Rule, s string) bool {
	if r.Regex {
		return regexp.MustCompile(r.From).MatchString(s)
	}
	return strings.Contains(s, r.From)
}

func (c *Course) warn(field, msg string) {
	c.Warnings = append(c.Warnings, ValidationWarning{
		Field:   field,
		Message: msg,
	})
}
