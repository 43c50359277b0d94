package config

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, RunID).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	strOpts := []struct {
		val string
		fn  func(string) Option
	}{
		{c.Paths.DataDir, OptPathsDataDir},
		{c.Paths.Roster, OptPathsRoster},
		{c.Paths.Homework, OptPathsHomework},
		{c.Paths.LMS, OptPathsLMS},
		{c.Paths.Gradebook, OptPathsGradebook},
		{c.Paths.Final, OptPathsFinal},
		{c.Paths.Format, OptPathsFormat},
		{c.Paths.Course, OptPathsCourse},
		{c.Generate.Section, OptGenerateSection},
		{c.Merge.Fill, OptMergeFill},
	}
	for _, v := range strOpts {
		if v.val != "" {
			res = append(res, v.fn(v.val))
		}
	}

	i = c.Generate.Students
	if i > 0 {
		res = append(res, OptGenerateStudents(i))
	}
	i = c.Generate.Units
	if i > 0 {
		res = append(res, OptGenerateUnits(i))
	}
	i = c.Generate.Midterms
	if i > 0 {
		res = append(res, OptGenerateMidterms(i))
	}
	if c.Generate.Seed > 0 {
		res = append(res, OptGenerateSeed(c.Generate.Seed))
	}
	res = append(res, OptMergeStrict(c.Merge.Strict))
	i = c.Extrapolate.Weeks
	if i > 0 {
		res = append(res, OptExtrapolateWeeks(i))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

// isValidTable accepts file names with an extension of a supported table
// format.
func isValidTable(name, s string) bool {
	if !isValidString(name, s) {
		return false
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(s)), ".")
	if _, ok := tableFormats[ext]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> needs .csv, .xlsx or .sqlite extension, ignoring '%s'",
		name, s,
	)
	return false
}

var tableFormats = map[string]struct{}{
	"csv": {}, "xlsx": {}, "sqlite": {},
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Paths.Format":    tableFormats,
		"Merge.Fill":      {"zero": s, "absent": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
