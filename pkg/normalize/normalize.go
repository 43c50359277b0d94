// Package normalize turns identity strings and column headers of source
// exports into the short internal vocabulary shared by all sources.
package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gnames/gngrades/pkg/course"
	"github.com/gnames/gnlib"
)

var (
	nameRe   = regexp.MustCompile(`([a-z][a-z'-]*), ([a-z][a-z'-]*)`)
	pointsRe = regexp.MustCompile(`\((\d+(?:\.\d+)?)\)\s*$`)
)

// Identity lowercases an identity string and trims surrounding space.
func Identity(s string) string {
	s = gnlib.FixUtf8(s)
	return strings.ToLower(strings.TrimSpace(s))
}

// StudentName returns the canonical "lastname, firstname" form of a
// name. Middle initials and suffixes are discarded. The second value is
// false if the string does not contain a name in that form.
func StudentName(s string) (string, bool) {
	m := nameRe.FindStringSubmatch(Identity(s))
	if m == nil {
		return "", false
	}
	return m[1] + ", " + m[2], true
}

// Header applies rename rules to a header in order. Each rule sees the
// output of the previous one.
func Header(h string, rules []course.Rule) string {
	for _, r := range rules {
		if r.Regex {
			h = regexp.MustCompile(r.From).ReplaceAllString(h, r.To)
			continue
		}
		h = strings.ReplaceAll(h, r.From, r.To)
	}
	return strings.TrimSpace(h)
}

// PointsInHeader reads the maximum points that some exports append to a
// header, for example "Chapter 1: Required (5.0)".
func PointsInHeader(h string) (float64, bool) {
	m := pointsRe.FindStringSubmatch(h)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Ignored is true when a header contains one of the ignore patterns.
func Ignored(h string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(h, p) {
			return true
		}
	}
	return false
}

// Classify returns the first category whose tag is a substring of the
// normalized header.
func Classify(h string, cats []course.Category) (course.Category, bool) {
	for _, c := range cats {
		if strings.Contains(h, c.Tag) {
			return c, true
		}
	}
	return course.Category{}, false
}
