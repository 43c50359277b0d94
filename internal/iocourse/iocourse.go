// Package iocourse reads the grading policy of a course from a YAML file.
package iocourse

import (
	"errors"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gngrades/pkg/course"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a course policy. Validation warnings are shown
// to the user and logged, they do not stop the run.
func Load(path string) (*course.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, CourseConfigError(path, err)
	}

	var res course.Course
	if err = yaml.Unmarshal(data, &res); err != nil {
		return nil, CourseConfigError(path, err)
	}

	if err = res.Validate(); err != nil {
		if errors.Is(err, course.ErrZeroTotal) {
			return nil, ZeroTotalError(path, err)
		}
		return nil, CourseValidationError(path, err)
	}

	for _, w := range res.Warnings {
		slog.Warn("Course policy", "field", w.Field, "warning", w.Message)
		gn.Warn("<em>%s</em>: %s", w.Field, w.Message)
	}

	slog.Info("Loaded course policy",
		"path", path,
		"title", res.Title,
		"categories", len(res.Categories),
		"max_points", res.Total(),
	)
	return &res, nil
}
