// Package iopipeline runs the merge, grading and extrapolation stages on
// the files named in the configuration.
package iopipeline

import (
	"errors"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gngrades/internal/ioload"
	"github.com/gnames/gngrades/internal/iotable"
	"github.com/gnames/gngrades/pkg/config"
	"github.com/gnames/gngrades/pkg/course"
	"github.com/gnames/gngrades/pkg/grade"
	"github.com/gnames/gngrades/pkg/merge"
	"github.com/gnames/gngrades/pkg/table"
)

// ScoresPrefix starts names of extrapolation outputs.
const ScoresPrefix = "scores"

// Pipeline connects loaders, calculators and writers.
type Pipeline struct {
	cfg    *config.Config
	course *course.Course
}

// New creates a Pipeline for a configuration and a course policy.
func New(cfg *config.Config, c *course.Course) *Pipeline {
	return &Pipeline{cfg: cfg, course: c}
}

// Merge loads the roster, LMS and homework exports, joins them and saves
// the gradebook. Students missing from some of the sources are reported,
// in strict mode they stop the run.
func (p *Pipeline) Merge() (table.Table, error) {
	start := time.Now()
	in, err := ioload.Sources(p.cfg, p.course)
	if err != nil {
		return table.Table{}, err
	}

	policy, err := merge.NewPolicy(p.cfg.Merge.Fill)
	if err != nil {
		return table.Table{}, MergeError(err)
	}
	res, reps, err := merge.Gradebook(in, policy)
	if errors.Is(err, merge.ErrDuplicateKey) {
		return table.Table{}, DuplicateKeyError(err)
	}
	if err != nil {
		return table.Table{}, MergeError(err)
	}

	var mismatched int
	for _, rep := range reps {
		mismatched += rep.Mismatched()
		warnUnmatched(rep)
	}
	if mismatched > 0 && p.cfg.Merge.Strict {
		return table.Table{}, JoinKeyMismatchError(mismatched)
	}
	if res.Len() == 0 {
		return table.Table{}, EmptyJoinError()
	}

	path := p.cfg.Path(p.cfg.Paths.Gradebook)
	if err = iotable.Write(path, res); err != nil {
		return table.Table{}, err
	}

	dur := gnfmt.TimeString(time.Since(start).Seconds())
	slog.Info("Merge complete",
		"students", res.Len(),
		"columns", res.Width(),
		"fill", policy.String(),
		"unmatched", mismatched,
		"duration", dur,
	)
	gn.Info("Merged <em>%s</em> students into <em>%s</em> in %s",
		humanize.Comma(int64(res.Len())), path, dur)
	return res, nil
}

// Grade computes final grades of the saved gradebook and writes them.
func (p *Pipeline) Grade() (table.Table, error) {
	gb, err := ioload.Gradebook(p.cfg.Path(p.cfg.Paths.Gradebook), p.course)
	if err != nil {
		return table.Table{}, err
	}

	res, err := grade.Final(gb, p.course)
	if err != nil {
		return table.Table{}, gradeError(err)
	}

	path := p.cfg.Path(p.cfg.Paths.Final)
	if err = iotable.Write(path, res); err != nil {
		return table.Table{}, err
	}
	gn.Info("Final grades of <em>%s</em> students saved to <em>%s</em>",
		humanize.Comma(int64(res.Len())), path)
	return res, nil
}

// Extrapolate projects the saved gradebook after the configured number
// of weeks and writes the result into a file named after the current
// time. It returns the result and the path of the file.
func (p *Pipeline) Extrapolate(now time.Time) (table.Table, string, error) {
	weeks := p.cfg.Extrapolate.Weeks
	if weeks > p.course.Weeks {
		return table.Table{}, "", ElapsedWeeksError(weeks, p.course.Weeks)
	}

	gb, err := ioload.Gradebook(p.cfg.Path(p.cfg.Paths.Gradebook), p.course)
	if err != nil {
		return table.Table{}, "", err
	}

	res, err := grade.Extrapolate(gb, p.course, weeks)
	if err != nil {
		return table.Table{}, "", gradeError(err)
	}

	name := iotable.TimestampedName(ScoresPrefix, now, p.cfg.Paths.Format)
	path := p.cfg.Path(name)
	if err = iotable.Write(path, res); err != nil {
		return table.Table{}, "", err
	}
	slog.Info("Extrapolation complete", "weeks", weeks, "path", path)
	gn.Info("Projection after <em>%d</em> of %d weeks saved to <em>%s</em>",
		weeks, p.course.Weeks, path)
	return res, path, nil
}

func warnUnmatched(rep merge.Report) {
	if rep.Mismatched() == 0 {
		return
	}
	slog.Warn("Unmatched students",
		"left", rep.Left,
		"right", rep.Right,
		"matched", rep.Matched,
		"left_only", rep.LeftOnly,
		"right_only", rep.RightOnly,
	)
	if n := len(rep.LeftOnly); n > 0 {
		gn.Warn("<em>%s</em> students from %s are not in %s",
			humanize.Comma(int64(n)), rep.Left, rep.Right)
	}
	if n := len(rep.RightOnly); n > 0 {
		gn.Warn("<em>%s</em> students from %s are not in %s",
			humanize.Comma(int64(n)), rep.Right, rep.Left)
	}
}

func gradeError(err error) error {
	if errors.Is(err, grade.ErrZeroDenominator) {
		return ZeroDenominatorError(err)
	}
	return MergeError(err)
}
