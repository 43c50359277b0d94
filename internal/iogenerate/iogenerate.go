// Package iogenerate writes synthetic roster, homework and LMS exports
// into the data directory.
package iogenerate

import (
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gngrades/internal/iofs"
	"github.com/gnames/gngrades/internal/iotable"
	"github.com/gnames/gngrades/pkg/config"
	"github.com/gnames/gngrades/pkg/generate"
	"github.com/gnames/gngrades/pkg/table"
	"github.com/gocarina/gocsv"
)

// Generator creates fixture files according to the configuration.
type Generator struct {
	cfg  *config.Config
	seed uint64
}

// New creates a Generator. When the configured seed is zero, a seed from
// the current time is used and logged, so the run can be repeated.
func New(cfg *config.Config) *Generator {
	seed := cfg.Generate.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{cfg: cfg, seed: seed}
}

// Seed returns the seed used by the generator.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Generate writes the roster, homework and LMS files. Identities are
// created once and reused by both score exports.
func (g *Generator) Generate() error {
	start := time.Now()
	gc := g.cfg.Generate
	dir := g.cfg.Paths.DataDir
	if err := iofs.EnsureDataDir(dir); err != nil {
		return err
	}

	slog.Info("Generating data",
		"students", gc.Students,
		"units", gc.Units,
		"midterms", gc.Midterms,
		"seed", g.seed,
	)

	r := rand.New(rand.NewPCG(g.seed, g.seed>>1))
	bar := pb.Full.Start(3)
	bar.Set("prefix", "Generating ")
	bar.Set(pb.CleanOnFinish, true)
	n, err := g.write(r, bar)
	bar.Finish()
	if err != nil {
		return err
	}

	dur := gnfmt.TimeString(time.Since(start).Seconds())
	slog.Info("Data generated", "dir", dir, "duration", dur)
	gn.Info("Generated data for <em>%s</em> students in <em>%s</em> (seed %d)",
		humanize.Comma(int64(n)), dir, g.seed)
	return nil
}

// write creates roster, homework and LMS files in this order and returns
// the number of students.
func (g *Generator) write(r *rand.Rand, bar *pb.ProgressBar) (int, error) {
	gc := g.cfg.Generate
	students, err := generate.Roster(r, gc.Students)
	if err != nil {
		return 0, GenerateParamsError(err)
	}
	if err = g.writeRoster(students); err != nil {
		return 0, err
	}
	bar.Increment()

	hw, err := generate.HomeworkTable(r, students, gc.Units)
	if err != nil {
		return 0, GenerateParamsError(err)
	}
	if err = iotable.Write(g.cfg.Path(g.cfg.Paths.Homework), hw); err != nil {
		return 0, err
	}
	bar.Increment()

	lms, err := generate.LMSTable(r, students, gc.Units, gc.Midterms, gc.Section)
	if err != nil {
		return 0, GenerateParamsError(err)
	}
	if err = iotable.Write(g.cfg.Path(g.cfg.Paths.LMS), lms); err != nil {
		return 0, err
	}
	bar.Increment()
	return len(students), nil
}

// writeRoster keeps the fixed roster schema. CSV rosters are written
// from records, other formats through a table.
func (g *Generator) writeRoster(students []generate.Student) error {
	path := g.cfg.Path(g.cfg.Paths.Roster)
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return iotable.Write(path, rosterTable(students))
	}

	f, err := os.Create(path)
	if err != nil {
		return iotable.WriteTableError(path, err)
	}
	if err = gocsv.MarshalFile(&students, f); err != nil {
		f.Close()
		return iotable.WriteTableError(path, err)
	}
	if err = f.Close(); err != nil {
		return iotable.WriteTableError(path, err)
	}
	slog.Info("Wrote table", "path", path, "format", "csv", "rows", len(students))
	return nil
}

func rosterTable(students []generate.Student) table.Table {
	header := []string{
		"Student Name", "Student ID", "Academic Program", "Preferred Email",
	}
	recs := make([][]string, len(students))
	for i, s := range students {
		recs[i] = []string{
			s.Name, strconv.Itoa(s.ID), s.Program, s.Email,
		}
	}
	res, _ := table.FromRecords(header, recs)
	return res
}
