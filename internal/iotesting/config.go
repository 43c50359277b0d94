// Package iotesting provides shared fixtures for tests that work with
// files. This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gngrades/internal/iogenerate"
	"github.com/gnames/gngrades/pkg/config"
)

// TestSeed makes generated fixtures identical between runs.
const TestSeed = 7

// GetTestConfig returns a configuration with a temporary data directory.
// The seed of generated data is fixed. Options are applied on top of the
// test defaults.
func GetTestConfig(t *testing.T, students int, opts ...config.Option) *config.Config {
	t.Helper()

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptPathsDataDir(t.TempDir()),
		config.OptGenerateStudents(students),
		config.OptGenerateSeed(TestSeed),
		config.OptLogDestination("stderr"),
	})
	cfg.Update(opts)
	return cfg
}

// SetupData generates roster, homework and LMS exports in the data
// directory of a test configuration.
//
// Usage:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("skipping test that uses file system in short mode")
//	    }
//	    cfg := iotesting.SetupData(t, 10)
//	    // ... exports are in cfg.Paths.DataDir
//	}
func SetupData(t *testing.T, students int, opts ...config.Option) *config.Config {
	t.Helper()

	cfg := GetTestConfig(t, students, opts...)
	if err := iogenerate.New(cfg).Generate(); err != nil {
		t.Fatalf("Failed to generate test data: %v", err)
	}
	return cfg
}

// WriteTempFile writes content into the data directory and returns the
// path of the file.
func WriteTempFile(t *testing.T, cfg *config.Config, name, content string) string {
	t.Helper()

	path := filepath.Join(cfg.Paths.DataDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}
