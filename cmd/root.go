/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gngrades/internal/iocourse"
	"github.com/gnames/gngrades/internal/iofs"
	"github.com/gnames/gngrades/internal/iologger"
	"github.com/gnames/gngrades/internal/iopipeline"
	app "github.com/gnames/gngrades/pkg"
	"github.com/gnames/gngrades/pkg/config"
	"github.com/gnames/gngrades/pkg/course"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir   string
	cfg       *config.Config
	logCloser io.Closer
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "gngrades",
		Short:   "GNgrades builds a course gradebook from roster, homework and LMS exports",
		Long: `GNgrades merges a class roster, a publisher homework export and an LMS
export into one gradebook and computes grades from it.

Pipeline stages:
  - generate:    Create synthetic exports for demos and tests
  - merge:       Normalize and join exports into a gradebook
  - grade:       Compute final scores and letter grades
  - extrapolate: Show points still needed for each letter mid-course
  - run:         Run merge and grade in one go

Tables are read and written as CSV, XLSX or SQLite, the format is chosen
by file extension.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNGRADES_*), also read from a local .env file
  3. Config file (~/.config/gngrades/config.yaml)
  4. Built-in defaults

The grading policy (categories, points, letter thresholds, header
vocabulary) is kept in ~/.config/gngrades/course.yaml.`,
		PersistentPreRunE:  bootstrap,
		PersistentPostRunE: closeLog,
		RunE:               runRoot,
		SilenceErrors:      true,
		SilenceUsage:       true,
	}

	// Remove the automatic "gngrades version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for gngrades")

	rootCmd.PersistentFlags().StringP(
		"data-dir", "d", "",
		"directory of input and output tables",
	)
	rootCmd.PersistentFlags().StringP(
		"course", "c", "",
		"course policy file (default ~/.config/gngrades/course.yaml)",
	)

	rootCmd.AddCommand(
		getGenerateCmd(),
		getMergeCmd(),
		getGradeCmd(),
		getExtrapolateCmd(),
		getRunCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	runID := uuid.NewString()
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	logCloser, err = iologger.Init(config.LogDir(homeDir), defaultLog, runID)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err = iofs.EnsureCourseFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// .env is optional
	if err = godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		gn.Warn("Cannot read <em>.env</em> file: %s", err.Error())
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update([]config.Option{
		config.OptHomeDir(homeDir),
		config.OptRunID(runID),
	})
	cfg.Update(persistentOptions(cmd))

	// Reconfigure logging with user's settings
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"command", cmd.Name(),
		"config_file", config.ConfigFilePath(homeDir),
		"data_dir", cfg.Paths.DataDir,
	)
	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
func reconfigureLogging(cfg *config.Config) error {
	if logCloser != nil {
		_ = logCloser.Close()
	}
	var err error
	logCloser, err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log, cfg.RunID)
	return err
}

func closeLog(_ *cobra.Command, _ []string) error {
	if logCloser == nil {
		return nil
	}
	return logCloser.Close()
}

func runRoot(cmd *cobra.Command, _ []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// newPipeline loads the course policy and connects it with the
// configuration.
func newPipeline() (*iopipeline.Pipeline, *course.Course, error) {
	c, err := iocourse.Load(cfg.CoursePath())
	if err != nil {
		return nil, nil, err
	}
	return iopipeline.New(cfg, c), c, nil
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Allowed variables match the fields of config.ToOptions(),
	// i.e. persistent configuration that can be stored in config.yaml.
	v.SetEnvPrefix("GNGRADES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Paths configuration
	v.BindEnv("paths.data_dir", "GNGRADES_PATHS_DATA_DIR")
	v.BindEnv("paths.roster", "GNGRADES_PATHS_ROSTER")
	v.BindEnv("paths.homework", "GNGRADES_PATHS_HOMEWORK")
	v.BindEnv("paths.lms", "GNGRADES_PATHS_LMS")
	v.BindEnv("paths.gradebook", "GNGRADES_PATHS_GRADEBOOK")
	v.BindEnv("paths.final", "GNGRADES_PATHS_FINAL")
	v.BindEnv("paths.format", "GNGRADES_PATHS_FORMAT")
	v.BindEnv("paths.course", "GNGRADES_PATHS_COURSE")

	// Generator configuration
	v.BindEnv("generate.students", "GNGRADES_GENERATE_STUDENTS")
	v.BindEnv("generate.units", "GNGRADES_GENERATE_UNITS")
	v.BindEnv("generate.midterms", "GNGRADES_GENERATE_MIDTERMS")
	v.BindEnv("generate.seed", "GNGRADES_GENERATE_SEED")
	v.BindEnv("generate.section", "GNGRADES_GENERATE_SECTION")

	// Merge and extrapolation configuration
	v.BindEnv("merge.fill", "GNGRADES_MERGE_FILL")
	v.BindEnv("merge.strict", "GNGRADES_MERGE_STRICT")
	v.BindEnv("extrapolate.weeks", "GNGRADES_EXTRAPOLATE_WEEKS")

	// Log configuration
	v.BindEnv("log.level", "GNGRADES_LOG_LEVEL")
	v.BindEnv("log.format", "GNGRADES_LOG_FORMAT")
	v.BindEnv("log.destination", "GNGRADES_LOG_DESTINATION")

	v.AutomaticEnv()
}
