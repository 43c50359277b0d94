// Package config provides configuration management for GNgrades.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Log: level, format, destination
//   - Paths: data_dir, roster, homework, lms, gradebook, final, format, course
//   - Generate: students, units, midterms, seed, section
//   - Merge: fill, strict
//   - Extrapolate: weeks
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//   - RunID (set once at startup)
//
// # Environment Variables
//
// Use GNGRADES_ prefix with underscores for nesting:
//
//	GNGRADES_PATHS_DATA_DIR=./data
//	GNGRADES_MERGE_FILL=zero
//	GNGRADES_EXTRAPOLATE_WEEKS=4
//	GNGRADES_LOG_LEVEL=info
package config

// Config represents the complete GNgrades configuration.
type Config struct {
	// Log contains logging settings.
	Log LogConfig `mapstructure:"log" yaml:"log"`

	// Paths contains locations of input and output tables.
	Paths PathsConfig `mapstructure:"paths" yaml:"paths"`

	// Generate contains settings of the synthetic data generator.
	Generate GenerateConfig `mapstructure:"generate" yaml:"generate"`

	// Merge contains settings of the merge stage.
	Merge MergeConfig `mapstructure:"merge" yaml:"merge"`

	// Extrapolate contains settings of the mid-course projection.
	Extrapolate ExtrapolateConfig `mapstructure:"extrapolate" yaml:"extrapolate"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string

	// RunID identifies one execution in logs.
	RunID string
}

// PathsConfig keeps file names of the pipeline tables. Relative names are
// resolved against DataDir. The format of a table is decided by the file
// extension: .csv, .xlsx or .sqlite.
type PathsConfig struct {
	// DataDir is the directory of input and output tables.
	DataDir string `mapstructure:"data_dir" yaml:"data_dir"`

	// Roster is the class roster export.
	Roster string `mapstructure:"roster" yaml:"roster"`

	// Homework is the publisher homework export.
	Homework string `mapstructure:"homework" yaml:"homework"`

	// LMS is the learning management system export.
	LMS string `mapstructure:"lms" yaml:"lms"`

	// Gradebook is the merged gradebook.
	Gradebook string `mapstructure:"gradebook" yaml:"gradebook"`

	// Final is the gradebook with final grades.
	Final string `mapstructure:"final" yaml:"final"`

	// Format is the extension of timestamped extrapolation outputs.
	// Valid values: "csv", "xlsx", "sqlite".
	Format string `mapstructure:"format" yaml:"format"`

	// Course is the grading policy file. When empty, course.yaml from
	// the config directory is used.
	Course string `mapstructure:"course" yaml:"course"`
}

// GenerateConfig contains settings of the synthetic data generator.
type GenerateConfig struct {
	// Students is the number of generated students.
	Students int `mapstructure:"students" yaml:"students"`

	// Units is the number of course units with weekly assignments.
	Units int `mapstructure:"units" yaml:"units"`

	// Midterms is the number of two-part midterm exams.
	Midterms int `mapstructure:"midterms" yaml:"midterms"`

	// Seed makes generated data reproducible. Zero means a random seed.
	Seed uint64 `mapstructure:"seed" yaml:"seed"`

	// Section is the course section written into the LMS export.
	Section string `mapstructure:"section" yaml:"section"`
}

// MergeConfig contains settings of the merge stage.
type MergeConfig struct {
	// Fill decides what happens to scores that are missing after joins.
	// "zero" gives no credit, "absent" keeps them empty.
	Fill string `mapstructure:"fill" yaml:"fill"`

	// Strict turns students that appear in only some of the sources into
	// an error instead of a warning.
	Strict bool `mapstructure:"strict" yaml:"strict"`
}

// ExtrapolateConfig contains settings of the mid-course projection.
type ExtrapolateConfig struct {
	// Weeks is the number of weeks that have passed.
	Weeks int `mapstructure:"weeks" yaml:"weeks"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		Paths: PathsConfig{
			DataDir:   "data",
			Roster:    "roster.csv",
			Homework:  "homework.csv",
			LMS:       "lms.csv",
			Gradebook: "gradebook.csv",
			Final:     "final.xlsx",
			Format:    "xlsx",
		},
		Generate: GenerateConfig{
			Students: 40,
			Units:    6,
			Midterms: 2,
			Section:  "CHEM100 - 1234",
		},
		Merge: MergeConfig{
			Fill: "zero",
		},
		Extrapolate: ExtrapolateConfig{
			Weeks: 2,
		},
	}

	return res
}
