package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptPathsDataDir sets the directory of input and output tables.
func OptPathsDataDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Paths DataDir", s) {
			c.Paths.DataDir = s
		}
	}
}

// OptPathsRoster sets the file name of the class roster.
func OptPathsRoster(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidTable("Paths Roster", s) {
			c.Paths.Roster = s
		}
	}
}

// OptPathsHomework sets the file name of the homework export.
func OptPathsHomework(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidTable("Paths Homework", s) {
			c.Paths.Homework = s
		}
	}
}

// OptPathsLMS sets the file name of the LMS export.
func OptPathsLMS(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidTable("Paths LMS", s) {
			c.Paths.LMS = s
		}
	}
}

// OptPathsGradebook sets the file name of the merged gradebook.
func OptPathsGradebook(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidTable("Paths Gradebook", s) {
			c.Paths.Gradebook = s
		}
	}
}

// OptPathsFinal sets the file name of the final grades table.
func OptPathsFinal(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidTable("Paths Final", s) {
			c.Paths.Final = s
		}
	}
}

// OptPathsFormat sets the format of timestamped extrapolation outputs.
// Valid values: "csv", "xlsx", "sqlite".
func OptPathsFormat(s string) Option {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	return func(c *Config) {
		if isValidEnum("Paths.Format", s) {
			c.Paths.Format = s
		}
	}
}

// OptPathsCourse sets the grading policy file.
func OptPathsCourse(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Paths Course", s) {
			c.Paths.Course = s
		}
	}
}

// OptGenerateStudents sets the number of generated students.
func OptGenerateStudents(i int) Option {
	return func(c *Config) {
		if isValidInt("Generate Students", i) {
			c.Generate.Students = i
		}
	}
}

// OptGenerateUnits sets the number of generated course units.
func OptGenerateUnits(i int) Option {
	return func(c *Config) {
		if isValidInt("Generate Units", i) {
			c.Generate.Units = i
		}
	}
}

// OptGenerateMidterms sets the number of generated midterm exams.
func OptGenerateMidterms(i int) Option {
	return func(c *Config) {
		if isValidInt("Generate Midterms", i) {
			c.Generate.Midterms = i
		}
	}
}

// OptGenerateSeed sets the seed of the random generator.
// Zero means that a random seed is used.
func OptGenerateSeed(i uint64) Option {
	return func(c *Config) {
		c.Generate.Seed = i
	}
}

// OptGenerateSection sets the course section of generated LMS data.
func OptGenerateSection(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Generate Section", s) {
			c.Generate.Section = s
		}
	}
}

// OptMergeFill sets the policy for scores missing after joins.
// Valid values: "zero", "absent".
func OptMergeFill(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Merge.Fill", s) {
			c.Merge.Fill = s
		}
	}
}

// OptMergeStrict sets whether unmatched students fail the merge.
func OptMergeStrict(b bool) Option {
	return func(c *Config) {
		c.Merge.Strict = b
	}
}

// OptExtrapolateWeeks sets the number of weeks that have passed.
func OptExtrapolateWeeks(i int) Option {
	return func(c *Config) {
		if isValidInt("Extrapolate Weeks", i) {
			c.Extrapolate.Weeks = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}

// OptRunID sets the identifier of the current execution.
// Runtime-only field - not in ToOptions().
func OptRunID(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Run ID", s) {
			c.RunID = s
		}
	}
}
