package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gngrades"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gngrades by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gngrades/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gngrades/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// CourseFilePath returns the full path to the default course.yaml file.
// Returns ~/.config/gngrades/course.yaml by default.
func CourseFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "course.yaml")
}

// Path resolves a table name against the data directory. Absolute names
// are returned as is.
func (c *Config) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Paths.DataDir, name)
}

// CoursePath returns the course policy file in use.
func (c *Config) CoursePath() string {
	if c.Paths.Course != "" {
		return c.Paths.Course
	}
	return CourseFilePath(c.HomeDir)
}
