// Package gngrades keeps version information of the application.
package gngrades

var (
	// Version of the application, set during build.
	Version = "v0.1.0"

	// Build timestamp, set during build.
	Build = "n/a"
)
