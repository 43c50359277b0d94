// Package main provides the gngrades CLI application.
package main

import "github.com/gnames/gngrades/cmd"

func main() {
	cmd.Execute()
}
