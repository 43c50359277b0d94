package cmd

import (
	"fmt"
	"os"

	app "github.com/gnames/gngrades/pkg"
	"github.com/gnames/gngrades/pkg/config"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", app.Version, app.Build)
		os.Exit(0)
	}
}

// persistentOptions converts root flags that were set explicitly into
// config options.
func persistentOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		s, _ := flags.GetString("data-dir")
		res = append(res, config.OptPathsDataDir(s))
	}
	if flags.Changed("course") {
		s, _ := flags.GetString("course")
		res = append(res, config.OptPathsCourse(s))
	}
	return res
}

// quietFlag adds the flag that suppresses the terminal summary.
func quietFlag(cmd *cobra.Command, quiet *bool) {
	cmd.Flags().BoolVarP(
		quiet, "quiet", "q", false,
		"do not print the result table",
	)
}
