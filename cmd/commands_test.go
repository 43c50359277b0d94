package cmd

import (
	"testing"

	"github.com/gnames/gngrades/pkg/config"
	"github.com/gnames/gngrades/pkg/course"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubcommands(t *testing.T) {
	tests := []struct {
		name  string
		cmd   func() *cobra.Command
		flags []string
	}{
		{"generate", getGenerateCmd,
			[]string{"students", "units", "midterms", "seed", "section"}},
		{"merge", getMergeCmd, []string{"fill", "strict"}},
		{"grade", getGradeCmd, []string{"quiet"}},
		{"extrapolate", getExtrapolateCmd, []string{"weeks", "format", "quiet"}},
		{"run", getRunCmd, []string{"generate", "fill", "strict", "quiet"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.cmd()
			require.NotNil(t, cmd)
			assert.Equal(t, tt.name, cmd.Use)
			assert.NotEmpty(t, cmd.Short)
			assert.Contains(t, cmd.Long, "Examples")
			assert.NotNil(t, cmd.RunE)
			for _, f := range tt.flags {
				assert.NotNil(t, cmd.Flags().Lookup(f), f)
			}
		})
	}
}

func TestMergeOptions(t *testing.T) {
	cmd := getMergeCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--fill", "absent"}))

	c := config.New()
	c.Update(mergeOptions(cmd, "absent", false))
	assert.Equal(t, "absent", c.Merge.Fill)
	assert.False(t, c.Merge.Strict, "unchanged flag keeps config value")

	cmd = getMergeCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--strict"}))
	c = config.New()
	c.Update(mergeOptions(cmd, "", true))
	assert.Equal(t, "zero", c.Merge.Fill)
	assert.True(t, c.Merge.Strict)
}

func TestPersistentOptions(t *testing.T) {
	root := getRootCmd()
	merge, _, err := root.Find([]string{"merge"})
	require.NoError(t, err)
	require.NoError(t, root.ParseFlags([]string{"-d", "/tmp/fall", "-c", "bio.yaml"}))

	c := config.New()
	c.Update(persistentOptions(root))
	assert.Equal(t, "/tmp/fall", c.Paths.DataDir)
	assert.Equal(t, "bio.yaml", c.Paths.Course)

	c = config.New()
	c.Update(persistentOptions(merge))
	assert.Equal(t, "data", c.Paths.DataDir, "flags were not set")
}

func TestLetters(t *testing.T) {
	c := course.Default()
	assert.Equal(t, []string{"A", "B", "C", "D", "F"}, letters(c))
}
