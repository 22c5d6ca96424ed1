// Package main is the standalone remote installer: it shallow-clones the
// Trellis skills distribution repository and installs the payload without
// requiring a local checkout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trellis-framework/skills/cmd"
	skillserrors "github.com/trellis-framework/skills/internal/errors"
	"github.com/trellis-framework/skills/internal/installer"
	"github.com/trellis-framework/skills/internal/paths"
	"github.com/trellis-framework/skills/internal/payload"
)

var global bool

var rootCmd = &cobra.Command{
	Use:   "trellis-skills-remote",
	Short: "Install Trellis Framework skills straight from the repository",
	Long: `trellis-skills-remote fetches the latest Trellis Framework skills by
shallow-cloning the distribution repository into a temporary directory
and installing the payload from it. The temporary directory is removed
when the run ends, whether it succeeds or fails.

The repository URL is fixed: ` + payload.DefaultRepoURL,
	Example: `  # Install the latest skills into the current project
  trellis-skills-remote

  # Install for every project
  trellis-skills-remote --global`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(c *cobra.Command, _ []string) error {
		inst := installer.New(c.OutOrStdout(), installer.Options{
			Scope: paths.ScopeFromGlobalFlag(global),
		})
		_, err := inst.Run(payload.NewGitSource(payload.DefaultRepoURL))
		return installer.AsExitError(err)
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&global, "global", "g", false,
		"install to ~/.claude/skills instead of ./.claude/skills")
	rootCmd.Version = cmd.String()
	rootCmd.SetVersionTemplate("trellis-skills-remote version {{.Version}}\n")
}

func main() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)

	var exitErr *skillserrors.ExitError
	if skillserrors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
	}
	os.Exit(skillserrors.ExitCode(err))
}
