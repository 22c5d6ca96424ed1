package commands

import (
	"github.com/spf13/cobra"

	"github.com/trellis-framework/skills/internal/config"
	"github.com/trellis-framework/skills/internal/installer"
	"github.com/trellis-framework/skills/internal/paths"
	"github.com/trellis-framework/skills/internal/payload"
)

var (
	installGlobal bool
	installSource string
	installDryRun bool
	installBackup bool
)

func init() {
	installCmd.Flags().BoolVarP(&installGlobal, "global", "g", false,
		"install to ~/.claude/skills instead of ./.claude/skills")
	installCmd.Flags().StringVar(&installSource, "source", "",
		"payload directory (default: ./skills, then skills/ next to the executable)")
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false,
		"show what would be installed without copying anything")
	installCmd.Flags().BoolVar(&installBackup, "backup", false,
		"snapshot replaced skills before overwriting them")
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the bundled skills",
	Long: `Install every skill from the bundled payload into the destination
root. Without --global, skills go to .claude/skills under the current
directory; with --global, to .claude/skills under your home directory.

Existing skills of the same name are fully replaced. Use --backup to
snapshot a replaced skill first.`,
	Example: `  # Install into the current project
  trellis-skills install

  # Install for every project
  trellis-skills install --global

  # Install from an explicit payload directory
  trellis-skills install --source ./my-skills

  # Preview without copying
  trellis-skills install --dry-run`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func runInstall(c *cobra.Command, _ []string) error {
	// Flags win over environment (TRELLIS_SKILLS_GLOBAL, TRELLIS_SKILLS_SOURCE).
	global := installGlobal || config.Global()
	source := installSource
	if source == "" {
		source = config.Source()
	}

	inst := installer.New(c.OutOrStdout(), installer.Options{
		Scope:  paths.ScopeFromGlobalFlag(global),
		DryRun: installDryRun,
		Backup: installBackup,
		Quiet:  quiet,
	})

	_, err := inst.Run(payload.NewLocalSource(source))
	return installer.AsExitError(err)
}
