package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/trellis-framework/skills/internal/errors"
	"github.com/trellis-framework/skills/internal/paths"
	"github.com/trellis-framework/skills/internal/skill"
)

var (
	removeGlobal bool
	removeForce  bool
)

func init() {
	removeCmd.Flags().BoolVarP(&removeGlobal, "global", "g", false,
		"remove from ~/.claude/skills instead of ./.claude/skills")
	removeCmd.Flags().BoolVar(&removeForce, "force", false, "skip confirmation prompt")
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove an installed skill",
	Long: `Remove one installed skill from the chosen scope. A confirmation
prompt is shown unless --force is used.

With no name and an interactive terminal, a fuzzy picker lists the
installed skills to choose from.`,
	Example: `  # Remove a skill from the current project (with confirmation)
  trellis-skills remove routing-conventions

  # Remove without confirmation
  trellis-skills remove routing-conventions --force

  # Pick interactively
  trellis-skills remove`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemove,
}

func runRemove(c *cobra.Command, args []string) error {
	return runRemoveWithIO(args, c.OutOrStdout(), os.Stdin)
}

// runRemoveWithIO allows injecting reader/writer for testing.
func runRemoveWithIO(args []string, w io.Writer, r io.Reader) error {
	scope := paths.ScopeFromGlobalFlag(removeGlobal)
	destRoot, err := paths.SkillsDir(scope)
	if err != nil {
		return err
	}

	skills, err := skill.Discover(destRoot)
	if err != nil {
		return errors.NewUserError(
			errors.Newf("no skills installed at %s", destRoot),
			"Run: trellis-skills install")
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	} else {
		name, err = pickSkill(skills)
		if err != nil {
			return err
		}
		if name == "" {
			// Picker aborted.
			return nil
		}
	}

	target := filepath.Join(destRoot, name)
	if _, err := os.Stat(target); os.IsNotExist(err) {
		return errors.Newf("skill %q is not installed at %s", name, destRoot)
	}

	if !removeForce {
		if !confirmRemoval(w, r, name, destRoot) {
			fmt.Fprintln(w, "Removal cancelled")
			return nil
		}
	}

	if err := os.RemoveAll(target); err != nil {
		return errors.NewSystemError(
			errors.Wrapf(err, "removing skill %q", name), "")
	}

	fmt.Fprintf(w, "✓ Skill %q removed from %s\n", name, destRoot)
	return nil
}

// pickSkill runs the interactive fuzzy picker.
// Returns "" when the user aborts.
func pickSkill(skills []skill.Skill) (string, error) {
	idx, err := fuzzyfinder.Find(
		skills,
		func(i int) string {
			return skills[i].Name
		},
		fuzzyfinder.WithPreviewWindow(func(i, width, height int) string {
			if i == -1 {
				return ""
			}
			return fmt.Sprintf("Name: %s\n\nDescription:\n%s",
				skills[i].Name, skills[i].Description)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "selecting skill")
	}
	return skills[idx].Name, nil
}

// confirmRemoval prompts the user to confirm skill removal.
// Returns true only if the user enters "y" or "yes" (case-insensitive).
func confirmRemoval(w io.Writer, r io.Reader, name, destRoot string) bool {
	fmt.Fprintf(w, "Remove skill %q from %s\n", name, destRoot)
	fmt.Fprint(w, "Continue? [y/N]: ")

	reader := bufio.NewReader(r)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
