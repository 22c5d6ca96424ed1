package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/trellis-framework/skills/internal/errors"
	"github.com/trellis-framework/skills/internal/paths"
	"github.com/trellis-framework/skills/internal/skill"
)

var (
	listGlobal bool
	listJSON   bool
)

func init() {
	listCmd.Flags().BoolVarP(&listGlobal, "global", "g", false,
		"list skills installed under ~/.claude/skills")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed skills",
	Long: `List the skills installed at the chosen scope. Without --global the
project-local destination is inspected; with --global, the user-global
one.`,
	Example: `  # Skills installed in the current project
  trellis-skills list

  # Skills installed for every project
  trellis-skills list --global

  # Machine-readable output
  trellis-skills list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// listedSkill is the JSON shape for one installed skill.
type listedSkill struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func runList(c *cobra.Command, _ []string) error {
	scope := paths.ScopeFromGlobalFlag(listGlobal)
	destRoot, err := paths.SkillsDir(scope)
	if err != nil {
		return err
	}

	skills, err := skill.Discover(destRoot)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, skill.ErrNoSkills) {
			if listJSON {
				fmt.Fprintln(c.OutOrStdout(), "[]")
				return nil
			}
			fmt.Fprintf(c.OutOrStdout(), "No skills installed at %s\n", destRoot)
			return nil
		}
		return errors.Wrap(err, "listing installed skills")
	}

	if listJSON {
		out := make([]listedSkill, 0, len(skills))
		for _, s := range skills {
			out = append(out, listedSkill{Name: s.Name, Description: s.Description})
		}
		encoder := json.NewEncoder(c.OutOrStdout())
		encoder.SetIndent("", "  ")
		return errors.Wrap(encoder.Encode(out), "encoding skill list")
	}

	fmt.Fprintf(c.OutOrStdout(), "Skills installed at %s:\n\n", destRoot)
	w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, s := range skills {
		fmt.Fprintf(w, "%s\t%s\n", s.Name, truncate(s.Description, 72))
	}
	return errors.Wrap(w.Flush(), "flushing output")
}

// truncate shortens s to at most n runes, appending an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
