package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/trellis-framework/skills/internal/errors"
	"github.com/trellis-framework/skills/internal/skill"
	"github.com/trellis-framework/skills/pkg/fileutil"
	"github.com/trellis-framework/skills/pkg/frontmatter"
)

var (
	initDescription string
	initDir         string
	initForce       bool
)

func init() {
	initCmd.Flags().StringVarP(&initDescription, "description", "d", "",
		"skill description for the frontmatter")
	initCmd.Flags().StringVar(&initDir, "dir", "skills",
		"payload directory to create the skill in")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"overwrite an existing SKILL.md")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <name>",
	Short: "Scaffold a new payload skill",
	Long: `Create a new skill directory in the payload with a scaffolded
SKILL.md. The name must be lowercase alphanumeric with single hyphens
between segments.`,
	Example: `  # Scaffold skills/error-handling/SKILL.md
  trellis-skills init error-handling -d "Error handling patterns"

  # Scaffold into a different payload directory
  trellis-skills init error-handling --dir ./my-skills`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

// skillScaffold is the frontmatter for a freshly scaffolded skill.
type skillScaffold struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

const scaffoldBody = `# Instructions

Teach the assistant the pattern this skill covers.

## When to apply

- Situation 1
- Situation 2

## Pattern

Describe the convention with a short example.
`

func runInit(c *cobra.Command, args []string) error {
	name := args[0]
	if err := skill.ValidateName(name); err != nil {
		return errors.NewUserError(err, "Names look like: routing-conventions")
	}

	description := initDescription
	if description == "" {
		description = fmt.Sprintf("Trellis %s patterns", name)
	}

	skillDir := filepath.Join(initDir, name)
	skillFile := filepath.Join(skillDir, skill.MetadataFile)

	if _, err := os.Stat(skillFile); err == nil && !initForce {
		return errors.NewUserError(
			errors.Newf("%s already exists", skillFile),
			"Use --force to overwrite")
	}

	if err := os.MkdirAll(skillDir, 0o755); err != nil {
		return errors.Wrap(err, "creating skill directory")
	}

	content, err := frontmatter.Format(skillScaffold{
		Name:        name,
		Description: description,
	}, scaffoldBody)
	if err != nil {
		return errors.Wrap(err, "generating SKILL.md")
	}

	if err := fileutil.AtomicWriteFile(skillFile, content, 0o644); err != nil {
		return errors.Wrap(err, "writing SKILL.md")
	}

	out := c.OutOrStdout()
	fmt.Fprintf(out, "✓ Skill %q created at %s\n", name, skillFile)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  Next steps:")
	fmt.Fprintf(out, "    1. Edit %s with the pattern's instructions\n", skillFile)
	fmt.Fprintf(out, "    2. Run: trellis-skills validate %s\n", initDir)
	fmt.Fprintln(out, "    3. Run: trellis-skills install")

	return nil
}
