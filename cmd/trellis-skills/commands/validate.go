package commands

import (
	"github.com/spf13/cobra"

	"github.com/trellis-framework/skills/internal/errors"
	"github.com/trellis-framework/skills/internal/payload"
	"github.com/trellis-framework/skills/internal/skill"
)

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate the payload skills",
	Long: `Validate every skill in the payload directory: each must carry a
SKILL.md with well-formed frontmatter, a name matching its directory,
and a description.

Without an argument, the bundled payload is validated.`,
	Example: `  # Validate the bundled payload
  trellis-skills validate

  # Validate another payload directory
  trellis-skills validate ./my-skills

  # Machine-readable report
  trellis-skills validate --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

// errValidationFailed signals a non-zero exit after the report is printed.
var errValidationFailed = errors.New("validation failed")

func runValidate(c *cobra.Command, args []string) error {
	var dir string
	if len(args) > 0 {
		dir = args[0]
	}

	payloadDir, cleanup, err := payload.NewLocalSource(dir).Resolve()
	defer cleanup()
	if err != nil {
		return err
	}

	skills, err := skill.Discover(payloadDir)
	if err != nil {
		return err
	}

	result := &skill.Result{}
	for _, s := range skills {
		result.Add(s.Name, skill.ValidateDir(s.Dir))
	}

	format := skill.ReportText
	if validateJSON {
		format = skill.ReportJSON
	}
	if err := skill.NewReporter(c.OutOrStdout(), format).Report(result); err != nil {
		return err
	}

	if result.HasErrors() {
		return errors.NewExitError(errValidationFailed, errors.ExitUser)
	}
	return nil
}
