package commands

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/trellis-framework/skills/internal/config"
	"github.com/trellis-framework/skills/internal/doctor"
	"github.com/trellis-framework/skills/internal/errors"
	"github.com/trellis-framework/skills/internal/paths"
	"github.com/trellis-framework/skills/internal/payload"
)

var doctorJSON bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output in JSON format")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment for problems",
	Long: `Run diagnostic checks: the payload is present and non-empty, the
manifest parses, git is available for the remote installer, the home
directory resolves, and the destination roots are writable.`,
	Example: `  trellis-skills doctor
  trellis-skills doctor --json`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(c *cobra.Command, _ []string) error {
	// Payload checks run against whatever source install would use.
	payloadDir, cleanup, err := payload.NewLocalSource(config.Source()).Resolve()
	defer cleanup()
	if err != nil {
		// Doctor still reports the rest; the payload check reports the miss.
		payloadDir = payload.DirName
	}

	runner := doctor.NewRunner()
	runner.AddCheck(&doctor.PayloadCheck{Dir: payloadDir})
	runner.AddCheck(&doctor.ManifestCheck{Dir: payloadDir})
	runner.AddCheck(&doctor.GitCheck{})
	runner.AddCheck(&doctor.HomeCheck{})
	runner.AddCheck(&doctor.DestWritableCheck{Scope: paths.ScopeProject})
	runner.AddCheck(&doctor.DestWritableCheck{Scope: paths.ScopeGlobal})

	report := runner.Run()

	if doctorJSON {
		encoder := json.NewEncoder(c.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return errors.Wrap(err, "encoding report")
		}
	} else {
		printReport(c, report)
	}

	if report.HasErrors() {
		return errors.NewExitError(errors.New("doctor found problems"), errors.ExitUser)
	}
	return nil
}

func printReport(c *cobra.Command, report *doctor.Report) {
	out := c.OutOrStdout()

	for _, result := range report.Results {
		var mark string
		switch result.Status {
		case doctor.SeverityPass:
			mark = color.GreenString("✓")
		case doctor.SeverityInfo:
			mark = color.CyanString("i")
		case doctor.SeverityWarning:
			mark = color.YellowString("!")
		default:
			mark = color.RedString("✗")
		}
		fmt.Fprintf(out, "%s [%s] %s\n", mark, result.Category, result.Message)
		if result.FixHint != "" {
			fmt.Fprintf(out, "    hint: %s\n", result.FixHint)
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d passed, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Warnings, report.Summary.Errors)
}
