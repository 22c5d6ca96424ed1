// Package commands implements the CLI commands for trellis-skills.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/trellis-framework/skills/cmd"
	"github.com/trellis-framework/skills/internal/config"
	"github.com/trellis-framework/skills/internal/errors"
	"github.com/trellis-framework/skills/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

func init() {
	cobra.OnInitialize(config.Init)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = cmd.String()
	rootCmd.SetVersionTemplate("trellis-skills version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "trellis-skills",
	Short: "Install Trellis Framework skills for your AI coding assistant",
	Long: `trellis-skills distributes the Trellis Framework architecture-pattern
skills and installs them where your AI coding assistant can find them:
.claude/skills in the current project, or ~/.claude/skills for all
projects.

The skill payload is bundled with this repository under skills/. Use
the install command to copy it into place, and the remaining commands
to inspect, validate, and maintain what is installed.`,
	Example: `  # Install skills into the current project
  trellis-skills install

  # Install skills for every project
  trellis-skills install --global

  # See what is installed
  trellis-skills list

  # Check the environment
  trellis-skills doctor`,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		return setupLogging(c)
	},
	Run: func(c *cobra.Command, args []string) {
		_ = c.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(c *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(
			errors.New("cannot use --quiet and --verbose together"),
			"Drop one of the two flags")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		// Flags take precedence; fall back to TRELLIS_SKILLS_DEBUG
		if v == 0 {
			v = config.Debug()
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(c.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(c.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	c.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
