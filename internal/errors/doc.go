// Package errors provides error handling conventions for the trellis-skills CLI.
//
// The package re-exports the wrapping helpers from
// github.com/cockroachdb/errors so that callers need a single errors
// import, and defines an ExitError type that carries the process exit
// code from the failure site to main.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (missing payload, invalid input, etc.)
//   - ExitSystem (2): System-related error (I/O, network, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. main unwraps it with [As]:
//
//	err := skillserrors.NewUserError(err, "Run: trellis-skills doctor")
//	var exitErr *skillserrors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
