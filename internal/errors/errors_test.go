package errors

import (
	stderrors "errors"
	"testing"
)

func TestExitErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{"wraps underlying message", NewExitError(New("payload missing"), ExitUser), "payload missing"},
		{"nil underlying error", NewExitError(nil, ExitSystem), "exit code 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	sentinel := New("no skills found")
	err := NewUserError(Wrap(sentinel, "installing"), "check the payload directory")

	if !stderrors.Is(err, sentinel) {
		t.Error("errors.Is should find the sentinel through the ExitError chain")
	}

	var exitErr *ExitError
	if !stderrors.As(err, &exitErr) {
		t.Fatal("errors.As should extract *ExitError")
	}
	if exitErr.Code != ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitUser)
	}
	if exitErr.Suggestion != "check the payload directory" {
		t.Errorf("Suggestion = %q", exitErr.Suggestion)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"plain error defaults to user", New("boom"), ExitUser},
		{"system exit error", NewSystemError(New("disk full"), ""), ExitSystem},
		{"wrapped exit error", Wrap(NewUserError(New("bad flag"), ""), "running command"), ExitUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
