// Package cmd carries the build identification shared by the
// trellis-skills binaries.
package cmd

import "fmt"

// Stamped by the release build:
//
//	go build -ldflags "-X github.com/trellis-framework/skills/cmd.Version=v1.2.3 ..."
var (
	// Version is the release version.
	Version = "dev"
	// Commit is the git revision the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// String renders the full build identification on one line, as shown by
// the --version flag of both binaries.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
