package skill

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// ReportFormat specifies the output format for validation reports.
type ReportFormat string

const (
	// ReportText produces human-readable text output.
	ReportText ReportFormat = "text"
	// ReportJSON produces machine-readable JSON output.
	ReportJSON ReportFormat = "json"
)

// Issue is one validation failure attributed to a skill.
type Issue struct {
	Skill   string `json:"skill"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

// Result aggregates validation outcomes across a payload.
type Result struct {
	Checked int     `json:"checked"`
	Issues  []Issue `json:"issues"`
}

// HasErrors reports whether any skill failed validation.
func (r *Result) HasErrors() bool {
	return len(r.Issues) > 0
}

// Add records the validation errors for one skill.
func (r *Result) Add(skillName string, errs []error) {
	r.Checked++
	for _, err := range errs {
		issue := Issue{Skill: skillName, Message: err.Error()}
		var verr *ValidationError
		if errors.As(err, &verr) {
			issue.Field = verr.Field
			issue.Message = verr.Message
			issue.Value = verr.Value
		}
		r.Issues = append(r.Issues, issue)
	}
}

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format ReportFormat
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format ReportFormat) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the validation result to the output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}

	switch r.format {
	case ReportJSON:
		return r.reportJSON(result)
	default:
		return r.reportText(result)
	}
}

func (r *Reporter) reportJSON(result *Result) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(result), "encoding JSON report")
}

func (r *Reporter) reportText(result *Result) error {
	if !result.HasErrors() {
		fmt.Fprintln(r.out, color.GreenString("✓ %d skill(s) validated", result.Checked))
		return nil
	}

	fmt.Fprintf(r.out, "Validation failed: %s\n\n",
		color.RedString("%d issue(s) across %d skill(s)", len(result.Issues), result.Checked))

	for _, issue := range result.Issues {
		fmt.Fprintf(r.out, "  • %s: ", color.CyanString(issue.Skill))
		if issue.Field != "" {
			fmt.Fprintf(r.out, "%s: ", color.RedString(issue.Field))
		}
		fmt.Fprint(r.out, issue.Message)
		if issue.Value != "" {
			fmt.Fprintf(r.out, " (got: %q)", issue.Value)
		}
		fmt.Fprintln(r.out)
	}
	fmt.Fprintln(r.out)

	return nil
}
