package skill

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/trellis-framework/skills/pkg/fileutil"
	"github.com/trellis-framework/skills/pkg/frontmatter"
)

const (
	// maxNameLength is the maximum allowed length for skill names.
	maxNameLength = 64

	// maxDescriptionLength caps the frontmatter description.
	maxDescriptionLength = 1024
)

// nameRegex validates skill names: lowercase alphanumeric, single hyphens
// between segments, no start/end hyphen, no consecutive hyphens.
var nameRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidationError represents a validation failure for a specific field.
type ValidationError struct {
	Field   string
	Message string
	Value   string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s %q: %s", e.Field, e.Value, e.Message)
}

// ValidateName checks that a skill name conforms to the naming rules.
func ValidateName(name string) error {
	if name == "" {
		return &ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) > maxNameLength {
		return &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("name exceeds maximum length of %d characters", maxNameLength),
			Value:   name,
		}
	}
	if !nameRegex.MatchString(name) {
		msg := "name must be lowercase alphanumeric with single hyphens between segments"
		switch {
		case strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-"):
			msg = "name cannot start or end with a hyphen"
		case strings.Contains(name, "--"):
			msg = "name cannot contain consecutive hyphens"
		case strings.ToLower(name) != name:
			msg = "name must be lowercase"
		}
		return &ValidationError{Field: "name", Message: msg, Value: name}
	}
	return nil
}

// ValidateDir validates one payload skill directory:
// SKILL.md must exist with well-formed frontmatter, the frontmatter name
// must match the directory name and conform to the naming rules, and the
// description must be present and within bounds.
// Returns a slice of validation errors, or nil if valid.
func ValidateDir(dir string) []error {
	var errs []error

	dirName := filepath.Base(dir)
	if err := ValidateName(dirName); err != nil {
		errs = append(errs, err)
	}

	data, err := fileutil.ReadFileWithLimit(filepath.Join(dir, MetadataFile))
	if err != nil {
		msg := "file is missing or unreadable"
		if errors.Is(err, fileutil.ErrFileTooLarge) {
			msg = fmt.Sprintf("file exceeds %d bytes", fileutil.MaxFileSize)
		}
		errs = append(errs, &ValidationError{
			Field:   MetadataFile,
			Message: msg,
			Value:   dir,
		})
		return errs
	}

	var meta metadata
	if _, err := frontmatter.MustParse(bytes.NewReader(data), &meta); err != nil {
		errs = append(errs, &ValidationError{
			Field:   MetadataFile,
			Message: err.Error(),
		})
		return errs
	}

	if meta.Name != dirName {
		errs = append(errs, &ValidationError{
			Field:   "name",
			Message: fmt.Sprintf("skill name must match directory name %q", dirName),
			Value:   meta.Name,
		})
	}

	if meta.Description == "" || strings.TrimSpace(meta.Description) == "" {
		errs = append(errs, &ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	} else if len(meta.Description) > maxDescriptionLength {
		errs = append(errs, &ValidationError{
			Field:   "description",
			Message: fmt.Sprintf("description exceeds maximum length of %d characters", maxDescriptionLength),
		})
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
