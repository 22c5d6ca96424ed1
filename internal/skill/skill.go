// Package skill enumerates and validates skill directories in a payload.
package skill

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/trellis-framework/skills/pkg/fileutil"
	"github.com/trellis-framework/skills/pkg/frontmatter"
)

// MetadataFile is the documentation file each skill directory carries.
const MetadataFile = "SKILL.md"

// ErrNoSkills indicates the payload source exists but contains no skill directories.
var ErrNoSkills = errors.New("no skills found in payload")

// Skill is one installable documentation unit.
type Skill struct {
	// Name is the skill's directory name, its identity.
	Name string

	// Dir is the absolute path of the skill directory in the payload.
	Dir string

	// Description comes from SKILL.md frontmatter, when present.
	Description string
}

// metadata is the SKILL.md frontmatter shape.
type metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Discover enumerates the skill directories under dir, sorted by name.
// Every subdirectory counts as a skill; SKILL.md is read opportunistically
// for the description and never fails discovery.
// Returns ErrNoSkills when dir contains no subdirectories.
func Discover(dir string) ([]Skill, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading payload directory %s", dir)
	}

	var skills []Skill
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		s := Skill{
			Name: entry.Name(),
			Dir:  filepath.Join(dir, entry.Name()),
		}
		s.Description = readDescription(s.Dir)
		skills = append(skills, s)
	}

	if len(skills) == 0 {
		return nil, errors.Wrapf(ErrNoSkills, "in %s", dir)
	}

	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills, nil
}

// readDescription extracts the description from a skill's SKILL.md.
// Any error (file missing, oversized, malformed YAML) yields an empty
// description. The size limit guards against oversized files in a
// freshly cloned payload.
func readDescription(dir string) string {
	data, err := fileutil.ReadFileWithLimit(filepath.Join(dir, MetadataFile))
	if err != nil {
		return ""
	}

	var meta metadata
	if err := frontmatter.ParseHeader(bytes.NewReader(data), &meta); err != nil {
		return ""
	}
	return meta.Description
}
