// Package manifest reads the optional skillset.toml collection manifest
// at the payload root.
package manifest

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the manifest file at the payload root.
const FileName = "skillset.toml"

// Manifest describes a skill collection.
type Manifest struct {
	// Name is the collection's display name.
	Name string `toml:"name"`

	// Version is the collection version.
	Version string `toml:"version"`

	// Description summarizes the collection.
	Description string `toml:"description"`

	// DocsURL points at the collection's documentation site.
	DocsURL string `toml:"docs_url"`
}

// Default returns the compiled-in manifest used when the payload
// carries no skillset.toml.
func Default() *Manifest {
	return &Manifest{
		Name:        "Trellis Framework skills",
		Description: "Architecture pattern skills for the Trellis web framework",
		DocsURL:     "https://trellis-framework.dev/docs/skills",
	}
}

// Load reads the manifest from the payload directory.
// A missing file is not an error; the defaults are returned instead.
// A present but malformed file is an error.
func Load(payloadDir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(payloadDir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Wrapf(err, "reading %s", FileName)
	}

	m := Default()
	if err := toml.Unmarshal(data, m); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", FileName)
	}
	return m, nil
}
