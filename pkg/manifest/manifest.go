// Package manifest defines the wenget bucket manifest and its JSON encoding.
package manifest

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/wenget/bucketgen/pkg/errors"
)

// Asset is a downloadable binary for one platform key.
type Asset struct {
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// Package describes one installable tool and its per-platform assets. The
// platform map is keyed by canonical platform keys ("linux-x86_64",
// "darwin", ...).
type Package struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Repo        string            `json:"repo"`
	Homepage    *string           `json:"homepage"`
	License     *string           `json:"license"`
	Version     string            `json:"version,omitempty"`
	Platforms   map[string]*Asset `json:"platforms"`
}

// Script describes one installable script extracted from a gist or raw URL.
type Script struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ScriptType  string `json:"script_type"`
	Repo        string `json:"repo"`
}

// Manifest is the bucket manifest written to manifest.json.
type Manifest struct {
	Packages    []*Package `json:"packages"`
	LastUpdated time.Time  `json:"last_updated"`
	Scripts     []*Script  `json:"scripts,omitempty"`
}

// New creates an empty manifest stamped with the current UTC time.
func New() *Manifest {
	return &Manifest{
		Packages:    make([]*Package, 0),
		LastUpdated: time.Now().UTC().Truncate(time.Second),
	}
}

// AddPackage appends a package, replacing any existing entry with the same
// name.
func (m *Manifest) AddPackage(pkg *Package) {
	for i := range m.Packages {
		if m.Packages[i].Name == pkg.Name {
			m.Packages[i] = pkg
			return
		}
	}
	m.Packages = append(m.Packages, pkg)
}

// AddScript appends a script entry.
func (m *Manifest) AddScript(s *Script) {
	m.Scripts = append(m.Scripts, s)
}

// ToJSON encodes the manifest with two-space indentation.
func (m *Manifest) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal manifest")
	}
	return data, nil
}

// ParseManifest parses a manifest from JSON data.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrManifestParse, err.Error())
	}
	return &m, nil
}

// ParseManifestFromReader parses a manifest from an io.Reader.
func ParseManifestFromReader(reader io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read manifest data")
	}
	return ParseManifest(data)
}

// WriteFile validates the manifest against the bucket schema and writes it
// atomically: encode to a temp file in the target directory, then rename.
func (m *Manifest) WriteFile(path string) error {
	data, err := m.ToJSON()
	if err != nil {
		return err
	}
	if err := ValidateBytes(data); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".manifest-*.json")
	if err != nil {
		return errors.Wrap(errors.ErrManifestWrite, err.Error())
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(errors.ErrManifestWrite, err.Error())
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(errors.ErrManifestWrite, err.Error())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrap(errors.ErrManifestWrite, err.Error())
	}
	return nil
}

// PlatformStats counts how many packages carry each platform key.
func (m *Manifest) PlatformStats() map[string]int {
	stats := make(map[string]int)
	for _, pkg := range m.Packages {
		for key := range pkg.Platforms {
			stats[key]++
		}
	}
	return stats
}

// ScriptTypeStats counts scripts per script type.
func (m *Manifest) ScriptTypeStats() map[string]int {
	stats := make(map[string]int)
	for _, s := range m.Scripts {
		stats[s.ScriptType]++
	}
	return stats
}
