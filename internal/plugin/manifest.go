package plugin

import (
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/codelens/code-analyzer/internal/skills"
)

// Manifest file names within a bundle.
const (
	ManifestFile    = "plugin.json"
	MarketplaceFile = "marketplace.json"
)

// Manifest is the plugin.json descriptor.
type Manifest struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Author      string `json:"author,omitempty"`
}

// Marketplace is the marketplace.json descriptor: how the bundle is listed
// and installed by the hosting assistant.
type Marketplace struct {
	Name    string  `json:"name"`
	Owner   string  `json:"owner"`
	Plugins []Entry `json:"plugins"`
}

// Entry is one installable plugin in a marketplace listing.
type Entry struct {
	Name        string `json:"name"`
	Source      string `json:"source"`
	Description string `json:"description"`
	Version     string `json:"version,omitempty"`
}

// LoadManifest reads and validates plugin.json from a bundle filesystem.
func LoadManifest(fsys fs.FS) (Manifest, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		return Manifest{}, fmt.Errorf("reading %s: %w", ManifestFile, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing %s: %w", ManifestFile, err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Validate checks the structural rules for a plugin manifest.
func (m Manifest) Validate() error {
	if err := skills.ValidateName(m.Name); err != nil {
		return fmt.Errorf("plugin name: %w", err)
	}
	if m.Version == "" {
		return fmt.Errorf("plugin %q: version must not be empty", m.Name)
	}
	if m.Description == "" {
		return fmt.Errorf("plugin %q: description must not be empty", m.Name)
	}
	return nil
}

// LoadMarketplace reads and validates marketplace.json from a bundle
// filesystem.
func LoadMarketplace(fsys fs.FS) (Marketplace, error) {
	data, err := fs.ReadFile(fsys, MarketplaceFile)
	if err != nil {
		return Marketplace{}, fmt.Errorf("reading %s: %w", MarketplaceFile, err)
	}
	var m Marketplace
	if err := json.Unmarshal(data, &m); err != nil {
		return Marketplace{}, fmt.Errorf("parsing %s: %w", MarketplaceFile, err)
	}
	if err := m.Validate(); err != nil {
		return Marketplace{}, err
	}
	return m, nil
}

// Validate checks the structural rules for a marketplace listing.
func (m Marketplace) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("marketplace name must not be empty")
	}
	if m.Owner == "" {
		return fmt.Errorf("marketplace owner must not be empty")
	}
	if len(m.Plugins) == 0 {
		return fmt.Errorf("marketplace must list at least one plugin")
	}
	for _, p := range m.Plugins {
		if err := skills.ValidateName(p.Name); err != nil {
			return fmt.Errorf("plugin name %q: %w", p.Name, err)
		}
		if p.Source == "" {
			return fmt.Errorf("plugin %q: source must not be empty", p.Name)
		}
		if p.Description == "" {
			return fmt.Errorf("plugin %q: description must not be empty", p.Name)
		}
	}
	return nil
}
