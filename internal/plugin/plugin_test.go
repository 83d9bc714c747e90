package plugin

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codelens/code-analyzer/internal/skills"
)

func TestEmbeddedManifestValid(t *testing.T) {
	m, err := LoadManifest(FS())
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.Name != Name {
		t.Errorf("expected plugin name %q, got %q", Name, m.Name)
	}
}

func TestEmbeddedMarketplaceValid(t *testing.T) {
	m, err := LoadMarketplace(FS())
	if err != nil {
		t.Fatalf("LoadMarketplace: %v", err)
	}
	if len(m.Plugins) != 1 || m.Plugins[0].Name != Name {
		t.Errorf("unexpected marketplace plugins: %+v", m.Plugins)
	}
}

func TestEmbeddedDescriptorsParse(t *testing.T) {
	loaded, commands, errs := skills.Load(FS())
	if len(errs) != 0 {
		t.Fatalf("descriptor errors: %v", errs)
	}
	if len(loaded) != 1 || loaded[0].Name != Name {
		t.Fatalf("expected one %q skill, got %+v", Name, loaded)
	}
	if loaded[0].Description == "" {
		t.Error("skill description must not be empty")
	}
	if len(commands) != 3 {
		t.Fatalf("expected 3 commands, got %d", len(commands))
	}
	for _, c := range commands {
		if c.Description == "" {
			t.Errorf("command %q has no description", c.Name)
		}
	}
}

func TestMarketplaceValidate_Rejections(t *testing.T) {
	base := Marketplace{
		Name:  "m",
		Owner: "o",
		Plugins: []Entry{
			{Name: "ok", Source: "./", Description: "fine"},
		},
	}

	cases := []struct {
		name   string
		mutate func(*Marketplace)
	}{
		{"empty owner", func(m *Marketplace) { m.Owner = "" }},
		{"empty name", func(m *Marketplace) { m.Name = "" }},
		{"no plugins", func(m *Marketplace) { m.Plugins = nil }},
		{"bad plugin name", func(m *Marketplace) { m.Plugins[0].Name = "Bad Name" }},
		{"empty source", func(m *Marketplace) { m.Plugins[0].Source = "" }},
		{"empty description", func(m *Marketplace) { m.Plugins[0].Description = "" }},
	}

	for _, tc := range cases {
		m := base
		m.Plugins = append([]Entry(nil), base.Plugins...)
		tc.mutate(&m)
		if err := m.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestInstall(t *testing.T) {
	root := t.TempDir()

	dest, err := Install(root, false)
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	if dest != filepath.Join(root, Name) {
		t.Errorf("unexpected destination: %s", dest)
	}

	for _, rel := range []string{
		"plugin.json",
		"marketplace.json",
		"skills/code-analyzer/SKILL.md",
		"commands/tool.md",
	} {
		if _, err := os.Stat(filepath.Join(dest, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing installed file %s: %v", rel, err)
		}
	}

	// Installed tree is loadable like the embedded one.
	loaded, _, errs := skills.Load(os.DirFS(dest))
	if len(errs) != 0 || len(loaded) != 1 {
		t.Errorf("installed bundle does not load cleanly: skills=%d errs=%v", len(loaded), errs)
	}
}

func TestInstall_RefusesOverwrite(t *testing.T) {
	root := t.TempDir()

	if _, err := Install(root, false); err != nil {
		t.Fatalf("first install: %v", err)
	}

	_, err := Install(root, false)
	if err == nil || !strings.Contains(err.Error(), "--force") {
		t.Fatalf("expected overwrite refusal, got %v", err)
	}

	if _, err := Install(root, true); err != nil {
		t.Errorf("forced reinstall should succeed: %v", err)
	}
}
