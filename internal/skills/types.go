// Package skills parses the markdown descriptors a plugin bundle is made of:
// SKILL.md files and slash-command markdown, both carrying YAML frontmatter.
package skills

// Metadata is the YAML frontmatter of a SKILL.md file.
type Metadata struct {
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description"`
	License      string            `yaml:"license"`
	AllowedTools string            `yaml:"allowed-tools"`
	Extra        map[string]string `yaml:"metadata"`
}

// Skill is a loaded skill descriptor.
type Skill struct {
	Name        string
	Description string
	Path        string // source path for diagnostics
	Content     string // markdown body
	Metadata    Metadata
}

// Command is a loaded slash-command descriptor.
type Command struct {
	Name         string
	Description  string
	ArgumentHint string
	Path         string
	Content      string
}

// commandFrontmatter is the YAML frontmatter of a command markdown file.
type commandFrontmatter struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	ArgumentHint string `yaml:"argument-hint"`
}
