package skills

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Descriptor glob patterns within a plugin directory.
const (
	skillPattern   = "skills/*/SKILL.md"
	commandPattern = "commands/*.md"
)

// Load discovers and parses every skill and command descriptor in a plugin
// filesystem (an installed plugin directory or the embedded bundle).
// Unparsable descriptors are skipped and reported in errs; valid ones are
// still returned.
func Load(fsys fs.FS) (skills []Skill, commands []Command, errs []error) {
	skillFiles, err := doublestar.Glob(fsys, skillPattern)
	if err != nil {
		return nil, nil, []error{fmt.Errorf("globbing skills: %w", err)}
	}
	sort.Strings(skillFiles)

	for _, file := range skillFiles {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}
		meta, body, err := ParseSkill(string(data))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}

		s := Skill{
			Name:        meta.Name,
			Description: meta.Description,
			Path:        file,
			Content:     strings.TrimSpace(body),
			Metadata:    meta,
		}
		if s.Name == "" {
			// Directory name as fallback.
			s.Name = path.Base(path.Dir(file))
		}
		skills = append(skills, s)
	}

	cmdFiles, err := doublestar.Glob(fsys, commandPattern)
	if err != nil {
		errs = append(errs, fmt.Errorf("globbing commands: %w", err))
		return skills, nil, errs
	}
	sort.Strings(cmdFiles)

	for _, file := range cmdFiles {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}
		cmd, err := ParseCommand(string(data))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", file, err))
			continue
		}
		cmd.Path = file
		cmd.Content = strings.TrimSpace(cmd.Content)
		if cmd.Name == "" {
			cmd.Name = strings.TrimSuffix(path.Base(file), ".md")
		}
		commands = append(commands, cmd)
	}

	return skills, commands, errs
}

// Find returns the named skill from a loaded set.
func Find(skills []Skill, name string) (Skill, bool) {
	for _, s := range skills {
		if s.Name == name {
			return s, true
		}
	}
	return Skill{}, false
}
