package skills

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// splitFrontmatter separates the YAML frontmatter block from the markdown
// body. Frontmatter is delimited by "---" lines at the top of the file; a
// file without one yields an empty frontmatter and the full content as body.
func splitFrontmatter(content string) (frontmatter, body string, err error) {
	if !strings.HasPrefix(strings.TrimSpace(content), "---") {
		return "", content, nil
	}

	lines := strings.Split(content, "\n")
	startIdx := -1
	endIdx := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			if startIdx == -1 {
				startIdx = i
			} else {
				endIdx = i
				break
			}
		}
	}
	if startIdx == -1 || endIdx == -1 || endIdx <= startIdx {
		return "", content, fmt.Errorf("invalid frontmatter: missing delimiters")
	}

	frontmatter = strings.Join(lines[startIdx+1:endIdx], "\n")
	body = strings.TrimPrefix(strings.Join(lines[endIdx+1:], "\n"), "\n")
	return frontmatter, body, nil
}

// ParseSkill parses SKILL.md content into metadata and body.
func ParseSkill(content string) (Metadata, string, error) {
	fm, body, err := splitFrontmatter(content)
	if err != nil {
		return Metadata{}, "", err
	}

	var meta Metadata
	if fm != "" {
		if err := yaml.Unmarshal([]byte(fm), &meta); err != nil {
			return Metadata{}, "", fmt.Errorf("parsing frontmatter: %w", err)
		}
	}

	if meta.Name != "" {
		if err := ValidateName(meta.Name); err != nil {
			return Metadata{}, "", fmt.Errorf("invalid name: %w", err)
		}
	}
	if meta.Description != "" {
		if err := validateDescription(meta.Description); err != nil {
			return Metadata{}, "", fmt.Errorf("invalid description: %w", err)
		}
	}

	return meta, body, nil
}

// ParseCommand parses slash-command markdown into a Command (Path is left to
// the caller).
func ParseCommand(content string) (Command, error) {
	fm, body, err := splitFrontmatter(content)
	if err != nil {
		return Command{}, err
	}

	var meta commandFrontmatter
	if fm != "" {
		if err := yaml.Unmarshal([]byte(fm), &meta); err != nil {
			return Command{}, fmt.Errorf("parsing frontmatter: %w", err)
		}
	}

	return Command{
		Name:         meta.Name,
		Description:  meta.Description,
		ArgumentHint: meta.ArgumentHint,
		Content:      body,
	}, nil
}

// ValidateName enforces the skill-name rules: 1-64 characters of lowercase
// letters, digits, and hyphens, with no leading, trailing, or doubled hyphen.
func ValidateName(name string) error {
	if len(name) < 1 || len(name) > 64 {
		return fmt.Errorf("name must be 1-64 characters")
	}
	for _, c := range name {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-') {
			return fmt.Errorf("name must contain only lowercase letters, numbers, and hyphens")
		}
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		return fmt.Errorf("name must not start or end with hyphen")
	}
	if strings.Contains(name, "--") {
		return fmt.Errorf("name must not contain consecutive hyphens")
	}
	return nil
}

func validateDescription(desc string) error {
	if len(desc) < 1 || len(desc) > 1024 {
		return fmt.Errorf("description must be 1-1024 characters")
	}
	return nil
}
