// Package plugin ships the canonical code-analyzer plugin bundle (skill,
// slash commands, manifests) and knows how to validate and install it.
package plugin

import (
	"embed"
	"io/fs"
)

//go:embed bundle
var bundleFS embed.FS

// Name is the plugin's directory name under ~/.claude/plugins.
const Name = "code-analyzer"

// FS returns the embedded plugin bundle rooted at its top level.
func FS() fs.FS {
	sub, err := fs.Sub(bundleFS, "bundle")
	if err != nil {
		// The bundle is compiled in; a missing root is a build defect.
		panic(err)
	}
	return sub
}
