package plugin

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultInstallRoot returns ~/.claude/plugins.
func DefaultInstallRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".claude", "plugins"), nil
}

// Install copies the embedded bundle into root/<plugin-name> and returns the
// destination directory. An existing installation is refused unless force is
// set. An empty root means the default install root.
func Install(root string, force bool) (string, error) {
	if root == "" {
		var err error
		root, err = DefaultInstallRoot()
		if err != nil {
			return "", err
		}
	}

	dest := filepath.Join(root, Name)
	if _, err := os.Stat(dest); err == nil {
		if !force {
			return "", fmt.Errorf("%s already exists (use --force to overwrite)", dest)
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("checking %s: %w", dest, err)
	}

	fsys := FS()
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dest, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading bundled %s: %w", path, err)
		}
		return os.WriteFile(target, data, 0644)
	})
	if err != nil {
		return "", fmt.Errorf("installing plugin: %w", err)
	}
	return dest, nil
}
