package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde replaces a leading ~ or ~/ in a local path with the user's
// home directory. ~username is left alone, as is any path when the home
// directory is unknown.
func ExpandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
