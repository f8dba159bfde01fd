// Package fileutil holds path and directory helpers for wallpaper
// files: the supported-format allow-list, image scans and config paths.
package fileutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// supportedFormats is the closed set of image extensions the wallpaper
// tooling accepts, lowercased with the leading dot.
var supportedFormats = []string{".png", ".jpg", ".jpeg", ".bmp", ".tiff", ".webp", ".gif"}

// SupportedFormats returns the accepted image extensions.
func SupportedFormats() []string {
	out := make([]string, len(supportedFormats))
	copy(out, supportedFormats)
	return out
}

// IsImageFile reports whether the path carries a supported image
// extension. Only the extension is inspected; existence is a separate
// concern.
func IsImageFile(path string) bool {
	if path == "" {
		return false
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range supportedFormats {
		if ext == s {
			return true
		}
	}
	return false
}

// ImagesInDirectory returns the supported image files directly inside
// dir, sorted by name. A missing directory is not an error; it simply
// has no images.
func ImagesInDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var images []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if IsImageFile(e.Name()) {
			images = append(images, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(images)
	return images, nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}

// ConfigDir returns the directory holding the settings file, creating
// nothing.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, "caithe")
}
