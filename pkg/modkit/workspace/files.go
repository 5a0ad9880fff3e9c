package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jamesainslie/modkit/pkg/modkit/container"
)

// DirEntry is a single entry from a flat directory listing. The listing
// is one level only, in whatever order the filesystem yields.
type DirEntry struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	IsDir bool   `json:"isDirectory"`
}

// ReadFile returns the contents of path as text, with no format sniffing.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	return string(data), nil
}

// WriteFile writes text to path verbatim.
func WriteFile(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}
	return nil
}

// ReadProject reads a project file, decoding the container format when
// present and falling back to plain text for legacy files. The boolean
// reports which path was taken.
func ReadProject(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("reading project file: %w", err)
	}
	return container.Decode(data)
}

// WriteProject encodes text into the container format and writes it to
// path as a single atomic byte sequence (temp file plus rename), so a
// failed write never leaves a partial project file behind.
func WriteProject(path, text string) (container.Sizes, error) {
	blob, sizes, err := container.Encode(text)
	if err != nil {
		return container.Sizes{}, err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return container.Sizes{}, fmt.Errorf("writing project file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return container.Sizes{}, fmt.Errorf("writing project file: %w", err)
	}

	return sizes, nil
}

// List enumerates the immediate entries of dir. Entries whose type cannot
// be determined default to non-directories.
func List(dir string) ([]DirEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing directory: %w", err)
	}

	items := make([]DirEntry, 0, len(entries))
	for _, entry := range entries {
		items = append(items, DirEntry{
			Name:  entry.Name(),
			Path:  filepath.Join(dir, entry.Name()),
			IsDir: entry.IsDir(),
		})
	}
	return items, nil
}

// CreateDir creates dir and any missing parents.
func CreateDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	return nil
}

// DeleteDir removes dir and everything under it. Deleting a path that
// does not exist is a success, not an error.
func DeleteDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("deleting directory: %w", err)
	}
	return nil
}
