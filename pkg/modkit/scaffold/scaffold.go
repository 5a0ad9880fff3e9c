// Package scaffold generates the on-disk skeleton for a new R5 mod:
// the standard directory layout, a mod.vdf KeyValues descriptor, a JSON
// manifest, and a starter README.
package scaffold

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/google/uuid"
)

// ErrExists is returned when the target mod directory already exists.
var ErrExists = errors.New("mod directory already exists")

// Mod describes a mod project to scaffold.
type Mod struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Author      string `json:"author"`
	Version     string `json:"version"`
	ModID       string `json:"modId"`

	// Path is the parent directory the mod folder is created under.
	Path string `json:"path"`
}

// Validate checks that the fields required to lay out a mod are present.
func (m *Mod) Validate() error {
	if m.ModID == "" {
		return errors.New("mod id cannot be empty")
	}
	if strings.ContainsAny(m.ModID, `/\`) {
		return fmt.Errorf("mod id %q must not contain path separators", m.ModID)
	}
	if m.Path == "" {
		return errors.New("mod parent path cannot be empty")
	}
	return nil
}

// subdirs is the standard layout under a mod root.
var subdirs = []string{
	"scripts",
	filepath.Join("scripts", "vscripts"),
	"paks",
	"audio",
	"resource",
}

var vdfTemplate = template.Must(template.New("mod.vdf").Parse(`"{{.ModID}}"
{
    "Name"              "{{.Name}}"
    "Description"       "{{.Description}}"
    "Version"           "{{.Version}}"
    "RequiredOnClient"  "1"
}`))

var readmeTemplate = template.Must(template.New("README.md").Parse(`# {{.Name}}

{{.Description}}

## Author
{{.Author}}

## Version
{{.Version}}

## Installation
Place this mod in your mods directory.
`))

// manifest is the serialized form of manifest.json.
type manifest struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Version      string            `json:"version"`
	Author       string            `json:"author"`
	ModID        string            `json:"modId"`
	Scripts      []string          `json:"scripts"`
	Rpaks        []string          `json:"rpaks"`
	Audio        []string          `json:"audio"`
	Localization map[string]string `json:"localization"`
}

// Create lays out a new mod under mod.Path/mod.ModID and returns the
// created directory. It refuses to touch a directory that already exists.
func Create(mod Mod) (string, error) {
	if err := mod.Validate(); err != nil {
		return "", err
	}

	modDir := filepath.Join(mod.Path, mod.ModID)
	if _, err := os.Stat(modDir); err == nil {
		return "", fmt.Errorf("%w: %s", ErrExists, modDir)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("checking mod directory: %w", err)
	}

	for _, sub := range append([]string{""}, subdirs...) {
		if err := os.MkdirAll(filepath.Join(modDir, sub), 0o755); err != nil {
			return "", fmt.Errorf("creating mod directory: %w", err)
		}
	}

	if err := writeTemplate(filepath.Join(modDir, "mod.vdf"), vdfTemplate, mod); err != nil {
		return "", err
	}
	if err := writeManifest(filepath.Join(modDir, "manifest.json"), mod); err != nil {
		return "", err
	}
	if err := writeTemplate(filepath.Join(modDir, "README.md"), readmeTemplate, mod); err != nil {
		return "", err
	}

	return modDir, nil
}

// writeTemplate renders tmpl with mod and writes the result to path.
func writeTemplate(path string, tmpl *template.Template, mod Mod) error {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, mod); err != nil {
		return fmt.Errorf("rendering %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// writeManifest writes manifest.json with empty asset lists and a
// generated instance id.
func writeManifest(path string, mod Mod) error {
	m := manifest{
		ID:           uuid.NewString(),
		Name:         mod.Name,
		Description:  mod.Description,
		Version:      mod.Version,
		Author:       mod.Author,
		ModID:        mod.ModID,
		Scripts:      []string{},
		Rpaks:        []string{},
		Audio:        []string{},
		Localization: map[string]string{},
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest.json: %w", err)
	}
	return nil
}
