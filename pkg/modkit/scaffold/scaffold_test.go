package scaffold_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jamesainslie/modkit/pkg/modkit/scaffold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMod(path string) scaffold.Mod {
	return scaffold.Mod{
		Name:        "Huge Scatter",
		Description: "Makes the scatter gun huge",
		Author:      "someone",
		Version:     "1.0.0",
		ModID:       "huge-scatter",
		Path:        path,
	}
}

func TestCreate(t *testing.T) {
	t.Run("creates directory layout", func(t *testing.T) {
		dir, err := scaffold.Create(testMod(t.TempDir()))
		require.NoError(t, err)

		for _, sub := range []string{
			"scripts",
			filepath.Join("scripts", "vscripts"),
			"paks",
			"audio",
			"resource",
		} {
			info, err := os.Stat(filepath.Join(dir, sub))
			require.NoError(t, err, "missing %s", sub)
			assert.True(t, info.IsDir())
		}
	})

	t.Run("writes mod.vdf with keyvalues block", func(t *testing.T) {
		dir, err := scaffold.Create(testMod(t.TempDir()))
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "mod.vdf"))
		require.NoError(t, err)

		vdf := string(data)
		assert.True(t, strings.HasPrefix(vdf, `"huge-scatter"`))
		assert.Contains(t, vdf, `"Name"              "Huge Scatter"`)
		assert.Contains(t, vdf, `"Version"           "1.0.0"`)
		assert.Contains(t, vdf, `"RequiredOnClient"  "1"`)
	})

	t.Run("writes manifest with empty asset lists", func(t *testing.T) {
		dir, err := scaffold.Create(testMod(t.TempDir()))
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "manifest.json"))
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		assert.Equal(t, "huge-scatter", m["modId"])
		assert.Equal(t, "someone", m["author"])
		assert.NotEmpty(t, m["id"], "manifest must carry a generated instance id")
		assert.Equal(t, []any{}, m["scripts"])
		assert.Equal(t, []any{}, m["rpaks"])
		assert.Equal(t, []any{}, m["audio"])
		assert.Equal(t, map[string]any{}, m["localization"])
	})

	t.Run("writes readme", func(t *testing.T) {
		dir, err := scaffold.Create(testMod(t.TempDir()))
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "README.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "# Huge Scatter")
		assert.Contains(t, string(data), "Place this mod in your mods directory.")
	})

	t.Run("refuses existing directory", func(t *testing.T) {
		parent := t.TempDir()
		_, err := scaffold.Create(testMod(parent))
		require.NoError(t, err)

		_, err = scaffold.Create(testMod(parent))
		assert.ErrorIs(t, err, scaffold.ErrExists)
	})
}

func TestModValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*scaffold.Mod)
		wantErr bool
	}{
		{"valid", func(m *scaffold.Mod) {}, false},
		{"empty mod id", func(m *scaffold.Mod) { m.ModID = "" }, true},
		{"mod id with separator", func(m *scaffold.Mod) { m.ModID = "a/b" }, true},
		{"empty path", func(m *scaffold.Mod) { m.Path = "" }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mod := testMod("/tmp/mods")
			tc.mutate(&mod)
			err := mod.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
