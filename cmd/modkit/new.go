package main

import (
	"os"

	"github.com/jamesainslie/modkit/pkg/modkit/logging"
	"github.com/jamesainslie/modkit/pkg/modkit/output"
	"github.com/jamesainslie/modkit/pkg/modkit/scaffold"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	newMod scaffold.Mod

	newCmd = &cobra.Command{
		Use:   "new <parent-dir>",
		Short: "Scaffold a new mod",
		Long: `Scaffold a new mod under the given parent directory.

Creates the standard layout (scripts/, scripts/vscripts/, paks/,
audio/, resource/) plus a mod.vdf descriptor, a manifest.json with a
generated id, and a starter README. Refuses to touch a directory that
already exists.

Example:
  modkit new --id huge-scatter --name "Huge Scatter" --author you ~/mods`,
		Args: cobra.ExactArgs(1),
		RunE: runNew,
	}
)

func init() {
	newCmd.Flags().StringVar(&newMod.ModID, "id", "", "mod identifier, used as the directory name (required)")
	newCmd.Flags().StringVar(&newMod.Name, "name", "", "display name")
	newCmd.Flags().StringVar(&newMod.Description, "description", "", "short description")
	newCmd.Flags().StringVar(&newMod.Author, "author", "", "author name")
	newCmd.Flags().StringVar(&newMod.Version, "version", "0.1.0", "initial version")
	_ = newCmd.MarkFlagRequired("id")

	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	logger := logging.Get("scaffold")

	parent, err := resolvePath(args[0])
	if err != nil {
		return err
	}
	newMod.Path = parent

	if newMod.Name == "" {
		newMod.Name = newMod.ModID
	}

	modDir, err := scaffold.Create(newMod)
	if err != nil {
		printError("%v", err)
		return err
	}

	logger.Info("mod scaffolded", "path", modDir, "mod_id", newMod.ModID)
	logScaffold(modDir, newMod.ModID)

	if getJSON() {
		return output.WriteJSON(os.Stdout, map[string]any{
			"path":  modDir,
			"modId": newMod.ModID,
		})
	}

	printInfo("Created mod %q at %s", newMod.ModID, modDir)
	return nil
}

// logScaffold records the scaffold in the journal. Journal failures are
// logged and swallowed.
func logScaffold(path, modID string) {
	if !viper.GetBool("journal.enabled") {
		return
	}

	logger := logging.Get("scaffold")

	j, err := openJournal()
	if err != nil {
		logger.Warn("failed to open journal", "error", err)
		return
	}

	if _, err := j.LogScaffold(path, modID); err != nil {
		logger.Warn("failed to journal scaffold", "error", err)
	}
}
