package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jamesainslie/modkit/pkg/modkit/output"
	"github.com/jamesainslie/modkit/pkg/modkit/workspace"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [path]",
	Short: "Show workspace size and disk usage",
	Long: `Walk the whole workspace subtree and report file and directory
counts, total size, and the free space left on the filesystem.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	absPath, err := resolvePath(path)
	if err != nil {
		return err
	}

	stats, err := workspace.Stat(absPath)
	if err != nil {
		printError("%v", err)
		return err
	}

	free, freeOK := workspace.FreeSpace(absPath)

	if getJSON() {
		result := map[string]any{
			"path":  absPath,
			"files": stats.Files,
			"dirs":  stats.Dirs,
			"bytes": stats.Bytes,
		}
		if freeOK {
			result["free_bytes"] = free
		}
		return output.WriteJSON(os.Stdout, result)
	}

	fmt.Printf("%s %s\n", output.LabelStyle.Render("Workspace:"), absPath)
	fmt.Printf("%s %d\n", output.LabelStyle.Render("Files:"), stats.Files)
	fmt.Printf("%s %d\n", output.LabelStyle.Render("Folders:"), stats.Dirs)
	fmt.Printf("%s %s\n", output.LabelStyle.Render("Size:"), humanize.Bytes(uint64(stats.Bytes)))
	if freeOK {
		fmt.Printf("%s %s\n", output.LabelStyle.Render("Free space:"), humanize.Bytes(free))
	}
	return nil
}
