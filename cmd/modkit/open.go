package main

import (
	"fmt"
	"os"

	"github.com/jamesainslie/modkit/pkg/modkit/config"
	"github.com/jamesainslie/modkit/pkg/modkit/index"
	"github.com/jamesainslie/modkit/pkg/modkit/logging"
	"github.com/jamesainslie/modkit/pkg/modkit/output"
	"github.com/jamesainslie/modkit/pkg/modkit/workspace"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var openDepth int

var openCmd = &cobra.Command{
	Use:   "open [path]",
	Short: "Open a workspace and show its file tree",
	Long: `Open a workspace directory and display its file tree.

The tree expands a bounded number of levels below the root (tree_depth
in the config, default 3). Folders below that depth are shown collapsed
with an ellipsis. The workspace is recorded in the recent-workspace
index unless the index is disabled.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().IntVarP(&openDepth, "depth", "d", 0, "tree depth (default: from config)")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	logger := logging.Get("workspace")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path := cfg.DefaultPath
	if len(args) > 0 {
		path = args[0]
	}

	absPath, err := resolvePath(path)
	if err != nil {
		return err
	}

	depth := cfg.TreeDepth
	if openDepth > 0 {
		depth = openDepth
	}

	logger.Debug("building workspace tree", "path", absPath, "depth", depth)

	tree, err := workspace.BuildTree(absPath, depth)
	if err != nil {
		printError("%v", err)
		return err
	}

	recordRecent(absPath, tree)

	if getJSON() {
		return output.WriteJSON(os.Stdout, tree)
	}

	fmt.Print(output.RenderTree(tree))
	if !getQuiet() {
		files, folders := tree.Count()
		printInfo("\n%d files, %d folders", files, folders)
	}
	return nil
}

// recordRecent updates the recent-workspace index. Failures are logged
// and swallowed: the index is a convenience, not part of the open.
func recordRecent(absPath string, tree *workspace.Tree) {
	if !viper.GetBool("index.enabled") {
		return
	}

	logger := logging.Get("workspace")

	indexPath := viper.GetString("index.path")
	if indexPath == "" {
		if err := config.EnsureDataDir(); err != nil {
			logger.Warn("failed to create data directory", "error", err)
			return
		}
		indexPath = config.DefaultIndexPath()
	}

	idx, err := index.Open(indexPath)
	if err != nil {
		logger.Warn("failed to open workspace index", "error", err)
		return
	}
	defer func() { _ = idx.Close() }()

	files, _ := tree.Count()
	ws := index.Workspace{Path: absPath, Files: int64(files)}
	if stats, err := workspace.Stat(absPath); err == nil {
		ws.Files = stats.Files
		ws.Bytes = stats.Bytes
	}

	if err := idx.Touch(ws); err != nil {
		logger.Warn("failed to record workspace", "path", absPath, "error", err)
	}
}
