package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jamesainslie/modkit/pkg/modkit/config"
	"github.com/jamesainslie/modkit/pkg/modkit/index"
	"github.com/jamesainslie/modkit/pkg/modkit/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	recentLimit int

	recentCmd = &cobra.Command{
		Use:   "recent",
		Short: "List recently opened workspaces",
		RunE:  runRecent,
	}

	recentForgetCmd = &cobra.Command{
		Use:   "forget <path>",
		Short: "Remove a workspace from the recent list",
		Args:  cobra.ExactArgs(1),
		RunE:  runRecentForget,
	}
)

func init() {
	recentCmd.Flags().IntVarP(&recentLimit, "limit", "n", 10, "maximum entries to show (0 for all)")
	recentCmd.AddCommand(recentForgetCmd)
	rootCmd.AddCommand(recentCmd)
}

// openIndex opens the configured recent-workspace index.
func openIndex() (*index.Index, error) {
	path := viper.GetString("index.path")
	if path == "" {
		if err := config.EnsureDataDir(); err != nil {
			return nil, err
		}
		path = config.DefaultIndexPath()
	}
	return index.Open(path)
}

func runRecent(cmd *cobra.Command, args []string) error {
	idx, err := openIndex()
	if err != nil {
		printError("%v", err)
		return err
	}
	defer func() { _ = idx.Close() }()

	records, err := idx.Recent(recentLimit)
	if err != nil {
		printError("%v", err)
		return err
	}

	if getJSON() {
		if records == nil {
			records = []index.Workspace{}
		}
		return output.WriteJSON(os.Stdout, records)
	}

	if len(records) == 0 {
		printInfo("No recent workspaces.")
		return nil
	}

	for _, ws := range records {
		fmt.Printf("%s  %s  (%d files, %s)\n",
			output.LabelStyle.Render(humanize.Time(ws.LastOpened)),
			ws.Path,
			ws.Files,
			humanize.Bytes(uint64(ws.Bytes)))
	}
	return nil
}

func runRecentForget(cmd *cobra.Command, args []string) error {
	path, err := resolvePath(args[0])
	if err != nil {
		return err
	}

	idx, err := openIndex()
	if err != nil {
		printError("%v", err)
		return err
	}
	defer func() { _ = idx.Close() }()

	if err := idx.Forget(path); err != nil {
		printError("%v", err)
		return err
	}

	printInfo("Forgot %s", path)
	return nil
}
