package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jamesainslie/modkit/pkg/modkit/journal"
	"github.com/jamesainslie/modkit/pkg/modkit/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	journalLimit int

	journalCmd = &cobra.Command{
		Use:   "journal",
		Short: "Inspect the operation journal",
		Long: `Inspect the journal of project writes and scaffolds.

Every "project write" and "new" records an entry. Entries older than
journal.retention_days (default 30) are removed by "journal cleanup".`,
	}

	journalListCmd = &cobra.Command{
		Use:   "list",
		Short: "List journal entries, newest first",
		RunE:  runJournalList,
	}

	journalShowCmd = &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single journal entry",
		Args:  cobra.ExactArgs(1),
		RunE:  runJournalShow,
	}

	journalCleanupCmd = &cobra.Command{
		Use:   "cleanup",
		Short: "Remove entries older than the retention window",
		RunE:  runJournalCleanup,
	}
)

func init() {
	journalListCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "maximum entries to show (0 for all)")

	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalCleanupCmd)
	rootCmd.AddCommand(journalCmd)
}

func runJournalList(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		printError("%v", err)
		return err
	}

	entries, err := j.List(journalLimit)
	if err != nil {
		printError("%v", err)
		return err
	}

	if getJSON() {
		return output.WriteJSON(os.Stdout, entries)
	}

	if len(entries) == 0 {
		printInfo("No journal entries.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %s\n", output.LabelStyle.Render(e.ID), describeEntry(e))
	}
	return nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		printError("%v", err)
		return err
	}

	entry, err := j.Get(args[0])
	if err != nil {
		printError("%v", err)
		return err
	}

	return output.WriteJSON(os.Stdout, entry)
}

func runJournalCleanup(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		printError("%v", err)
		return err
	}

	retention := viper.GetInt("journal.retention_days")
	if err := j.Cleanup(retention); err != nil {
		printError("%v", err)
		return err
	}

	printInfo("Removed entries older than %d days.", retention)
	return nil
}

// describeEntry renders a one-line summary for a journal entry.
func describeEntry(e journal.Entry) string {
	switch e.Operation {
	case journal.OpProjectWrite:
		return fmt.Sprintf("%s (%s -> %s)", e.Path,
			humanize.Bytes(uint64(e.OriginalSize)),
			humanize.Bytes(uint64(e.CompressedSize)))
	case journal.OpScaffold:
		return fmt.Sprintf("%s (mod %s)", e.Path, e.ModID)
	default:
		return e.Path
	}
}
