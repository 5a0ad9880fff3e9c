package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jamesainslie/modkit/pkg/modkit/config"
	"github.com/jamesainslie/modkit/pkg/modkit/journal"
	"github.com/jamesainslie/modkit/pkg/modkit/logging"
	"github.com/jamesainslie/modkit/pkg/modkit/output"
	"github.com/jamesainslie/modkit/pkg/modkit/workspace"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	projectWriteFrom string

	projectCmd = &cobra.Command{
		Use:   "project",
		Short: "Read and write compressed project files",
		Long: `Read and write project files in the compressed container format.

Project files carry a 4-byte magic prefix followed by a gzip stream.
Reading auto-detects the format: files without the magic prefix are
treated as legacy plain-text projects. Writing always produces the
compressed format.`,
	}

	projectReadCmd = &cobra.Command{
		Use:   "read <path>",
		Short: "Decode a project file to stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  runProjectRead,
	}

	projectWriteCmd = &cobra.Command{
		Use:   "write <path>",
		Short: "Encode text into a project file",
		Long: `Encode text into a compressed project file.

Content is read from the file given with --from, or from stdin when
the flag is omitted. The write is atomic: a failed write never leaves
a partial project file behind.`,
		Args: cobra.ExactArgs(1),
		RunE: runProjectWrite,
	}
)

func init() {
	projectWriteCmd.Flags().StringVarP(&projectWriteFrom, "from", "f", "", "read content from this file instead of stdin")

	projectCmd.AddCommand(projectReadCmd)
	projectCmd.AddCommand(projectWriteCmd)
	rootCmd.AddCommand(projectCmd)
}

func runProjectRead(cmd *cobra.Command, args []string) error {
	logger := logging.Get("container")

	path, err := resolvePath(args[0])
	if err != nil {
		return err
	}

	text, compressed, err := workspace.ReadProject(path)
	if err != nil {
		printError("%v", err)
		return err
	}

	logger.Debug("project file read", "path", path, "compressed", compressed)

	if getJSON() {
		return output.WriteJSON(os.Stdout, map[string]any{
			"path":       path,
			"compressed": compressed,
			"content":    text,
		})
	}

	if compressed {
		printVerboseNote("decoded compressed project file")
	} else {
		printVerboseNote("legacy plain-text project file")
	}
	fmt.Print(text)
	return nil
}

func runProjectWrite(cmd *cobra.Command, args []string) error {
	logger := logging.Get("container")

	path, err := resolvePath(args[0])
	if err != nil {
		return err
	}

	var content []byte
	if projectWriteFrom != "" {
		src, err := resolvePath(projectWriteFrom)
		if err != nil {
			return err
		}
		content, err = os.ReadFile(src)
		if err != nil {
			printError("failed to read %s: %v", src, err)
			return err
		}
	} else {
		content, err = io.ReadAll(os.Stdin)
		if err != nil {
			printError("failed to read stdin: %v", err)
			return err
		}
	}

	sizes, err := workspace.WriteProject(path, string(content))
	if err != nil {
		printError("%v", err)
		return err
	}

	logger.Info("project file written",
		"path", path,
		"original_size", sizes.Original,
		"compressed_size", sizes.Compressed)

	logProjectWrite(path, sizes.Original, sizes.Compressed)

	if getJSON() {
		return output.WriteJSON(os.Stdout, map[string]any{
			"path":            path,
			"original_size":   sizes.Original,
			"compressed_size": sizes.Compressed,
		})
	}

	printInfo("Wrote %s (%s -> %s)", path,
		humanize.Bytes(uint64(sizes.Original)),
		humanize.Bytes(uint64(sizes.Compressed)))
	return nil
}

// logProjectWrite records the write in the journal. Journal failures are
// logged and swallowed.
func logProjectWrite(path string, originalSize, compressedSize int) {
	if !viper.GetBool("journal.enabled") {
		return
	}

	logger := logging.Get("container")

	j, err := openJournal()
	if err != nil {
		logger.Warn("failed to open journal", "error", err)
		return
	}

	if _, err := j.LogProjectWrite(path, int64(originalSize), int64(compressedSize)); err != nil {
		logger.Warn("failed to journal project write", "error", err)
	}
}

// openJournal opens the configured journal, creating its directory.
func openJournal() (*journal.Journal, error) {
	dir := viper.GetString("journal.path")
	if dir == "" {
		var err error
		dir, err = config.JournalDir()
		if err != nil {
			return nil, err
		}
	}

	j, err := journal.New(dir)
	if err != nil {
		return nil, err
	}
	if err := j.EnsureDir(); err != nil {
		return nil, err
	}
	return j, nil
}

// printVerboseNote prints a note to stderr in verbose mode only.
func printVerboseNote(format string, args ...interface{}) {
	if getVerbose() {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
