package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jamesainslie/modkit/pkg/modkit/output"
	"github.com/jamesainslie/modkit/pkg/modkit/workspace"
	"github.com/spf13/cobra"
)

var (
	writeFrom string

	catCmd = &cobra.Command{
		Use:   "cat <path>",
		Short: "Print a file's contents verbatim",
		Args:  cobra.ExactArgs(1),
		RunE:  runCat,
	}

	writeCmd = &cobra.Command{
		Use:   "write <path>",
		Short: "Write text to a file verbatim",
		Long: `Write text to a file with no encoding or compression.

Content is read from the file given with --from, or from stdin when
the flag is omitted. Use "project write" for compressed project files.`,
		Args: cobra.ExactArgs(1),
		RunE: runWrite,
	}

	lsCmd = &cobra.Command{
		Use:   "ls [path]",
		Short: "List the immediate entries of a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLs,
	}

	mkdirCmd = &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a directory and any missing parents",
		Args:  cobra.ExactArgs(1),
		RunE:  runMkdir,
	}

	rmdirCmd = &cobra.Command{
		Use:   "rmdir <path>",
		Short: "Remove a directory and everything under it",
		Long: `Remove a directory and everything under it.

Removing a path that does not exist is a success, not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: runRmdir,
	}
)

func init() {
	writeCmd.Flags().StringVarP(&writeFrom, "from", "f", "", "read content from this file instead of stdin")

	rootCmd.AddCommand(catCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(mkdirCmd)
	rootCmd.AddCommand(rmdirCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	path, err := resolvePath(args[0])
	if err != nil {
		return err
	}

	text, err := workspace.ReadFile(path)
	if err != nil {
		printError("%v", err)
		return err
	}

	fmt.Print(text)
	return nil
}

func runWrite(cmd *cobra.Command, args []string) error {
	path, err := resolvePath(args[0])
	if err != nil {
		return err
	}

	var content []byte
	if writeFrom != "" {
		src, err := resolvePath(writeFrom)
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

	if err := workspace.WriteFile(path, string(content)); err != nil {
		printError("%v", err)
		return err
	}

	printInfo("Wrote %s", path)
	return nil
}

func runLs(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	absPath, err := resolvePath(path)
	if err != nil {
		return err
	}

	entries, err := workspace.List(absPath)
	if err != nil {
		printError("%v", err)
		return err
	}

	if getJSON() {
		return output.WriteJSON(os.Stdout, entries)
	}

	for _, entry := range entries {
		name := entry.Name
		if entry.IsDir {
			name = output.FolderStyle.Render(name + "/")
		} else {
			name = output.FileStyle.Render(name)
		}
		fmt.Println(name)
	}
	return nil
}

func runMkdir(cmd *cobra.Command, args []string) error {
	path, err := resolvePath(args[0])
	if err != nil {
		return err
	}

	if err := workspace.CreateDir(path); err != nil {
		printError("%v", err)
		return err
	}

	printInfo("Created %s", path)
	return nil
}

func runRmdir(cmd *cobra.Command, args []string) error {
	path, err := resolvePath(args[0])
	if err != nil {
		return err
	}

	if err := workspace.DeleteDir(path); err != nil {
		printError("%v", err)
		return err
	}

	printInfo("Removed %s", path)
	return nil
}
