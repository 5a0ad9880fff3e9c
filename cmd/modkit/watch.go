package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jamesainslie/modkit/pkg/modkit/logging"
	"github.com/jamesainslie/modkit/pkg/modkit/watcher"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Watch a workspace for filesystem changes",
	Long: `Watch a workspace directory recursively and print filesystem
events as they happen. Directories created while watching are picked up
automatically. Press Ctrl+C to stop.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger := logging.Get("watcher")

	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	absPath, err := resolvePath(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		printError("path does not exist: %s", absPath)
		return err
	}
	if !info.IsDir() {
		printError("path is not a directory: %s", absPath)
		return fmt.Errorf("not a directory: %s", absPath)
	}

	w, err := watcher.New()
	if err != nil {
		printError("%v", err)
		return err
	}
	defer func() { _ = w.Close() }()

	if err := w.Watch(absPath); err != nil {
		printError("%v", err)
		return err
	}

	logger.Info("watching workspace", "path", absPath)
	printInfo("Watching %s (Ctrl+C to stop)", absPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w.Run(ctx, func(eventPath string, op fsnotify.Op) {
		fmt.Printf("%s  %-8s %s\n", time.Now().Format("15:04:05"), op.String(), eventPath)
	})

	printInfo("Stopped.")
	return nil
}
