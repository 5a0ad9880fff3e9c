package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jamesainslie/modkit/pkg/modkit/config"
	"github.com/jamesainslie/modkit/pkg/modkit/output"
	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage modkit configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE:  runConfigShow,
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write a default config file to the config directory.

Does nothing if a config file already exists.`,
		RunE: runConfigInit,
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE:  runConfigPath,
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		printError("%v", err)
		return err
	}

	if getJSON() {
		return output.WriteJSON(os.Stdout, cfg)
	}

	fmt.Printf("%s %d\n", output.LabelStyle.Render("Tree depth:"), cfg.TreeDepth)
	fmt.Printf("%s %s\n", output.LabelStyle.Render("Default path:"), cfg.DefaultPath)
	fmt.Printf("%s %v\n", output.LabelStyle.Render("Project extensions:"), cfg.ProjectExtensions)
	fmt.Printf("%s enabled=%v path=%s retention=%dd\n",
		output.LabelStyle.Render("Journal:"),
		cfg.Journal.Enabled, cfg.Journal.Path, cfg.Journal.RetentionDays)

	indexPath := cfg.Index.Path
	if indexPath == "" {
		indexPath = config.DefaultIndexPath()
	}
	fmt.Printf("%s enabled=%v path=%s\n",
		output.LabelStyle.Render("Index:"), cfg.Index.Enabled, indexPath)

	logPath := cfg.Logging.Path
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}
	fmt.Printf("%s level=%s path=%s\n",
		output.LabelStyle.Render("Logging:"), cfg.Logging.Level, logPath)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.WriteDefault(); err != nil {
		printError("%v", err)
		return err
	}

	configDir, err := config.ConfigDir()
	if err != nil {
		return err
	}

	printInfo("Config at %s", filepath.Join(configDir, "config.yaml"))
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	configDir, err := config.ConfigDir()
	if err != nil {
		printError("%v", err)
		return err
	}

	fmt.Println(filepath.Join(configDir, "config.yaml"))
	return nil
}
