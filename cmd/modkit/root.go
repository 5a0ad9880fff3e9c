package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/modkit/pkg/modkit/config"
	"github.com/jamesainslie/modkit/pkg/modkit/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "modkit",
		Short: "Workspace and project-file toolkit for R5 mod development",
		Long: `Modkit manages R5 mod workspaces: it opens directory trees for
browsing, reads and writes compressed project files, and scaffolds
new mods.

Examples:
  modkit open ~/mods/huge-scatter      # Show the workspace tree
  modkit project read level.r5v        # Decode a project file
  modkit project write level.r5v -f level.txt
  modkit new --id huge-scatter --name "Huge Scatter" ~/mods
  modkit recent                        # Recently opened workspaces
  modkit watch ~/mods/huge-scatter     # Follow filesystem changes`,
		SilenceUsage:      true,
		PersistentPreRunE: initLogging,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/modkit/config.yaml)")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "output JSON format")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")

	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "modkit"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "modkit"))
		}
	}

	viper.SetEnvPrefix("MODKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("tree_depth", config.DefaultTreeDepth)
	viper.SetDefault("default_path", config.DefaultPath)
	viper.SetDefault("journal.enabled", true)
	viper.SetDefault("journal.retention_days", config.DefaultRetentionDays)
	viper.SetDefault("index.enabled", true)

	_ = viper.ReadInConfig()
}

// initLogging wires the logging system from the loaded configuration.
func initLogging(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logCfg := logging.Config{
		Level:      cfg.Logging.Level,
		Path:       cfg.Logging.Path,
		Components: cfg.Logging.Components,
	}
	if logCfg.Path == "" {
		if err := config.EnsureStateDir(); err != nil {
			return err
		}
	}
	if getVerbose() {
		logCfg.ConsoleLevel = "debug"
	} else if cfg.Logging.ConsoleLevel != "" {
		logCfg.ConsoleLevel = cfg.Logging.ConsoleLevel
	}

	return logging.Init(logCfg)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getJSON returns true if JSON output is requested.
func getJSON() bool {
	return viper.GetBool("json")
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printInfo prints a message if quiet mode is not enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// resolvePath expands ~ and resolves path to an absolute path.
func resolvePath(path string) (string, error) {
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand path: %w", err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	return abs, nil
}
