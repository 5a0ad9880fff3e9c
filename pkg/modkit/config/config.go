package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level        string            `mapstructure:"level"`
	Path         string            `mapstructure:"path"`
	ConsoleLevel string            `mapstructure:"console_level"`
	Components   map[string]string `mapstructure:"components"`
}

// JournalConfig configures the operation journal.
type JournalConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	Path          string `mapstructure:"path"`
	RetentionDays int    `mapstructure:"retention_days"`
}

// IndexConfig configures the recent-workspace index.
type IndexConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"` // Empty means use default XDG path
}

// Config represents the application configuration.
type Config struct {
	TreeDepth         int           `mapstructure:"tree_depth"`
	DefaultPath       string        `mapstructure:"default_path"`
	ProjectExtensions []string      `mapstructure:"project_extensions"`
	Journal           JournalConfig `mapstructure:"journal"`
	Index             IndexConfig   `mapstructure:"index"`
	Logging           LoggingConfig `mapstructure:"logging"`
}

// Load loads configuration from file and environment variables.
// Config file locations (in order of precedence):
//   - $XDG_CONFIG_HOME/modkit/config.yaml
//   - $HOME/.config/modkit/config.yaml
//
// Environment variables are prefixed with MODKIT_ (e.g., MODKIT_TREE_DEPTH).
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		v.AddConfigPath(filepath.Join(xdgConfigHome, "modkit"))
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	v.AddConfigPath(filepath.Join(homeDir, ".config", "modkit"))

	v.SetEnvPrefix("MODKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, homeDir)

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if strings.HasPrefix(cfg.Journal.Path, "~") {
		cfg.Journal.Path = filepath.Join(homeDir, cfg.Journal.Path[1:])
	}

	return &cfg, nil
}

// setDefaults registers default values on the given viper instance.
func setDefaults(v *viper.Viper, homeDir string) {
	v.SetDefault("tree_depth", DefaultTreeDepth)
	v.SetDefault("default_path", DefaultPath)
	v.SetDefault("project_extensions", DefaultProjectExtensions)

	v.SetDefault("journal.enabled", true)
	v.SetDefault("journal.path", filepath.Join(homeDir, ".config", "modkit", ".journal"))
	v.SetDefault("journal.retention_days", DefaultRetentionDays)

	v.SetDefault("index.enabled", true)
	v.SetDefault("index.path", "") // Empty means use DefaultIndexPath

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.path", "") // Empty means use DefaultLogPath
	v.SetDefault("logging.console_level", "")
	v.SetDefault("logging.components", map[string]string{
		"workspace": "info",
		"container": "info",
		"watcher":   "warn",
		"scaffold":  "info",
	})
}

// ConfigDir returns the configuration directory path.
func ConfigDir() (string, error) {
	if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, "modkit"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "modkit"), nil
}

// JournalDir returns the journal directory path.
func JournalDir() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ".journal"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}

// WriteDefault writes a default config file if none exists.
// Returns nil if a config file already exists.
func WriteDefault() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	configDir, err := ConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	journalDir, err := JournalDir()
	if err != nil {
		return err
	}

	defaultConfig := fmt.Sprintf(`# Modkit Configuration

# How many levels below the workspace root the tree view expands
tree_depth: %d

# Default workspace to open when none is specified
default_path: %s

# File extensions treated as project documents
project_extensions:
  - .r5v
  - .r5vproj

# Journal settings for tracking project writes and scaffolds
journal:
  enabled: true
  path: %s
  retention_days: %d

# Recent-workspace index
index:
  enabled: true
  # Index path (empty means use default: $XDG_DATA_HOME/modkit/index)
  path: ""

# Logging configuration
logging:
  # Log level: debug, info, warn, error
  level: info
  # Log file path (empty means use default: $XDG_STATE_HOME/modkit/modkit.log)
  path: ""
  # Console output level (empty disables console logging)
  console_level: ""
  # Per-component log levels
  components:
    workspace: info
    container: info
    watcher: warn
    scaffold: info
`, DefaultTreeDepth, DefaultPath, journalDir, DefaultRetentionDays)

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write default config: %w", err)
	}

	return nil
}

// ExpandPath expands ~ in a path to the user's home directory.
func ExpandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, path[1:]), nil
}

// DataDir returns $XDG_DATA_HOME/modkit/ for the recent-workspace index.
func DataDir() string {
	return filepath.Join(xdg.DataHome, "modkit")
}

// StateDir returns $XDG_STATE_HOME/modkit/ for log files.
func StateDir() string {
	return filepath.Join(xdg.StateHome, "modkit")
}

// DefaultIndexPath returns the default recent-workspace index path.
func DefaultIndexPath() string {
	return filepath.Join(DataDir(), "index")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(StateDir(), "modkit.log")
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	if err := os.MkdirAll(DataDir(), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	return nil
}

// EnsureStateDir creates the state directory if it doesn't exist.
func EnsureStateDir() error {
	if err := os.MkdirAll(StateDir(), 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}
	return nil
}
