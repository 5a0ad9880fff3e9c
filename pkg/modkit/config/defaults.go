// Package config provides configuration management for the modkit tool.
package config

// Default configuration values for modkit.
const (
	// DefaultTreeDepth is how many levels below the workspace root the
	// tree view expands.
	DefaultTreeDepth = 3

	// DefaultPath is the workspace to open when none is specified.
	DefaultPath = "."

	// DefaultConfigDir is the default configuration directory path.
	DefaultConfigDir = "~/.config/modkit"

	// DefaultJournalDir is the default directory for journal entries.
	DefaultJournalDir = "~/.config/modkit/.journal"

	// DefaultRetentionDays is the default number of days to retain
	// journal entries.
	DefaultRetentionDays = 30
)

// DefaultProjectExtensions are the file extensions treated as project
// documents by default.
var DefaultProjectExtensions = []string{
	".r5v",
	".r5vproj",
}
