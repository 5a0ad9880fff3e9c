package output

import "github.com/charmbracelet/lipgloss"

// Color constants using the ANSI 256-color palette.
const (
	// ColorPrimary is used for folders and headers (bright blue).
	ColorPrimary = lipgloss.Color("39")

	// ColorSuccess is used for positive status indicators (green).
	ColorSuccess = lipgloss.Color("42")

	// ColorWarning is used for warnings such as skipped entries (orange).
	ColorWarning = lipgloss.Color("214")

	// ColorMuted is used for secondary text like branch glyphs (gray).
	ColorMuted = lipgloss.Color("245")
)

// Text styles for tree and summary rendering.
var (
	// FolderStyle is used for folder names in the tree.
	FolderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// FileStyle is used for file names in the tree.
	FileStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	// BranchStyle is used for the tree branch glyphs.
	BranchStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// LabelStyle is used for summary field labels.
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// WarnStyle is used for skip warnings.
	WarnStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)
