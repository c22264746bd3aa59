package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - chosen for readable contrast on both black and dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Status colors for the task sidebar
	StatusQueued    = lipgloss.Color("#9CA3AF") // Gray
	StatusRunning   = lipgloss.Color("#10B981") // Green
	StatusCompleted = lipgloss.Color("#A78BFA") // Purple
	StatusFailed    = lipgloss.Color("#F87171") // Red
	StatusCancelled = lipgloss.Color("#FB923C") // Orange

	// Header
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor)

	// Sidebar styles
	Sidebar = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	SidebarSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(SurfaceColor)

	SidebarTailing = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	// Log pane
	LogPane = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	// Confirmation overlay
	ConfirmBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(WarningColor).
			Padding(1, 3)

	// Submission input box
	InputBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	// Footer / status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SurfaceColor).
			Padding(0, 1)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)
)

// StatusColor maps a task status reported by the service to a display
// color. Statuses are opaque strings owned by the service, so unknown
// values fall back to the muted color rather than erroring.
func StatusColor(status string) lipgloss.Color {
	switch status {
	case "queued", "pending":
		return StatusQueued
	case "running", "in_progress":
		return StatusRunning
	case "completed", "done":
		return StatusCompleted
	case "failed", "error":
		return StatusFailed
	case "cancelled":
		return StatusCancelled
	default:
		return MutedColor
	}
}
