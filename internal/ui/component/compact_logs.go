package component

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/rovshanmuradov/token-settings/internal/logger"
	"github.com/rovshanmuradov/token-settings/internal/ui/style"
)

const recentLogLimit = 50

// LogFilter defines what log levels to show
type LogFilter struct {
	ShowError   bool
	ShowWarning bool
	ShowInfo    bool
	ShowDebug   bool
}

// LogSource is what the viewer reads entries from.
type LogSource interface {
	GetRecentLogs(limit int) []logger.LogEntry
}

// CompactLogViewer renders the newest log entries in a bordered pane.
type CompactLogViewer struct {
	source   LogSource
	viewport viewport.Model
	filter   LogFilter
	style    CompactLogStyle
	title    string
}

// CompactLogStyle contains all styling for the log viewer
type CompactLogStyle struct {
	container lipgloss.Style
	title     lipgloss.Style
	entry     lipgloss.Style
	timestamp lipgloss.Style
	error     lipgloss.Style
	warning   lipgloss.Style
	info      lipgloss.Style
	debug     lipgloss.Style
}

// NewCompactLogViewer creates a new compact log viewer
func NewCompactLogViewer(source LogSource) *CompactLogViewer {
	palette := style.DefaultPalette()

	return &CompactLogViewer{
		source: source,
		title:  "Console",
		filter: LogFilter{
			ShowError:   true,
			ShowWarning: true,
			ShowInfo:    true,
		},
		style: CompactLogStyle{
			container: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(palette.TextMuted).
				Padding(0, 1).
				MarginTop(1),

			title: lipgloss.NewStyle().
				Foreground(palette.TextSecondary).
				Bold(true),

			entry: lipgloss.NewStyle().
				Foreground(palette.Text),

			timestamp: lipgloss.NewStyle().
				Foreground(palette.TextMuted),

			error: lipgloss.NewStyle().
				Foreground(palette.Error).
				Bold(true),

			warning: lipgloss.NewStyle().
				Foreground(palette.Warning),

			info: lipgloss.NewStyle().
				Foreground(palette.Text),

			debug: lipgloss.NewStyle().
				Foreground(palette.TextMuted),
		},
		viewport: viewport.New(50, 6),
	}
}

// SetSize sets the component dimensions
func (clv *CompactLogViewer) SetSize(width, height int) {
	clv.style.container = clv.style.container.Width(width - 2)

	viewportHeight := height - 3 // Border + title
	if viewportHeight < 2 {
		viewportHeight = 2
	}
	clv.viewport.Width = width - 4
	clv.viewport.Height = viewportHeight
}

// ToggleDebug shows or hides debug entries.
func (clv *CompactLogViewer) ToggleDebug() {
	clv.filter.ShowDebug = !clv.filter.ShowDebug
}

// ShowsDebug reports whether debug entries are visible.
func (clv *CompactLogViewer) ShowsDebug() bool {
	return clv.filter.ShowDebug
}

// View renders the compact log viewer
func (clv *CompactLogViewer) View() string {
	clv.viewport.SetContent(clv.content())
	clv.viewport.GotoBottom()

	return clv.style.container.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		clv.style.title.Render(clv.title),
		clv.viewport.View(),
	))
}

// content returns the filtered, formatted entries, one per line.
func (clv *CompactLogViewer) content() string {
	if clv.source == nil {
		return "No log buffer available"
	}

	var lines []string
	for _, entry := range clv.source.GetRecentLogs(recentLogLimit) {
		if clv.shouldShowEntry(entry) {
			lines = append(lines, clv.formatLogEntry(entry))
		}
	}
	if len(lines) == 0 {
		return "No logs yet"
	}
	return strings.Join(lines, "\n")
}

// shouldShowEntry determines if a log entry should be displayed based on filter
func (clv *CompactLogViewer) shouldShowEntry(entry logger.LogEntry) bool {
	switch strings.ToLower(entry.Level) {
	case "error", "dpanic", "panic", "fatal":
		return clv.filter.ShowError
	case "warning", "warn":
		return clv.filter.ShowWarning
	case "debug":
		return clv.filter.ShowDebug
	default:
		return clv.filter.ShowInfo
	}
}

// formatLogEntry formats a log entry for display
func (clv *CompactLogViewer) formatLogEntry(entry logger.LogEntry) string {
	timestamp := clv.style.timestamp.Render(entry.Timestamp.Format("15:04:05"))

	var styled string
	switch strings.ToLower(entry.Level) {
	case "error", "dpanic", "panic", "fatal":
		styled = clv.style.error.Render(entry.Message)
	case "warning", "warn":
		styled = clv.style.warning.Render(entry.Message)
	case "info":
		styled = clv.style.info.Render(entry.Message)
	case "debug":
		styled = clv.style.debug.Render(entry.Message)
	default:
		styled = clv.style.entry.Render(entry.Message)
	}

	return fmt.Sprintf("%s %s", timestamp, styled)
}
