package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/todo/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Muted         lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	Done          lipgloss.Color
}{
	Primary:       lipgloss.Color("#6C5CE7"), // Purple
	Secondary:     lipgloss.Color("#A29BFE"), // Lavender
	Muted:         lipgloss.Color("#636E72"), // Gray
	Error:         lipgloss.Color("#D63031"), // Red
	Success:       lipgloss.Color("#00B894"), // Green
	Warning:       lipgloss.Color("#FDCB6E"), // Yellow
	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	Done:          lipgloss.Color("#636E72"), // Gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	Counts     lipgloss.Style
	LoadError  lipgloss.Style

	// Filter and sort selectors
	SelectorLabel  lipgloss.Style
	SelectorOption lipgloss.Style
	SelectorActive lipgloss.Style

	// Task list
	SelectionIndicator lipgloss.Style
	TaskTitle          lipgloss.Style
	TaskTitleSelected  lipgloss.Style
	TaskDone           lipgloss.Style
	TaskDate           lipgloss.Style
	EmptyState         lipgloss.Style

	// Add screen
	InputTitle  lipgloss.Style
	InputPrompt lipgloss.Style

	// Toasts
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastInfo    lipgloss.Style

	// Footer
	Footer lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Header: lipgloss.NewStyle().
			MarginBottom(1),
		HeaderText: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		Counts: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		LoadError: lipgloss.NewStyle().
			Foreground(Colors.Error),

		SelectorLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		SelectorOption: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal).
			Padding(0, 1),
		SelectorActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected).
			Background(Colors.Primary).
			Padding(0, 1),

		SelectionIndicator: lipgloss.NewStyle().
			Foreground(Colors.Primary),
		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),
		TaskTitleSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),
		TaskDone: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(Colors.Done),
		TaskDate: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		EmptyState: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		InputTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),
		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		ToastSuccess: lipgloss.NewStyle().
			Foreground(Colors.Success),
		ToastError: lipgloss.NewStyle().
			Foreground(Colors.Error),
		ToastInfo: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),
	}
}

// NoticeStyle returns the toast style for a notice kind.
func (s Styles) NoticeStyle(kind domain.NoticeKind) lipgloss.Style {
	switch kind {
	case domain.NoticeSuccess:
		return s.ToastSuccess
	case domain.NoticeError:
		return s.ToastError
	case domain.NoticeInfo:
		return s.ToastInfo
	}
	return s.ToastInfo
}
