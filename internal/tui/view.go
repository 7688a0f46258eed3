package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/todo/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeAdd:
		content = m.viewAdd()
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the list screen.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewSelectors())
	b.WriteString("\n\n")
	b.WriteString(m.viewTaskList())
	b.WriteString("\n")
	b.WriteString(m.viewToast())
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the title with the counters right-aligned.
// A failed bootstrap replaces the counters with the error.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Todos")

	var right string
	switch {
	case m.loading:
		right = m.styles.Counts.Render("Loading tasks...")
	case m.bootstrapErr != nil:
		right = m.styles.LoadError.Render("Failed to load tasks: " + m.bootstrapErr.Error())
	default:
		c := m.view.Counts
		right = m.styles.Counts.Render(fmt.Sprintf("Total: %d | Completed: %d", c.Total, c.Completed))
	}

	headerWidth := m.width - 4
	spacing := headerWidth - lipgloss.Width(title) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + right)
}

// viewSelectors renders the filter and sort choices with the current one highlighted.
func (m *Model) viewSelectors() string {
	var b strings.Builder

	b.WriteString(m.styles.SelectorLabel.Render("Filter:"))
	for _, f := range domain.AllFilters() {
		b.WriteString(" ")
		b.WriteString(m.option(f.Display(), f == m.view.Filter))
	}

	b.WriteString("   ")
	b.WriteString(m.styles.SelectorLabel.Render("Sort:"))
	for _, s := range domain.AllSortModes() {
		b.WriteString(" ")
		b.WriteString(m.option(s.Display(), s == m.view.Sort))
	}

	return b.String()
}

func (m *Model) option(label string, active bool) string {
	if active {
		return m.styles.SelectorActive.Render(label)
	}
	return m.styles.SelectorOption.Render(label)
}

// viewTaskList renders the projected tasks.
func (m *Model) viewTaskList() string {
	if len(m.view.Tasks) == 0 {
		return m.viewEmptyState()
	}
	return m.taskList.View()
}

func (m *Model) viewEmptyState() string {
	msg := "No todos yet. Press a to add one."
	if m.view.Counts.Total > 0 {
		msg = "No todos match the filter."
		if m.view.Filter == domain.FilterActive && m.view.Counts.Active() == 0 {
			msg = "All todos are done."
		}
	}
	return m.styles.EmptyState.Render(msg)
}

// viewToast renders the latest notice, if any.
func (m *Model) viewToast() string {
	if m.toast == nil {
		return "\n"
	}
	text := m.toast.Title + ": " + m.toast.Detail
	return m.styles.NoticeStyle(m.toast.Kind).Render(text) + "\n"
}

func (m *Model) viewFooter() string {
	return m.styles.Footer.Render(m.help.View(m.keys))
}

// viewAdd renders the add screen.
func (m *Model) viewAdd() string {
	var b strings.Builder

	b.WriteString(m.styles.InputTitle.Render("New Todo"))
	b.WriteString("\n")
	b.WriteString(m.styles.InputPrompt.Render("Title: "))
	b.WriteString(m.titleInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewToast())
	b.WriteString(m.styles.Footer.Render("enter add · esc cancel"))

	return b.String()
}

// viewHelp renders the full keybinding help.
func (m *Model) viewHelp() string {
	var b strings.Builder

	b.WriteString(m.styles.HeaderText.Render("Keybindings"))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("? or esc to close"))

	return b.String()
}
