package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/todo/internal/domain"
)

type taskItem struct {
	task domain.Task
}

func (t taskItem) FilterValue() string {
	return t.task.Title
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

type taskDelegate struct {
	styles Styles
}

func newTaskDelegate(styles Styles) taskDelegate {
	return taskDelegate{styles: styles}
}

func (d taskDelegate) Height() int {
	return 1
}

func (d taskDelegate) Spacing() int {
	return 0
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws one row: indicator, checkbox, title and creation date.
func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	indicator := " "
	if selected {
		indicator = ">"
	}

	check := "[ ]"
	if task.Completed {
		check = "[x]"
	}

	date := ""
	if !task.CreatedAt.IsZero() {
		date = task.CreatedAt.Local().Format("2006-01-02")
	}

	// "  > [x] " prefix plus a gap before the date
	prefixWidth := 8
	maxTitleLen := m.Width() - prefixWidth - runewidth.StringWidth(date) - 2
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}

	title := escapeNewlines(task.Title)
	if runewidth.StringWidth(title) > maxTitleLen {
		title = runewidth.Truncate(title, maxTitleLen, "...")
	}
	gap := maxTitleLen - runewidth.StringWidth(title) + 2

	titleStyle := d.styles.TaskTitle
	if selected {
		titleStyle = d.styles.TaskTitleSelected
	}
	if task.Completed {
		titleStyle = d.styles.TaskDone.Bold(selected)
	}

	line := "  " + d.styles.SelectionIndicator.Render(indicator) + " " +
		titleStyle.Render(check) + " " +
		titleStyle.Render(title)
	if date != "" {
		line += fmt.Sprintf("%*s", gap, "") + d.styles.TaskDate.Render(date)
	}
	_, _ = fmt.Fprint(w, line)
}
