package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateLayoutSizes()
		return m, nil

	case MsgBootstrapped:
		m.loading = false
		m.bootstrapErr = msg.Err
		m.refresh()
		return m, nil

	case MsgClearToast:
		if msg.Seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil
	}

	if m.mode.IsInputMode() {
		var cmd tea.Cmd
		m.titleInput, cmd = m.titleInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeAdd:
		return m.handleAddMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}
	return m, nil
}

// handleNormalMode handles keys on the list screen.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.Toggle):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		_, _ = m.container.ToggleTaskUseCase(m.notifier).Execute(ctx, usecase.ToggleTaskInput{ID: task.ID})
		m.refresh()
		return m, m.toastCmd()

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.SelectedTask()
		if !ok {
			return m, nil
		}
		_, _ = m.container.DeleteTaskUseCase(m.notifier).Execute(ctx, usecase.DeleteTaskInput{ID: task.ID})
		m.refresh()
		return m, m.toastCmd()

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAdd
		m.titleInput.Reset()
		return m, m.titleInput.Focus()

	case key.Matches(msg, m.keys.Filter):
		return m.setFilter(m.view.Filter.Next())
	case key.Matches(msg, m.keys.FilterAll):
		return m.setFilter(domain.FilterAll)
	case key.Matches(msg, m.keys.FilterActive):
		return m.setFilter(domain.FilterActive)
	case key.Matches(msg, m.keys.FilterDone):
		return m.setFilter(domain.FilterDone)

	case key.Matches(msg, m.keys.Sort):
		_, _ = m.container.SetSortUseCase().Execute(ctx, usecase.SetSortInput{Sort: m.view.Sort.Next()})
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		m.help.ShowAll = true
		return m, nil
	}

	return m, nil
}

func (m *Model) setFilter(f domain.Filter) (tea.Model, tea.Cmd) {
	_, _ = m.container.SetFilterUseCase().Execute(context.Background(), usecase.SetFilterInput{Filter: f})
	m.refresh()
	m.taskList.Select(0)
	return m, nil
}

// handleAddMode handles keys on the add screen.
// A rejected title keeps the screen open; the notice explains why.
func (m *Model) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.titleInput.Blur()
		m.titleInput.Reset()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		_, err := m.container.AddTaskUseCase(m.notifier).Execute(context.Background(), usecase.AddTaskInput{
			Title: m.titleInput.Value(),
		})
		if errors.Is(err, domain.ErrEmptyTitle) {
			return m, m.toastCmd()
		}
		m.mode = ModeNormal
		m.titleInput.Blur()
		m.titleInput.Reset()
		m.refresh()
		return m, m.toastCmd()
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

// handleHelpMode closes the help overlay.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.help.ShowAll = false
	}
	return m, nil
}
