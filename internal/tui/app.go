package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container    *app.Container
	toast        *domain.Notice
	bootstrapErr error
	notifier     domain.Notifier

	// Projection from the last refresh
	view usecase.ListTasksOutput

	// Components (structs with pointers)
	keys       KeyMap
	styles     Styles
	help       help.Model
	taskList   list.Model
	titleInput textinput.Model

	// Numeric state (smaller types last)
	mode     Mode
	width    int
	height   int
	toastSeq int
	loading  bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200

	styles := DefaultStyles()
	taskList := list.New([]list.Item{}, newTaskDelegate(styles), 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()

	m := &Model{
		container:  c,
		mode:       ModeNormal,
		keys:       DefaultKeyMap(),
		styles:     styles,
		help:       help.New(),
		taskList:   taskList,
		titleInput: ti,
		loading:    true,
	}
	m.notifier = domain.NotifierFunc(m.showToast)
	m.refresh()
	return m
}

// Init starts the bootstrap. It runs once per session.
func (m *Model) Init() tea.Cmd {
	return m.bootstrap()
}

// bootstrap returns a command that fills the store from the task source.
func (m *Model) bootstrap() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.BootstrapUseCase().Execute(context.Background(), usecase.BootstrapInput{
			Limit: m.container.AppConfig.Source.Limit,
		})
		return MsgBootstrapped{Output: out, Err: err}
	}
}

// showToast records n as the current toast.
func (m *Model) showToast(n domain.Notice) {
	m.toast = &n
	m.toastSeq++
}

// toastCmd schedules clearing of the current toast.
func (m *Model) toastCmd() tea.Cmd {
	if m.toast == nil {
		return nil
	}
	return clearToastAfter(toastDuration, m.toastSeq)
}

// refresh reloads the projection and counters from the store.
func (m *Model) refresh() {
	out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
	if err != nil {
		return
	}
	m.view = *out

	items := make([]list.Item, 0, len(out.Tasks))
	for _, task := range out.Tasks {
		items = append(items, taskItem{task: task})
	}
	m.taskList.SetItems(items)
	if n := len(items); n > 0 && m.taskList.Index() >= n {
		m.taskList.Select(n - 1)
	}
}

// SelectedTask returns the currently selected task.
func (m *Model) SelectedTask() (domain.Task, bool) {
	ti, ok := m.taskList.SelectedItem().(taskItem)
	if !ok {
		return domain.Task{}, false
	}
	return ti.task, true
}

// updateLayoutSizes fits the list into the space left by the header and footer.
func (m *Model) updateLayoutSizes() {
	// App padding, header, selectors, toast and footer
	reserved := 12
	height := m.height - reserved
	if height < 3 {
		height = 3
	}
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	m.taskList.SetSize(width, height)
	m.titleInput.Width = width - 4
}
