package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/todo/internal/usecase"
)

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgBootstrapped is sent once the initial fetch has finished.
type MsgBootstrapped struct {
	Output *usecase.BootstrapOutput
	Err    error
}

func (MsgBootstrapped) sealed() {}

// MsgClearToast is sent when a toast has been displayed long enough.
// Seq identifies the toast so a newer one is not cleared early.
type MsgClearToast struct {
	Seq int
}

func (MsgClearToast) sealed() {}

// toastDuration is how long a notice stays on screen.
const toastDuration = 3 * time.Second

// clearToastAfter returns a command that clears toast seq after d.
func clearToastAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return MsgClearToast{Seq: seq}
	})
}
