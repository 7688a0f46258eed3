package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling a task.
type ToggleTaskInput struct {
	ID domain.TaskID // Task to toggle
}

// ToggleTaskOutput contains the result of toggling a task.
type ToggleTaskOutput struct {
	Task  domain.Task // The task after the toggle (zero if not found)
	Found bool        // False when no task has the ID
}

// ToggleTask is the use case for flipping a task's completed flag.
type ToggleTask struct {
	store    domain.TaskStore
	notifier domain.Notifier
	logger   domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(store domain.TaskStore, notifier domain.Notifier, logger domain.Logger) *ToggleTask {
	if notifier == nil {
		notifier = domain.NopNotifier{}
	}
	return &ToggleTask{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute toggles the task. An unknown ID is a silent no-op.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	state := uc.store.Dispatch(domain.ActionToggle{ID: in.ID})

	task, ok := state.Find(in.ID)
	if !ok {
		return &ToggleTaskOutput{}, nil
	}

	uc.notifier.Notify(domain.NoticeTaskToggled(task))
	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("toggled #%d: %s", task.ID, task.StateText()))
	}

	return &ToggleTaskOutput{Task: task, Found: true}, nil
}
