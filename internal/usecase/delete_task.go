package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	ID domain.TaskID // Task ID to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Found bool // False when no task had the ID
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	store    domain.TaskStore
	notifier domain.Notifier
	logger   domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(store domain.TaskStore, notifier domain.Notifier, logger domain.Logger) *DeleteTask {
	if notifier == nil {
		notifier = domain.NopNotifier{}
	}
	return &DeleteTask{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute removes the task with the given ID.
// Deleting an unknown ID is idempotent and sends no notice.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	before := uc.store.State().Len()
	after := uc.store.Dispatch(domain.ActionDelete{ID: in.ID}).Len()
	if after == before {
		return &DeleteTaskOutput{}, nil
	}

	uc.notifier.Notify(domain.NoticeTaskDeleted())
	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("deleted #%d", in.ID))
	}

	return &DeleteTaskOutput{Found: true}, nil
}
