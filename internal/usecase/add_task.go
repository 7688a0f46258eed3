// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/todo/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Title string // Task title (required, stored as given)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task domain.Task // The created task
}

// AddTask is the use case for adding a task.
type AddTask struct {
	store    domain.TaskStore
	clock    domain.Clock
	notifier domain.Notifier
	logger   domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store domain.TaskStore, clock domain.Clock, notifier domain.Notifier, logger domain.Logger) *AddTask {
	if notifier == nil {
		notifier = domain.NopNotifier{}
	}
	return &AddTask{
		store:    store,
		clock:    clock,
		notifier: notifier,
		logger:   logger,
	}
}

// Execute validates the title, mints an ID and appends the task.
// A blank title is rejected with domain.ErrEmptyTitle and leaves the store untouched.
// Other titles are stored verbatim, surrounding whitespace included.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if strings.TrimSpace(in.Title) == "" {
		uc.notifier.Notify(domain.NoticeEmptyTitle())
		return nil, domain.ErrEmptyTitle
	}

	now := uc.clock.Now()
	task := domain.Task{
		ID:        nextTaskID(uc.store.State(), now.UnixMilli()),
		Title:     in.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	uc.store.Dispatch(domain.ActionAdd{Task: task})
	uc.notifier.Notify(domain.NoticeTaskAdded())

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("added #%d: %q", task.ID, task.Title))
	}

	return &AddTaskOutput{Task: task}, nil
}

// nextTaskID returns candidate unless an existing task already uses it,
// in which case it returns one more than the largest existing ID.
func nextTaskID(s domain.State, candidate int64) domain.TaskID {
	id := domain.TaskID(candidate)
	if _, exists := s.Find(id); exists {
		return s.MaxID() + 1
	}
	return id
}
