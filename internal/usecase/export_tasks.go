package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/runoshun/todo/internal/domain"
)

// ExportTasksInput contains the parameters for exporting tasks.
type ExportTasksInput struct {
	Writer io.Writer           // Destination
	Format domain.ExportFormat // yaml or json
}

// ExportTasksOutput contains the result of exporting tasks.
type ExportTasksOutput struct {
	Count int // Number of tasks written
}

// ExportTasks is the use case for writing the projection in a serialization format.
type ExportTasks struct {
	store   domain.TaskStore
	encoder domain.TaskEncoder
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(store domain.TaskStore, encoder domain.TaskEncoder) *ExportTasks {
	return &ExportTasks{
		store:   store,
		encoder: encoder,
	}
}

// Execute writes the current projection to in.Writer.
func (uc *ExportTasks) Execute(_ context.Context, in ExportTasksInput) (*ExportTasksOutput, error) {
	tasks := uc.store.View()
	if err := uc.encoder.Encode(in.Writer, in.Format, tasks); err != nil {
		return nil, fmt.Errorf("export tasks: %w", err)
	}
	return &ExportTasksOutput{Count: len(tasks)}, nil
}
