package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// SetFilterInput contains the filter to apply.
type SetFilterInput struct {
	Filter domain.Filter // Not validated; unknown values behave like "all"
}

// SetFilterOutput contains the filter now in effect.
type SetFilterOutput struct {
	Filter domain.Filter
}

// SetFilter is the use case for changing the filter preference.
type SetFilter struct {
	store domain.TaskStore
}

// NewSetFilter creates a new SetFilter use case.
func NewSetFilter(store domain.TaskStore) *SetFilter {
	return &SetFilter{store: store}
}

// Execute sets the filter.
func (uc *SetFilter) Execute(_ context.Context, in SetFilterInput) (*SetFilterOutput, error) {
	state := uc.store.Dispatch(domain.ActionSetFilter{Filter: in.Filter})
	return &SetFilterOutput{Filter: state.Filter}, nil
}

// SetSortInput contains the sort mode to apply.
type SetSortInput struct {
	Sort domain.SortMode // Not validated; unknown values keep insertion order
}

// SetSortOutput contains the sort mode now in effect.
type SetSortOutput struct {
	Sort domain.SortMode
}

// SetSort is the use case for changing the sort preference.
type SetSort struct {
	store domain.TaskStore
}

// NewSetSort creates a new SetSort use case.
func NewSetSort(store domain.TaskStore) *SetSort {
	return &SetSort{store: store}
}

// Execute sets the sort mode.
func (uc *SetSort) Execute(_ context.Context, in SetSortInput) (*SetSortOutput, error) {
	state := uc.store.Dispatch(domain.ActionSetSort{Sort: in.Sort})
	return &SetSortOutput{Sort: state.Sort}, nil
}
