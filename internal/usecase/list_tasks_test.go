package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

func TestListTasks_Execute(t *testing.T) {
	store := newStore(
		domain.Task{ID: 3, Completed: true},
		domain.Task{ID: 1, Completed: true},
		domain.Task{ID: 2},
	)
	store.Dispatch(domain.ActionSetFilter{Filter: domain.FilterActive})
	uc := usecase.NewListTasks(store)

	out, err := uc.Execute(context.Background(), usecase.ListTasksInput{})

	require.NoError(t, err)
	assert.Equal(t, []domain.Task{{ID: 2}}, out.Tasks)
	assert.Equal(t, domain.Counts{Total: 3, Completed: 2}, out.Counts)
	assert.Equal(t, domain.FilterActive, out.Filter)
	assert.Equal(t, domain.SortByID, out.Sort)
}
