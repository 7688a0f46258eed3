package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

func TestSetFilter_Execute(t *testing.T) {
	store := newStore(domain.Task{ID: 2}, domain.Task{ID: 1, Completed: true})
	uc := usecase.NewSetFilter(store)

	out, err := uc.Execute(context.Background(), usecase.SetFilterInput{Filter: domain.FilterDone})

	require.NoError(t, err)
	assert.Equal(t, domain.FilterDone, out.Filter)
	assert.Equal(t, []domain.Task{{ID: 1, Completed: true}}, store.View())
}

func TestSetFilter_Execute_PassThrough(t *testing.T) {
	store := newStore(domain.Task{ID: 2}, domain.Task{ID: 1, Completed: true})
	uc := usecase.NewSetFilter(store)

	out, err := uc.Execute(context.Background(), usecase.SetFilterInput{Filter: "bogus"})

	require.NoError(t, err)
	assert.Equal(t, domain.Filter("bogus"), out.Filter)
	assert.Len(t, store.View(), 2)
}

func TestSetSort_Execute(t *testing.T) {
	old := domain.Task{ID: 1, CreatedAt: fixedNow.AddDate(0, -1, 0)}
	recent := domain.Task{ID: 2, CreatedAt: fixedNow}
	store := newStore(old, recent)
	uc := usecase.NewSetSort(store)

	out, err := uc.Execute(context.Background(), usecase.SetSortInput{Sort: domain.SortRecent})

	require.NoError(t, err)
	assert.Equal(t, domain.SortRecent, out.Sort)
	assert.Equal(t, []domain.Task{recent, old}, store.View())
}
