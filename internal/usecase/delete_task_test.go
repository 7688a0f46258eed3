package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/runoshun/todo/internal/usecase"
)

func TestDeleteTask_Execute(t *testing.T) {
	store := newStore(domain.Task{ID: 1}, domain.Task{ID: 2})
	notifier := &testutil.MockNotifier{}
	logger := &testutil.MockLogger{}
	uc := usecase.NewDeleteTask(store, notifier, logger)

	out, err := uc.Execute(context.Background(), usecase.DeleteTaskInput{ID: 1})

	require.NoError(t, err)
	assert.True(t, out.Found)
	assert.Equal(t, []domain.Task{{ID: 2}}, store.State().Items())
	assert.Equal(t, []domain.Notice{domain.NoticeTaskDeleted()}, notifier.Notices)
	assert.Len(t, logger.ByLevel("info"), 1)
}

func TestDeleteTask_Execute_MissingTwice(t *testing.T) {
	store := newStore(domain.Task{ID: 1})
	before := store.State()
	notifier := &testutil.MockNotifier{}
	uc := usecase.NewDeleteTask(store, notifier, nil)

	for i := 0; i < 2; i++ {
		out, err := uc.Execute(context.Background(), usecase.DeleteTaskInput{ID: 9})
		require.NoError(t, err)
		assert.False(t, out.Found)
	}

	assert.Equal(t, before, store.State())
	assert.Empty(t, notifier.Notices)
}
