package usecase_test

import (
	"time"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/testutil"
)

var fixedNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func newStore(tasks ...domain.Task) *memstore.Store {
	return memstore.New(domain.DefaultState().ReplaceAll(tasks))
}

func newClock() *testutil.MockClock {
	return &testutil.MockClock{NowTime: fixedNow}
}
