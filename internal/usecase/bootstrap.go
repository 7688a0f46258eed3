package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// BootstrapInput contains the parameters for the initial load.
type BootstrapInput struct {
	Limit int // Number of tasks kept from the source (<= 0 uses the default)
}

// BootstrapOutput contains the result of the initial load.
type BootstrapOutput struct {
	Fetched    int // Elements in the source payload
	Loaded     int // Tasks placed into the store
	Skipped    int // Malformed elements within the limit
	Duplicates int // Later tasks dropped for reusing an ID
}

// Bootstrap is the use case for seeding the store from the task source.
type Bootstrap struct {
	store  domain.TaskStore
	source domain.TaskSource
	logger domain.Logger
}

// NewBootstrap creates a new Bootstrap use case.
func NewBootstrap(store domain.TaskStore, source domain.TaskSource, logger domain.Logger) *Bootstrap {
	return &Bootstrap{
		store:  store,
		source: source,
		logger: logger,
	}
}

// Execute fetches the first Limit tasks, drops repeated IDs and replaces
// the store contents. Malformed elements are logged and skipped. On a fetch error the store is left
// unchanged and the logged error is returned for the caller to report.
func (uc *Bootstrap) Execute(ctx context.Context, in BootstrapInput) (*BootstrapOutput, error) {
	if uc.source == nil {
		if uc.logger != nil {
			uc.logger.Info("bootstrap", "no task source configured")
		}
		return &BootstrapOutput{}, nil
	}

	limit := in.Limit
	if limit <= 0 {
		limit = domain.DefaultFetchLimit
	}

	res, err := uc.source.Fetch(ctx, limit)
	if err != nil {
		err = fmt.Errorf("fetch tasks: %w", err)
		if uc.logger != nil {
			uc.logger.Error("bootstrap", err.Error())
		}
		return nil, err
	}

	for _, reason := range res.Skipped {
		if uc.logger != nil {
			uc.logger.Warn("bootstrap", "skipping malformed task: "+reason)
		}
	}

	tasks := res.Tasks[:min(len(res.Tasks), limit)]

	seen := make(map[domain.TaskID]struct{}, len(tasks))
	unique := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			if uc.logger != nil {
				uc.logger.Warn("bootstrap", fmt.Sprintf("dropping duplicate id %d (%q)", t.ID, t.Title))
			}
			continue
		}
		seen[t.ID] = struct{}{}
		unique = append(unique, t)
	}

	uc.store.Dispatch(domain.ActionReplaceAll{Tasks: unique})
	if uc.logger != nil {
		uc.logger.Info("bootstrap", fmt.Sprintf("loaded %d of %d tasks", len(unique), res.Total))
	}

	return &BootstrapOutput{
		Fetched:    res.Total,
		Loaded:     len(unique),
		Skipped:    len(res.Skipped),
		Duplicates: len(tasks) - len(unique),
	}, nil
}
