package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// viewFlags holds the --filter and --sort flag values.
type viewFlags struct {
	Filter string
	Sort   string
}

// register adds the flags to cmd.
func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Filter, "filter", "", "Filter tasks: all, active or done (default from config)")
	cmd.Flags().StringVar(&f.Sort, "sort", "", "Sort tasks: id or recent (default from config)")
}

// parse validates the flags. Empty values keep the configured preference.
func (f *viewFlags) parse() (domain.Filter, domain.SortMode, error) {
	var filter domain.Filter
	var sort domain.SortMode
	var err error

	if f.Filter != "" {
		if filter, err = domain.ParseFilter(f.Filter); err != nil {
			return "", "", fmt.Errorf("--filter %q: %w", f.Filter, err)
		}
	}
	if f.Sort != "" {
		if sort, err = domain.ParseSortMode(f.Sort); err != nil {
			return "", "", fmt.Errorf("--sort %q: %w", f.Sort, err)
		}
	}
	return filter, sort, nil
}

// loadTasks runs the bootstrap and applies the view preferences.
// A fetch error is reported as a warning and the command continues with an empty list.
func loadTasks(cmd *cobra.Command, c *app.Container, filter domain.Filter, sort domain.SortMode) error {
	ctx := cmd.Context()

	_, err := c.BootstrapUseCase().Execute(ctx, usecase.BootstrapInput{Limit: c.AppConfig.Source.Limit})
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
	}

	if filter != "" {
		if _, err := c.SetFilterUseCase().Execute(ctx, usecase.SetFilterInput{Filter: filter}); err != nil {
			return err
		}
	}
	if sort != "" {
		if _, err := c.SetSortUseCase().Execute(ctx, usecase.SetSortInput{Sort: sort}); err != nil {
			return err
		}
	}
	return nil
}
