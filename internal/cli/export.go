package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		View   viewFlags
		Format string
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tasks as YAML or JSON",
		Long: `Load the tasks from the configured source and write the current view
to stdout. The output can be used as a seed file for --source.

Examples:
  # Export everything as YAML
  todo export > seed.yaml

  # Export open tasks as JSON
  todo export --format json --filter active`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := domain.ParseExportFormat(opts.Format)
			if err != nil {
				return fmt.Errorf("--format %q: %w", opts.Format, err)
			}
			filter, sort, err := opts.View.parse()
			if err != nil {
				return err
			}
			if err := loadTasks(cmd, c, filter, sort); err != nil {
				return err
			}

			_, err = c.ExportTasksUseCase().Execute(cmd.Context(), usecase.ExportTasksInput{
				Writer: cmd.OutOrStdout(),
				Format: format,
			})
			return err
		},
	}

	opts.View.register(cmd)
	cmd.Flags().StringVarP(&opts.Format, "format", "f", string(domain.ExportYAML), "Output format: yaml or json")

	return cmd
}
