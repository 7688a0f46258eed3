package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		View viewFlags
		JSON bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `Load the tasks from the configured source and print them.

Output format is a table with columns:
  ID, DONE, CREATED, TITLE
followed by a summary line "Total: N | Completed: M".
The counters always cover every task, whatever the filter.

Examples:
  # List all tasks sorted by ID
  todo list

  # List completed tasks, most recent first
  todo list --filter done --sort recent

  # Read tasks from a local seed file
  todo list --source ./seed.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, sort, err := opts.View.parse()
			if err != nil {
				return err
			}
			if err := loadTasks(cmd, c, filter, sort); err != nil {
				return err
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.JSON {
				return c.Encoder.Encode(w, domain.ExportJSON, out.Tasks)
			}
			printTaskList(w, out.Tasks)
			printCounts(w, out.Counts)
			return nil
		},
	}

	opts.View.register(cmd)
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Print the list as JSON")

	return cmd
}

func printTaskList(w io.Writer, tasks []domain.Task) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "ID\tDONE\tCREATED\tTITLE")

	// Rows
	for _, task := range tasks {
		done := "[ ]"
		if task.Completed {
			done = "[x]"
		}

		created := "-"
		if !task.CreatedAt.IsZero() {
			created = task.CreatedAt.Local().Format("2006-01-02 15:04")
		}

		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			task.ID,
			done,
			created,
			task.Title,
		)
	}
}

func printCounts(w io.Writer, counts domain.Counts) {
	_, _ = fmt.Fprintf(w, "\nTotal: %d | Completed: %d\n", counts.Total, counts.Completed)
}
