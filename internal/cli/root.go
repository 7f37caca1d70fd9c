// Package cli wires the repository operations to cobra subcommands.
package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"taskbook/internal/config"
	"taskbook/internal/logging"
	"taskbook/internal/repository"
	"taskbook/internal/validation"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd       *cobra.Command
	repo      repository.TaskRepository
	config    *config.Config
	validator *validation.TaskValidator
}

// NewRootCommand creates the root cobra command with all subcommands attached
func NewRootCommand(repo repository.TaskRepository, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		repo:      repo,
		config:    cfg,
		validator: validation.NewTaskValidator(cfg.Validation.TitleMinLength, cfg.Validation.TitleMaxLength),
	}

	root.cmd = &cobra.Command{
		Use:   "taskbook",
		Short: "A command-line task list backed by a relational database",
		Long: `Taskbook keeps a list of tasks in a relational database (SQLite by
default, PostgreSQL via TASKBOOK_DB_DRIVER=postgres).

EXAMPLES:
  taskbook add "Write the report"     # Add an open task
  taskbook list                       # All tasks, oldest id first
  taskbook pending                    # Only unfinished tasks
  taskbook newest 5                   # The 5 most recently created tasks
  taskbook show 3                     # One task by id
  taskbook done 3                     # Mark a task finished
  taskbook rm 3                       # Delete one task
  taskbook clear                      # Delete every task

CONFIGURATION (environment, optionally from a .env file):
  TASKBOOK_DB_DRIVER                  sqlite or postgres (default: sqlite)
  TASKBOOK_DB_DIR                     SQLite database directory (default: ~/.taskbook)
  TASKBOOK_DB_FILENAME                SQLite database filename (default: taskbook.db)
  TASKBOOK_POSTGRES_DSN               PostgreSQL connection string
  TASKBOOK_DB_QUERY_TIMEOUT           Query timeout (default: 10s)
  TASKBOOK_TIME_DISPLAY_FORMAT        Time format (default: 2006-01-02 15:04:05)
  TASKBOOK_APP_TIMEOUT                Application timeout (default: 60s)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command exposes the underlying cobra command for testing
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.config.Application.Timeout)
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return r.runAdd(ctx, cmd, args[0])
		},
	}
	addCmd.Flags().Bool("done", false, "Add the task already marked as finished")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks ordered by id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return r.runList(ctx, cmd)
		},
	}

	pendingCmd := &cobra.Command{
		Use:   "pending",
		Short: "List unfinished tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return r.runPending(ctx, cmd)
		},
	}

	newestCmd := &cobra.Command{
		Use:   "newest [count]",
		Short: "List the most recently created tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return r.runNewest(ctx, cmd, args[0])
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a single task by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return r.runShow(ctx, cmd, args[0])
		},
	}

	doneCmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a task as finished",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return r.runDone(ctx, cmd, args[0])
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a task by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return r.runRemove(ctx, cmd, args[0])
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return r.runClear(ctx, cmd)
		},
	}

	r.cmd.AddCommand(addCmd, listCmd, pendingCmd, newestCmd, showCmd, doneCmd, rmCmd, clearCmd)
}

// parseID parses a positive task id argument
func (r *RootCommand) parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	if err := r.validator.ValidateTaskID(id); err != nil {
		return 0, err
	}
	logging.Debugf("parsed task id %d\n", id)
	return id, nil
}
