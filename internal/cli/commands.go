package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"taskbook/internal/domain"
	"taskbook/internal/errors"
	"taskbook/internal/logging"
)

func (r *RootCommand) runAdd(ctx context.Context, cmd *cobra.Command, title string) error {
	cleanTitle, err := r.validator.ValidateTitle(title)
	if err != nil {
		return err
	}

	finished, _ := cmd.Flags().GetBool("done")

	task, err := r.repo.Save(ctx, domain.NewTask(cleanTitle, finished, time.Now()))
	if err != nil {
		return err
	}

	logging.Debugf("saved task %d\n", task.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "Added task %d: %s\n", task.ID, task.Title)
	return nil
}

func (r *RootCommand) runList(ctx context.Context, cmd *cobra.Command) error {
	tasks, err := r.repo.FindAll(ctx)
	if err != nil {
		return err
	}

	r.printTasks(cmd.OutOrStdout(), tasks)
	return nil
}

func (r *RootCommand) runPending(ctx context.Context, cmd *cobra.Command) error {
	tasks, err := r.repo.FindAllNotFinished(ctx)
	if err != nil {
		return err
	}

	r.printTasks(cmd.OutOrStdout(), tasks)
	return nil
}

func (r *RootCommand) runNewest(ctx context.Context, cmd *cobra.Command, arg string) error {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("invalid count %q", arg)
	}
	if err := r.validator.ValidateCount(n); err != nil {
		return err
	}

	tasks, err := r.repo.FindNewestTasks(ctx, n)
	if err != nil {
		return err
	}

	r.printTasks(cmd.OutOrStdout(), tasks)
	return nil
}

func (r *RootCommand) runShow(ctx context.Context, cmd *cobra.Command, arg string) error {
	id, err := r.parseID(arg)
	if err != nil {
		return err
	}

	task, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return errors.NewNotFoundError("task", arg)
	}

	r.printTask(cmd.OutOrStdout(), task)
	return nil
}

func (r *RootCommand) runDone(ctx context.Context, cmd *cobra.Command, arg string) error {
	id, err := r.parseID(arg)
	if err != nil {
		return err
	}

	task, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return errors.NewNotFoundError("task", arg)
	}

	if _, err := r.repo.FinishTask(ctx, task); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Finished task %d: %s\n", task.ID, task.Title)
	return nil
}

func (r *RootCommand) runRemove(ctx context.Context, cmd *cobra.Command, arg string) error {
	id, err := r.parseID(arg)
	if err != nil {
		return err
	}

	if err := r.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d\n", id)
	return nil
}

func (r *RootCommand) runClear(ctx context.Context, cmd *cobra.Command) error {
	count, err := r.repo.DeleteAll(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d tasks\n", count)
	return nil
}

func (r *RootCommand) printTasks(w io.Writer, tasks []*domain.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found")
		return
	}
	for _, task := range tasks {
		r.printTask(w, task)
	}
}

func (r *RootCommand) printTask(w io.Writer, task *domain.Task) {
	status := " "
	if task.Finished {
		status = "x"
	}
	fmt.Fprintf(w, "%4d [%s] %s (%s)\n", task.ID, status, task.Title, task.CreatedDate.Format(r.config.Display.TimeFormat))
}
