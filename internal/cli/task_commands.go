package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"planner/internal/api"
	"planner/internal/domain"
	"planner/internal/services"
)

func (r *RootCommand) newTaskCommand() *cobra.Command {
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	taskCmd.AddCommand(
		r.newTaskListCommand(),
		r.newTaskAddCommand(),
		r.newTaskUpdateCommand(),
		r.newTaskDoneCommand(),
		r.newTaskDeleteCommand(),
		r.newTaskMatrixCommand(),
	)

	return taskCmd
}

func (r *RootCommand) newTaskListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks, newest first.

Examples:
  planner task list                      # All tasks
  planner task list --pending            # Pending and in-progress tasks
  planner task list --today              # Tasks due today
  planner task list --overdue            # Unfinished tasks past their due date
  planner task list --priority urgent    # Tasks with a given priority`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			tasks, err := r.api.ListTasks(ctx)
			if err != nil {
				return NewErrorHandler().Handle("list tasks", err)
			}

			now := timeNow()
			if pending, _ := cmd.Flags().GetBool("pending"); pending {
				tasks = services.OpenTasks(tasks)
			}
			if completed, _ := cmd.Flags().GetBool("completed"); completed {
				tasks = services.TasksByStatus(tasks, domain.TaskCompleted)
			}
			if today, _ := cmd.Flags().GetBool("today"); today {
				tasks = services.TasksDueToday(tasks, now)
			}
			if overdue, _ := cmd.Flags().GetBool("overdue"); overdue {
				tasks = services.OverdueTasks(tasks, now)
			}
			if priority, _ := cmd.Flags().GetString("priority"); priority != "" {
				tasks = services.TasksByPriority(tasks, domain.TaskPriority(priority))
			}

			printTasks(tasks, now)
			return nil
		},
	}

	cmd.Flags().Bool("pending", false, "Show only pending and in-progress tasks")
	cmd.Flags().Bool("completed", false, "Show only completed tasks")
	cmd.Flags().Bool("today", false, "Show only tasks due today")
	cmd.Flags().Bool("overdue", false, "Show only overdue tasks")
	cmd.Flags().String("priority", "", "Show only tasks with this priority")

	return cmd
}

func (r *RootCommand) newTaskAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			task := domain.NewTask(args[0])
			task.Description, _ = cmd.Flags().GetString("description")
			task.DueDate, _ = cmd.Flags().GetString("due")
			task.DueTime, _ = cmd.Flags().GetString("time")
			task.Category, _ = cmd.Flags().GetString("category")
			if priority, _ := cmd.Flags().GetString("priority"); priority != "" {
				task.Priority = domain.TaskPriority(priority)
			}

			if err := r.api.CreateTask(ctx, &task); err != nil {
				return NewErrorHandler().Handle("add task", err)
			}

			fmt.Fprintf(output, "Added task %s: %s\n", shortID(task.ID), task.Title)
			return nil
		},
	}

	cmd.Flags().String("description", "", "Task description")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().String("time", "", "Due time (HH:MM)")
	cmd.Flags().String("priority", "", "Priority: urgent-important, important, urgent, normal")
	cmd.Flags().String("category", "", "Free-form category")

	return cmd
}

func (r *RootCommand) newTaskUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update fields of a task",
		Long:  "Update a task. Only the fields named by flags change; everything else keeps its stored value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			fields := api.Fields{}
			for flag, field := range map[string]string{
				"title":       "title",
				"description": "description",
				"due":         "due_date",
				"time":        "due_time",
				"priority":    "priority",
				"status":      "status",
				"category":    "category",
			} {
				if cmd.Flags().Changed(flag) {
					value, _ := cmd.Flags().GetString(flag)
					fields[field] = value
				}
			}
			if len(fields) == 0 {
				return fmt.Errorf("no fields to update")
			}

			id, err := r.resolveTaskID(ctx, args[0])
			if err != nil {
				return err
			}

			task, err := r.api.UpdateTask(ctx, id, fields)
			if err != nil {
				return NewErrorHandler().Handle("update task", err)
			}

			fmt.Fprintf(output, "Updated task %s: %s\n", shortID(task.ID), task.Title)
			return nil
		},
	}

	cmd.Flags().String("title", "", "Task title")
	cmd.Flags().String("description", "", "Task description")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().String("time", "", "Due time (HH:MM)")
	cmd.Flags().String("priority", "", "Priority: urgent-important, important, urgent, normal")
	cmd.Flags().String("status", "", "Status: pending, in-progress, completed, cancelled")
	cmd.Flags().String("category", "", "Free-form category")

	return cmd
}

func (r *RootCommand) newTaskDoneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			id, err := r.resolveTaskID(ctx, args[0])
			if err != nil {
				return err
			}

			task, err := r.api.UpdateTask(ctx, id, api.Fields{"status": string(domain.TaskCompleted)})
			if err != nil {
				return NewErrorHandler().Handle("complete task", err)
			}

			fmt.Fprintf(output, "Completed task %s: %s\n", shortID(task.ID), task.Title)
			return nil
		},
	}
}

func (r *RootCommand) newTaskDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			id, err := r.resolveTaskID(ctx, args[0])
			if err != nil {
				return err
			}

			if err := r.api.DeleteTask(ctx, id); err != nil {
				return NewErrorHandler().Handle("delete task", err)
			}

			fmt.Fprintf(output, "Deleted task %s\n", shortID(id))
			return nil
		},
	}
}

func (r *RootCommand) newTaskMatrixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Show open tasks grouped into the Eisenhower matrix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			tasks, err := r.api.ListTasks(ctx)
			if err != nil {
				return NewErrorHandler().Handle("list tasks", err)
			}

			now := timeNow()
			groups := services.GroupTasksByPriority(services.OpenTasks(tasks))
			for _, priority := range domain.TaskPriorities {
				fmt.Fprintf(output, "%s (%d)\n", priority, len(groups[priority]))
				for _, t := range groups[priority] {
					label := services.DueDateLabel(t, now)
					if label != "" {
						label = " (" + label + ")"
					}
					fmt.Fprintf(output, "  %s %s%s\n", shortID(t.ID), t.Title, label)
				}
			}
			return nil
		},
	}
}
