package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"planner/internal/domain"
	"planner/internal/services"
)

func (r *RootCommand) newDashboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the overview: statistics, due tasks, today's events and active goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			tasks, err := r.api.ListTasks(ctx)
			if err != nil {
				return NewErrorHandler().Handle("list tasks", err)
			}
			goals, err := r.api.ListGoals(ctx)
			if err != nil {
				return NewErrorHandler().Handle("list goals", err)
			}
			events, err := r.api.ListEvents(ctx)
			if err != nil {
				return NewErrorHandler().Handle("list events", err)
			}
			settings, err := r.api.GetSettings(ctx)
			if err != nil {
				return NewErrorHandler().Handle("get settings", err)
			}

			now := timeNow()
			summary := services.BuildDashboard(tasks, goals, events, now)

			if settings.CompanyName != "" {
				fmt.Fprintln(output, settings.CompanyName)
			}
			fmt.Fprintf(output, "Tasks: %d total, %d pending, %d in progress, %d completed, %d overdue\n",
				summary.Stats.Total, summary.Stats.Pending, summary.Stats.InProgress,
				summary.Stats.Completed, summary.Stats.Overdue)
			fmt.Fprintf(output, "Completion rate: %d%%  Goal progress: %d%%  Productivity: %d\n",
				summary.CompletionRate, summary.GoalProgress, summary.Productivity)

			fmt.Fprintf(output, "\nDue today (%d):\n", len(summary.DueToday))
			for _, t := range summary.DueToday {
				fmt.Fprintf(output, "  %s %s [%s]\n", shortID(t.ID), t.Title, t.Priority)
			}

			fmt.Fprintf(output, "\nOverdue (%d):\n", len(summary.Overdue))
			for _, t := range summary.Overdue {
				fmt.Fprintf(output, "  %s %s (due %s)\n", shortID(t.ID), t.Title, t.DueDate)
			}

			fmt.Fprintf(output, "\nEvents today (%d):\n", len(summary.EventsToday))
			for _, e := range summary.EventsToday {
				fmt.Fprintf(output, "  %s %s %s\n", shortID(e.ID), e.StartTime, e.Title)
			}

			fmt.Fprintf(output, "\nActive goals (%d):\n", len(summary.ActiveGoals))
			for _, g := range summary.ActiveGoals {
				fmt.Fprintf(output, "  %s %s %d%%\n", shortID(g.ID), g.Title, g.Progress)
			}

			fmt.Fprintln(output, "\nWeekly activity:")
			weekStart := domain.WeekStartMonday
			if settings.WeekStartsOn.IsValid() {
				weekStart = settings.WeekStartsOn
			}
			for _, bucket := range services.WeeklyActivity(tasks, now, weekStart) {
				fmt.Fprintf(output, "  %s  created %d  completed %d\n",
					bucket.Day.Format("Mon Jan 2"), bucket.Created, bucket.Completed)
			}

			return nil
		},
	}
}
