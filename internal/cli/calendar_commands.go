package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"planner/internal/dates"
	"planner/internal/domain"
	"planner/internal/services"
)

// weekStartDay resolves the configured first day of the week, defaulting to
// Monday when settings cannot be read.
func (r *RootCommand) weekStartDay() time.Weekday {
	ctx, cancel := r.runCtx()
	defer cancel()

	settings, err := r.api.GetSettings(ctx)
	if err != nil || !settings.WeekStartsOn.IsValid() {
		return dates.Weekday(domain.WeekStartMonday)
	}
	return dates.Weekday(settings.WeekStartsOn)
}

func (r *RootCommand) newWeekCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week [date]",
		Short: "Show the agenda for the week containing a date (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			anchor := timeNow()
			if len(args) == 1 {
				d, err := dates.Parse(args[0])
				if err != nil {
					return fmt.Errorf("invalid date: %s", args[0])
				}
				anchor = d
			}

			tasks, err := r.api.ListTasks(ctx)
			if err != nil {
				return NewErrorHandler().Handle("list tasks", err)
			}
			events, err := r.api.ListEvents(ctx)
			if err != nil {
				return NewErrorHandler().Handle("list events", err)
			}

			for _, day := range dates.WeekDays(anchor, r.weekStartDay()) {
				marker := ""
				if dates.IsToday(day, timeNow()) {
					marker = " (today)"
				}
				fmt.Fprintf(output, "%s%s\n", day.Format("Mon Jan 2"), marker)
				for _, e := range services.EventsOn(events, day) {
					fmt.Fprintf(output, "  %s %s [%s]\n", e.StartTime, e.Title, e.EventType)
				}
				for _, t := range services.TasksDueOn(tasks, day) {
					fmt.Fprintf(output, "  due: %s [%s]\n", t.Title, t.Priority)
				}
			}
			return nil
		},
	}

	return cmd
}

func (r *RootCommand) newMonthCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "month [date]",
		Short: "Show the calendar grid for the month containing a date (default: today)",
		Long: `Show the month as a 7-column grid, padded with leading and trailing days
from adjacent months so every week is complete. Each cell shows the day of
month and the number of events on that day.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			anchor := timeNow()
			if len(args) == 1 {
				d, err := dates.Parse(args[0])
				if err != nil {
					return fmt.Errorf("invalid date: %s", args[0])
				}
				anchor = d
			}

			events, err := r.api.ListEvents(ctx)
			if err != nil {
				return NewErrorHandler().Handle("list events", err)
			}

			fmt.Fprintln(output, anchor.Format("January 2006"))

			grid := dates.MonthGrid(anchor, r.weekStartDay())
			for i, day := range grid {
				count := len(services.EventsOn(events, day))
				cell := fmt.Sprintf("%2d", day.Day())
				if day.Month() != anchor.Month() {
					cell = "  "
				} else if count > 0 {
					cell = fmt.Sprintf("%2d*", day.Day())
				}
				fmt.Fprintf(output, "%-5s", cell)
				if (i+1)%7 == 0 {
					fmt.Fprintln(output)
				}
			}
			return nil
		},
	}

	return cmd
}
