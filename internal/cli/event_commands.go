package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"planner/internal/api"
	"planner/internal/dates"
	"planner/internal/domain"
	"planner/internal/services"
)

func (r *RootCommand) newEventCommand() *cobra.Command {
	eventCmd := &cobra.Command{
		Use:   "event",
		Short: "Manage calendar events",
	}

	eventCmd.AddCommand(
		r.newEventListCommand(),
		r.newEventAddCommand(),
		r.newEventUpdateCommand(),
		r.newEventDeleteCommand(),
	)

	return eventCmd
}

func (r *RootCommand) newEventListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events in ascending date order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			events, err := r.api.ListEvents(ctx)
			if err != nil {
				return NewErrorHandler().Handle("list events", err)
			}

			if on, _ := cmd.Flags().GetString("on"); on != "" {
				day, err := dates.Parse(on)
				if err != nil {
					return fmt.Errorf("invalid date: %s", on)
				}
				events = services.EventsOn(events, day)
			}
			if eventType, _ := cmd.Flags().GetString("type"); eventType != "" {
				events = services.EventsByType(events, domain.EventType(eventType))
			}

			printEvents(events)
			return nil
		},
	}

	cmd.Flags().String("on", "", "Show only events on this date (YYYY-MM-DD)")
	cmd.Flags().String("type", "", "Show only events of this type")

	return cmd
}

func (r *RootCommand) newEventAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title] [date]",
		Short: "Add a calendar event",
		Long:  "Add an event on the given date. The color defaults from the event type unless overridden.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			event := domain.NewEvent(args[0], args[1])
			event.Description, _ = cmd.Flags().GetString("description")
			event.StartTime, _ = cmd.Flags().GetString("start")
			event.EndTime, _ = cmd.Flags().GetString("end")
			event.Location, _ = cmd.Flags().GetString("location")
			event.Color, _ = cmd.Flags().GetString("color")
			if eventType, _ := cmd.Flags().GetString("type"); eventType != "" {
				event.EventType = domain.EventType(eventType)
			}

			if err := r.api.CreateEvent(ctx, &event); err != nil {
				return NewErrorHandler().Handle("add event", err)
			}

			fmt.Fprintf(output, "Added event %s: %s on %s\n", shortID(event.ID), event.Title, event.Date)
			return nil
		},
	}

	cmd.Flags().String("description", "", "Event description")
	cmd.Flags().String("type", "", "Type: meeting, deadline, reminder, holiday, company-event, personal")
	cmd.Flags().String("start", "", "Start time (HH:MM)")
	cmd.Flags().String("end", "", "End time (HH:MM)")
	cmd.Flags().String("location", "", "Event location")
	cmd.Flags().String("color", "", "Color swatch (#rrggbb)")

	return cmd
}

func (r *RootCommand) newEventUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update fields of an event",
		Long:  "Update an event. Changing the type never rewrites the stored color.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			fields := api.Fields{}
			for flag, field := range map[string]string{
				"title":       "title",
				"description": "description",
				"date":        "date",
				"start":       "start_time",
				"end":         "end_time",
				"type":        "event_type",
				"location":    "location",
				"color":       "color",
			} {
				if cmd.Flags().Changed(flag) {
					value, _ := cmd.Flags().GetString(flag)
					fields[field] = value
				}
			}
			if len(fields) == 0 {
				return fmt.Errorf("no fields to update")
			}

			id, err := r.resolveEventID(ctx, args[0])
			if err != nil {
				return err
			}

			event, err := r.api.UpdateEvent(ctx, id, fields)
			if err != nil {
				return NewErrorHandler().Handle("update event", err)
			}

			fmt.Fprintf(output, "Updated event %s: %s\n", shortID(event.ID), event.Title)
			return nil
		},
	}

	cmd.Flags().String("title", "", "Event title")
	cmd.Flags().String("description", "", "Event description")
	cmd.Flags().String("date", "", "Event date (YYYY-MM-DD)")
	cmd.Flags().String("start", "", "Start time (HH:MM)")
	cmd.Flags().String("end", "", "End time (HH:MM)")
	cmd.Flags().String("type", "", "Type: meeting, deadline, reminder, holiday, company-event, personal")
	cmd.Flags().String("location", "", "Event location")
	cmd.Flags().String("color", "", "Color swatch (#rrggbb)")

	return cmd
}

func (r *RootCommand) newEventDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			id, err := r.resolveEventID(ctx, args[0])
			if err != nil {
				return err
			}

			if err := r.api.DeleteEvent(ctx, id); err != nil {
				return NewErrorHandler().Handle("delete event", err)
			}

			fmt.Fprintf(output, "Deleted event %s\n", shortID(id))
			return nil
		},
	}
}
