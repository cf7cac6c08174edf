package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"planner/internal/api"
	"planner/internal/domain"
	"planner/internal/services"
)

func (r *RootCommand) newGoalCommand() *cobra.Command {
	goalCmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals and their milestones",
	}

	goalCmd.AddCommand(
		r.newGoalListCommand(),
		r.newGoalAddCommand(),
		r.newGoalUpdateCommand(),
		r.newGoalMilestoneCommand(),
		r.newGoalToggleCommand(),
		r.newGoalDeleteCommand(),
	)

	return goalCmd
}

func (r *RootCommand) newGoalListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			goals, err := r.api.ListGoals(ctx)
			if err != nil {
				return NewErrorHandler().Handle("list goals", err)
			}

			if category, _ := cmd.Flags().GetString("category"); category != "" {
				goals = services.GoalsByCategory(goals)[domain.GoalCategory(category)]
			}
			if active, _ := cmd.Flags().GetBool("active"); active {
				var filtered []*domain.Goal
				for _, g := range goals {
					if g.IsActive() {
						filtered = append(filtered, g)
					}
				}
				goals = filtered
			}

			printGoals(goals)
			return nil
		},
	}

	cmd.Flags().String("category", "", "Show only goals in this category")
	cmd.Flags().Bool("active", false, "Show only goals that are not completed")

	return cmd
}

func (r *RootCommand) newGoalAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			goal := domain.NewGoal(args[0])
			goal.Description, _ = cmd.Flags().GetString("description")
			goal.TargetDate, _ = cmd.Flags().GetString("target")
			if category, _ := cmd.Flags().GetString("category"); category != "" {
				goal.Category = domain.GoalCategory(category)
			}
			if timeframe, _ := cmd.Flags().GetString("timeframe"); timeframe != "" {
				goal.Timeframe = domain.GoalTimeframe(timeframe)
			}
			milestones, _ := cmd.Flags().GetStringSlice("milestone")
			for _, title := range milestones {
				goal.Milestones = append(goal.Milestones, domain.Milestone{Title: title})
			}

			if err := r.api.CreateGoal(ctx, &goal); err != nil {
				return NewErrorHandler().Handle("add goal", err)
			}

			fmt.Fprintf(output, "Added goal %s: %s\n", shortID(goal.ID), goal.Title)
			return nil
		},
	}

	cmd.Flags().String("description", "", "Goal description")
	cmd.Flags().String("category", "", "Category: personal, professional, project")
	cmd.Flags().String("timeframe", "", "Timeframe: short-term, medium-term, long-term")
	cmd.Flags().String("target", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().StringSlice("milestone", nil, "Milestone title (repeatable)")

	return cmd
}

func (r *RootCommand) newGoalUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update fields of a goal",
		Long:  "Update a goal. Only the fields named by flags change. Progress and status set here are taken as-is.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			fields := api.Fields{}
			for flag, field := range map[string]string{
				"title":       "title",
				"description": "description",
				"category":    "category",
				"timeframe":   "timeframe",
				"target":      "target_date",
				"status":      "status",
			} {
				if cmd.Flags().Changed(flag) {
					value, _ := cmd.Flags().GetString(flag)
					fields[field] = value
				}
			}
			if cmd.Flags().Changed("progress") {
				progress, _ := cmd.Flags().GetInt("progress")
				fields["progress"] = progress
			}
			if len(fields) == 0 {
				return fmt.Errorf("no fields to update")
			}

			id, err := r.resolveGoalID(ctx, args[0])
			if err != nil {
				return err
			}

			goal, err := r.api.UpdateGoal(ctx, id, fields)
			if err != nil {
				return NewErrorHandler().Handle("update goal", err)
			}

			fmt.Fprintf(output, "Updated goal %s: %s\n", shortID(goal.ID), goal.Title)
			return nil
		},
	}

	cmd.Flags().String("title", "", "Goal title")
	cmd.Flags().String("description", "", "Goal description")
	cmd.Flags().String("category", "", "Category: personal, professional, project")
	cmd.Flags().String("timeframe", "", "Timeframe: short-term, medium-term, long-term")
	cmd.Flags().String("target", "", "Target date (YYYY-MM-DD)")
	cmd.Flags().String("status", "", "Status: not-started, in-progress, completed, on-hold")
	cmd.Flags().Int("progress", 0, "Progress percentage (0-100)")

	return cmd
}

func (r *RootCommand) newGoalMilestoneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "milestone [id] [title]",
		Short: "Add a milestone to a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			id, err := r.resolveGoalID(ctx, args[0])
			if err != nil {
				return err
			}

			goal, err := r.api.GetGoal(ctx, id)
			if err != nil {
				return NewErrorHandler().Handle("get goal", err)
			}

			milestones := append(append([]domain.Milestone{}, goal.Milestones...), domain.Milestone{Title: args[1]})
			updated, err := r.api.UpdateGoal(ctx, id, api.Fields{"milestones": milestones})
			if err != nil {
				return NewErrorHandler().Handle("add milestone", err)
			}

			fmt.Fprintf(output, "Added milestone %d to goal %s\n", len(updated.Milestones)-1, shortID(updated.ID))
			return nil
		},
	}
}

func (r *RootCommand) newGoalToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [id] [milestone-index]",
		Short: "Toggle a goal milestone and recompute progress",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid milestone index: %s", args[1])
			}

			id, err := r.resolveGoalID(ctx, args[0])
			if err != nil {
				return err
			}

			goal, err := r.api.GetGoal(ctx, id)
			if err != nil {
				return NewErrorHandler().Handle("get goal", err)
			}

			toggled, err := services.ToggleMilestone(*goal, index)
			if err != nil {
				return NewErrorHandler().Handle("toggle milestone", err)
			}

			updated, err := r.api.UpdateGoal(ctx, id, api.Fields{
				"milestones": toggled.Milestones,
				"progress":   toggled.Progress,
				"status":     string(toggled.Status),
			})
			if err != nil {
				return NewErrorHandler().Handle("toggle milestone", err)
			}

			fmt.Fprintf(output, "Goal %s progress: %d%% (%s)\n", shortID(updated.ID), updated.Progress, updated.Status)
			return nil
		},
	}
}

func (r *RootCommand) newGoalDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			id, err := r.resolveGoalID(ctx, args[0])
			if err != nil {
				return err
			}

			if err := r.api.DeleteGoal(ctx, id); err != nil {
				return NewErrorHandler().Handle("delete goal", err)
			}

			fmt.Fprintf(output, "Deleted goal %s\n", shortID(id))
			return nil
		},
	}
}
