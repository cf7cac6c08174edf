package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"planner/internal/api"
	"planner/internal/domain"
	"planner/internal/services"
)

func (r *RootCommand) newNoteCommand() *cobra.Command {
	noteCmd := &cobra.Command{
		Use:   "note",
		Short: "Manage notes",
	}

	noteCmd.AddCommand(
		r.newNoteListCommand(),
		r.newNoteAddCommand(),
		r.newNoteUpdateCommand(),
		r.newNotePinCommand(),
		r.newNoteDeleteCommand(),
	)

	return noteCmd
}

func (r *RootCommand) newNoteListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, pinned first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			notes, err := r.api.ListNotes(ctx)
			if err != nil {
				return NewErrorHandler().Handle("list notes", err)
			}

			if query, _ := cmd.Flags().GetString("search"); query != "" {
				notes = services.SearchNotes(notes, query)
			}
			if category, _ := cmd.Flags().GetString("category"); category != "" {
				notes = services.NotesByCategory(notes, category)
			}
			if pinned, _ := cmd.Flags().GetBool("pinned"); pinned {
				notes = services.PinnedNotes(notes)
			}

			printNotes(services.SortNotes(notes))
			return nil
		},
	}

	cmd.Flags().String("search", "", "Search title, content and tags")
	cmd.Flags().String("category", "", "Show only notes in this category")
	cmd.Flags().Bool("pinned", false, "Show only pinned notes")

	return cmd
}

func (r *RootCommand) newNoteAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			note := domain.NewNote(args[0])
			note.Content, _ = cmd.Flags().GetString("content")
			note.Color, _ = cmd.Flags().GetString("color")
			if category, _ := cmd.Flags().GetString("category"); category != "" {
				note.Category = category
			}
			note.Tags, _ = cmd.Flags().GetStringSlice("tag")

			if err := r.api.CreateNote(ctx, &note); err != nil {
				return NewErrorHandler().Handle("add note", err)
			}

			fmt.Fprintf(output, "Added note %s: %s\n", shortID(note.ID), note.Title)
			return nil
		},
	}

	cmd.Flags().String("content", "", "Note content")
	cmd.Flags().String("category", "", "Note category (default: general)")
	cmd.Flags().StringSlice("tag", nil, "Tag (repeatable)")
	cmd.Flags().String("color", "", "Color swatch (#rrggbb)")

	return cmd
}

func (r *RootCommand) newNoteUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update fields of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			fields := api.Fields{}
			for flag, field := range map[string]string{
				"title":    "title",
				"content":  "content",
				"category": "category",
				"color":    "color",
			} {
				if cmd.Flags().Changed(flag) {
					value, _ := cmd.Flags().GetString(flag)
					fields[field] = value
				}
			}
			if cmd.Flags().Changed("tag") {
				tags, _ := cmd.Flags().GetStringSlice("tag")
				fields["tags"] = tags
			}
			if len(fields) == 0 {
				return fmt.Errorf("no fields to update")
			}

			id, err := r.resolveNoteID(ctx, args[0])
			if err != nil {
				return err
			}

			note, err := r.api.UpdateNote(ctx, id, fields)
			if err != nil {
				return NewErrorHandler().Handle("update note", err)
			}

			fmt.Fprintf(output, "Updated note %s: %s\n", shortID(note.ID), note.Title)
			return nil
		},
	}

	cmd.Flags().String("title", "", "Note title")
	cmd.Flags().String("content", "", "Note content")
	cmd.Flags().String("category", "", "Note category")
	cmd.Flags().StringSlice("tag", nil, "Replace tags (repeatable)")
	cmd.Flags().String("color", "", "Color swatch (#rrggbb)")

	return cmd
}

func (r *RootCommand) newNotePinCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pin [id]",
		Short: "Toggle a note's pinned flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			id, err := r.resolveNoteID(ctx, args[0])
			if err != nil {
				return err
			}

			note, err := r.api.TogglePin(ctx, id)
			if err != nil {
				return NewErrorHandler().Handle("pin note", err)
			}

			state := "unpinned"
			if note.IsPinned {
				state = "pinned"
			}
			fmt.Fprintf(output, "Note %s is now %s\n", shortID(note.ID), state)
			return nil
		},
	}
}

func (r *RootCommand) newNoteDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			id, err := r.resolveNoteID(ctx, args[0])
			if err != nil {
				return err
			}

			if err := r.api.DeleteNote(ctx, id); err != nil {
				return NewErrorHandler().Handle("delete note", err)
			}

			fmt.Fprintf(output, "Deleted note %s\n", shortID(id))
			return nil
		},
	}
}
