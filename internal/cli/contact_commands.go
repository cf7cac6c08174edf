package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"planner/internal/api"
	"planner/internal/domain"
	"planner/internal/services"
)

func (r *RootCommand) newContactCommand() *cobra.Command {
	contactCmd := &cobra.Command{
		Use:   "contact",
		Short: "Manage contacts",
	}

	contactCmd.AddCommand(
		r.newContactListCommand(),
		r.newContactAddCommand(),
		r.newContactUpdateCommand(),
		r.newContactFavoriteCommand(),
		r.newContactDeleteCommand(),
	)

	return contactCmd
}

func (r *RootCommand) newContactListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts, favorites first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			contacts, err := r.api.ListContacts(ctx)
			if err != nil {
				return NewErrorHandler().Handle("list contacts", err)
			}

			if query, _ := cmd.Flags().GetString("search"); query != "" {
				contacts = services.SearchContacts(contacts, query)
			}
			if category, _ := cmd.Flags().GetString("category"); category != "" {
				contacts = services.ContactsByCategory(contacts, domain.ContactCategory(category))
			}
			if favorites, _ := cmd.Flags().GetBool("favorites"); favorites {
				contacts = services.FavoriteContacts(contacts)
			}

			printContacts(services.SortContacts(contacts))
			return nil
		},
	}

	cmd.Flags().String("search", "", "Search name, company, email and phone")
	cmd.Flags().String("category", "", "Show only contacts in this category")
	cmd.Flags().Bool("favorites", false, "Show only favorite contacts")

	return cmd
}

func (r *RootCommand) newContactAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			contact := domain.NewContact(args[0])
			contact.Company, _ = cmd.Flags().GetString("company")
			contact.Position, _ = cmd.Flags().GetString("position")
			contact.Email, _ = cmd.Flags().GetString("email")
			contact.Phone, _ = cmd.Flags().GetString("phone")
			contact.SecondaryPhone, _ = cmd.Flags().GetString("secondary-phone")
			contact.Address, _ = cmd.Flags().GetString("address")
			contact.Notes, _ = cmd.Flags().GetString("notes")
			if category, _ := cmd.Flags().GetString("category"); category != "" {
				contact.Category = domain.ContactCategory(category)
			}

			if err := r.api.CreateContact(ctx, &contact); err != nil {
				return NewErrorHandler().Handle("add contact", err)
			}

			fmt.Fprintf(output, "Added contact %s: %s\n", shortID(contact.ID), contact.Name)
			return nil
		},
	}

	cmd.Flags().String("company", "", "Company name")
	cmd.Flags().String("position", "", "Position or title")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("secondary-phone", "", "Secondary phone number")
	cmd.Flags().String("address", "", "Postal address")
	cmd.Flags().String("category", "", "Category: client, colleague, vendor, partner, personal, other")
	cmd.Flags().String("notes", "", "Free-form notes")

	return cmd
}

func (r *RootCommand) newContactUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update fields of a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			fields := api.Fields{}
			for flag, field := range map[string]string{
				"name":            "name",
				"company":         "company",
				"position":        "position",
				"email":           "email",
				"phone":           "phone",
				"secondary-phone": "secondary_phone",
				"address":         "address",
				"category":        "category",
				"notes":           "notes",
			} {
				if cmd.Flags().Changed(flag) {
					value, _ := cmd.Flags().GetString(flag)
					fields[field] = value
				}
			}
			if len(fields) == 0 {
				return fmt.Errorf("no fields to update")
			}

			id, err := r.resolveContactID(ctx, args[0])
			if err != nil {
				return err
			}

			contact, err := r.api.UpdateContact(ctx, id, fields)
			if err != nil {
				return NewErrorHandler().Handle("update contact", err)
			}

			fmt.Fprintf(output, "Updated contact %s: %s\n", shortID(contact.ID), contact.Name)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Contact name")
	cmd.Flags().String("company", "", "Company name")
	cmd.Flags().String("position", "", "Position or title")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("secondary-phone", "", "Secondary phone number")
	cmd.Flags().String("address", "", "Postal address")
	cmd.Flags().String("category", "", "Category: client, colleague, vendor, partner, personal, other")
	cmd.Flags().String("notes", "", "Free-form notes")

	return cmd
}

func (r *RootCommand) newContactFavoriteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "favorite [id]",
		Short: "Toggle a contact's favorite flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			id, err := r.resolveContactID(ctx, args[0])
			if err != nil {
				return err
			}

			contact, err := r.api.ToggleFavorite(ctx, id)
			if err != nil {
				return NewErrorHandler().Handle("favorite contact", err)
			}

			state := "no longer a favorite"
			if contact.IsFavorite {
				state = "now a favorite"
			}
			fmt.Fprintf(output, "Contact %s is %s\n", shortID(contact.ID), state)
			return nil
		},
	}
}

func (r *RootCommand) newContactDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			id, err := r.resolveContactID(ctx, args[0])
			if err != nil {
				return err
			}

			if err := r.api.DeleteContact(ctx, id); err != nil {
				return NewErrorHandler().Handle("delete contact", err)
			}

			fmt.Fprintf(output, "Deleted contact %s\n", shortID(id))
			return nil
		},
	}
}
