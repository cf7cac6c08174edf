package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"planner/internal/domain"
)

func (r *RootCommand) newSettingsCommand() *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change planner settings",
	}

	settingsCmd.AddCommand(
		r.newSettingsShowCommand(),
		r.newSettingsSetCommand(),
		r.newSettingsLogoCommand(),
	)

	return settingsCmd
}

func (r *RootCommand) newSettingsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current settings, defaults filled in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			settings, err := r.api.GetSettings(ctx)
			if err != nil {
				return NewErrorHandler().Handle("get settings", err)
			}

			w := newTable()
			fmt.Fprintf(w, "Company name\t%s\n", settings.CompanyName)
			fmt.Fprintf(w, "Slogan\t%s\n", settings.Slogan)
			fmt.Fprintf(w, "Logo URL\t%s\n", settings.LogoURL)
			fmt.Fprintf(w, "Primary color\t%s\n", settings.PrimaryColor)
			fmt.Fprintf(w, "Accent color\t%s\n", settings.AccentColor)
			fmt.Fprintf(w, "Theme\t%s\n", settings.Theme)
			fmt.Fprintf(w, "Week starts on\t%s\n", settings.WeekStartsOn)
			fmt.Fprintf(w, "Time format\t%s\n", settings.TimeFormat)
			fmt.Fprintf(w, "Date format\t%s\n", settings.DateFormat)
			w.Flush()
			return nil
		},
	}
}

func (r *RootCommand) newSettingsSetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings fields",
		Long:  "Change settings fields. Unnamed fields keep their current values.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			settings, err := r.api.GetSettings(ctx)
			if err != nil {
				return NewErrorHandler().Handle("get settings", err)
			}

			updated := *settings
			if cmd.Flags().Changed("company") {
				updated.CompanyName, _ = cmd.Flags().GetString("company")
			}
			if cmd.Flags().Changed("slogan") {
				updated.Slogan, _ = cmd.Flags().GetString("slogan")
			}
			if cmd.Flags().Changed("primary-color") {
				updated.PrimaryColor, _ = cmd.Flags().GetString("primary-color")
			}
			if cmd.Flags().Changed("accent-color") {
				updated.AccentColor, _ = cmd.Flags().GetString("accent-color")
			}
			if cmd.Flags().Changed("theme") {
				updated.Theme, _ = cmd.Flags().GetString("theme")
			}
			if cmd.Flags().Changed("week-start") {
				weekStart, _ := cmd.Flags().GetString("week-start")
				updated.WeekStartsOn = domain.WeekStart(weekStart)
			}
			if cmd.Flags().Changed("time-format") {
				updated.TimeFormat, _ = cmd.Flags().GetString("time-format")
			}
			if cmd.Flags().Changed("date-format") {
				updated.DateFormat, _ = cmd.Flags().GetString("date-format")
			}

			if err := r.api.SaveSettings(ctx, &updated); err != nil {
				return NewErrorHandler().Handle("save settings", err)
			}

			fmt.Fprintln(output, "Settings saved")
			return nil
		},
	}

	cmd.Flags().String("company", "", "Company name")
	cmd.Flags().String("slogan", "", "Company slogan")
	cmd.Flags().String("primary-color", "", "Primary color (#rrggbb)")
	cmd.Flags().String("accent-color", "", "Accent color (#rrggbb)")
	cmd.Flags().String("theme", "", "Theme name")
	cmd.Flags().String("week-start", "", "First day of the week: sunday or monday")
	cmd.Flags().String("time-format", "", "Time format: 12h or 24h")
	cmd.Flags().String("date-format", "", "Date display format")

	return cmd
}

func (r *RootCommand) newSettingsLogoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logo [file]",
		Short: "Upload a logo image and save its URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.runCtx()
			defer cancel()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open logo file: %w", err)
			}
			defer f.Close()

			settings, err := r.api.UploadLogo(ctx, filepath.Base(args[0]), f)
			if err != nil {
				return NewErrorHandler().Handle("upload logo", err)
			}

			fmt.Fprintf(output, "Logo uploaded: %s\n", settings.LogoURL)
			return nil
		},
	}
}
