package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"planner/internal/api"
	"planner/internal/config"
	"planner/internal/logging"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// ClientFactory builds the API client once configuration is fully resolved.
type ClientFactory func(cfg *config.Config) (*api.Client, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd       *cobra.Command
	api       *api.Client
	config    *config.Config
	newClient ClientFactory
}

// NewRootCommand creates the root cobra command with global flags.
// The API client is built lazily in PersistentPreRunE so that flag
// overrides like --db-dir take effect before the database is opened.
func NewRootCommand(cfg *config.Config) *RootCommand {
	return newRootCommand(cfg, defaultClientFactory)
}

func defaultClientFactory(cfg *config.Config) (*api.Client, error) {
	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return nil, err
	}
	return api.New(repo, config.CreateFileStore(cfg)), nil
}

func newRootCommand(cfg *config.Config, factory ClientFactory) *RootCommand {
	root := &RootCommand{
		config:    cfg,
		newClient: factory,
	}

	root.cmd = &cobra.Command{
		Use:   "planner",
		Short: "A command-line daily planner",
		Long: `Planner is a command-line daily planner for tasks, goals, events,
notes and contacts.

EXAMPLES:
  planner task add "Ship the report" --due 2025-08-29   # Add a task
  planner task list --today                             # Tasks due today
  planner task matrix                                   # Eisenhower matrix view
  planner goal add "Learn Go" --timeframe long-term     # Add a goal
  planner goal toggle <id> 0                            # Toggle a goal milestone
  planner event add "Standup" 2025-08-29 --type meeting # Add a calendar event
  planner week                                          # This week's agenda
  planner month                                         # This month's calendar
  planner dashboard                                     # Overview and statistics

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  PLANNER_DB_DIR            Database directory (default: ~/.planner)
  PLANNER_DB_FILENAME       Database filename (default: planner.db)
  PLANNER_STORAGE_DIR       Upload storage directory (default: ~/.planner/storage)
  PLANNER_STORAGE_BASE_URL  Public base URL for uploads
  PLANNER_APP_TIMEOUT       Application timeout (default: 60s)
  PLANNER_APP_VERBOSE       Enable verbose output (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.getConfigFromFlags(); err != nil {
				return err
			}
			return root.initClient()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Close releases the API client if one was built.
func (r *RootCommand) Close() error {
	if r.api != nil {
		return r.api.Close()
	}
	return nil
}

// initClient builds the API client from the resolved configuration
func (r *RootCommand) initClient() error {
	if r.api != nil {
		return nil
	}

	client, err := r.newClient(r.config)
	if err != nil {
		return err
	}
	r.api = client

	return nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides PLANNER_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides PLANNER_DB_FILENAME)")
	flags.String("storage-dir", "", "Upload storage directory (overrides PLANNER_STORAGE_DIR)")
	flags.String("base-url", "", "Public base URL for uploads (overrides PLANNER_STORAGE_BASE_URL)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides PLANNER_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides PLANNER_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.newTaskCommand(),
		r.newGoalCommand(),
		r.newEventCommand(),
		r.newNoteCommand(),
		r.newContactCommand(),
		r.newSettingsCommand(),
		r.newDashboardCommand(),
		r.newWeekCommand(),
		r.newMonthCommand(),
	)
}

// runCtx returns a context bounded by the configured application timeout.
func (r *RootCommand) runCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if storageDir, _ := flags.GetString("storage-dir"); storageDir != "" {
		r.config.Storage.Dir = storageDir
	}
	if baseURL, _ := flags.GetString("base-url"); baseURL != "" {
		r.config.Storage.BaseURL = baseURL
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	logging.SetVerbose(r.config.Application.Verbose)

	return nil
}
