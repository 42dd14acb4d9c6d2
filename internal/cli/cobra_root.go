package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ac-tracker/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd        *cobra.Command
	app        *App
	config     *config.Config
	newAPI     APIFactory
	openRepo   func(cfg *config.Config) RepositoryOpener
	out        io.Writer
	configured bool
}

// NewRootCommand creates the root cobra command with global flags. The API is
// built by newAPI after flags have been applied to cfg.
func NewRootCommand(cfg *config.Config, newAPI APIFactory) *RootCommand {
	root := &RootCommand{
		config:   cfg,
		newAPI:   newAPI,
		openRepo: DefaultRepositoryOpener,
	}

	root.cmd = &cobra.Command{
		Use:   "ac",
		Short: "A gamified task tracker",
		Long: `ac keeps a list of tasks in groups and turns them into points.

Completing a task within the threshold earns age-in-days times the multiplier
(a same-day completion counts as one day). Scoring settles each task once;
ongoing tasks are never scored.

EXAMPLES:
  ac init                                  # Create a new instance
  ac group add Work "Work group"           # Add a group (gets id 1)
  ac task add "Write the report"           # Add a task to the default group
  ac task complete 0                       # Mark task 0 complete
  ac task assign 0 1                       # Move task 0 to group 1
  ac score                                 # Settle points
  ac dump                                  # Print points and tasks
  ac export backup.db                      # Copy the instance into SQLite

CONFIGURATION:
  Priority order: command-line flags > environment variables > config file > defaults
  The config file is $AC_CONFIG, or config.toml in the data directory.

    AC_MULTIPLIER                          Points per day (default: 10)
    AC_THRESHOLD                           Threshold in days (default: 3)
    AC_DATA_DIR                            Data directory (default: ~/.ac)
    AC_DATA_FILENAME                       Instance file (default: instance.dat)
    AC_SNAPSHOT_FILENAME                   SQLite snapshot (default: snapshot.db)
    AC_TIME_DISPLAY_FORMAT                 Time format (default: 2006-01-02 15:04:05)
    AC_DISPLAY_UNKNOWN_GROUP               Marker for dangling groups (default: unknown group)
    AC_DISPLAY_RELATIVE_TIMES              Show task ages as "3 days ago" (default: false)
    AC_APP_VERBOSE                         Enable verbose output (default: false)
    AC_DEBUG                               Debug logging to stderr
    AC_ENV                                 development, testing or production`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.configure(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// SetOutput redirects command output, mainly for tests.
func (r *RootCommand) SetOutput(w io.Writer) {
	r.out = w
	r.cmd.SetOut(w)
	r.cmd.SetErr(w)
}

// SetArgs sets the arguments used instead of os.Args.
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx passed to every handler
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.Uint32("multiplier", 0, "Points per day (overrides AC_MULTIPLIER)")
	flags.Uint32("threshold", 0, "Threshold in days (overrides AC_THRESHOLD)")

	flags.String("data-dir", "", "Data directory (overrides AC_DATA_DIR)")
	flags.String("data-file", "", "Instance filename (overrides AC_DATA_FILENAME)")
	flags.String("snapshot-file", "", "SQLite snapshot filename (overrides AC_SNAPSHOT_FILENAME)")

	flags.String("time-format", "", "Time display format (overrides AC_TIME_DISPLAY_FORMAT)")
	flags.String("unknown-group", "", "Marker for unresolved groups (overrides AC_DISPLAY_UNKNOWN_GROUP)")
	flags.Bool("relative-times", false, "Show task ages relative to now (overrides AC_DISPLAY_RELATIVE_TIMES)")

	flags.BoolP("verbose", "v", false, "Enable verbose output (overrides AC_APP_VERBOSE)")
}

// configure applies the flags the user set, validates the result and builds the app
func (r *RootCommand) configure(cmd *cobra.Command) error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}
	if r.configured {
		return nil
	}

	overrides, err := overridesFromFlags(cmd)
	if err != nil {
		return err
	}
	r.config.ApplyOverrides(overrides)
	if err := r.config.Validate(); err != nil {
		return NewErrorHandler().Handle("load configuration", err)
	}

	out := r.out
	if out == nil {
		out = cmd.OutOrStdout()
	}
	r.app = NewApp(r.newAPI(r.config), r.config, out)
	r.configured = true
	return nil
}

// overridesFromFlags collects only the flags that were given on the command line
func overridesFromFlags(cmd *cobra.Command) (*config.ConfigOverrides, error) {
	flags := cmd.Flags()
	o := &config.ConfigOverrides{}

	uint32Flag := func(name string, dst **uint32) error {
		if !flags.Changed(name) {
			return nil
		}
		v, err := flags.GetUint32(name)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
	stringFlag := func(name string, dst **string) error {
		if !flags.Changed(name) {
			return nil
		}
		v, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
	boolFlag := func(name string, dst **bool) error {
		if !flags.Changed(name) {
			return nil
		}
		v, err := flags.GetBool(name)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}

	for _, err := range []error{
		uint32Flag("multiplier", &o.Multiplier),
		uint32Flag("threshold", &o.Threshold),
		stringFlag("data-dir", &o.DataDir),
		stringFlag("data-file", &o.DataFilename),
		stringFlag("snapshot-file", &o.SnapshotFilename),
		stringFlag("time-format", &o.TimeFormat),
		stringFlag("unknown-group", &o.UnknownGroup),
		boolFlag("relative-times", &o.RelativeTimes),
		boolFlag("verbose", &o.Verbose),
	} {
		if err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Command represents a CLI command handler
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// handler wraps a command handler constructor as a cobra RunE. The handler is
// built at run time, after configure has created the app.
func (r *RootCommand) handler(build func(app *App) Command) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return build(r.app).Execute(cmd.Context(), args)
	}
}
