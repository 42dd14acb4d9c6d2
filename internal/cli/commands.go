package cli

import (
	"github.com/spf13/cobra"
)

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Init command
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new instance",
		Long: `Create a new instance file with the configured multiplier and threshold.
The instance starts with the default group (id 0) and no tasks.`,
		Args: cobra.NoArgs,
		RunE: r.handler(func(app *App) Command { return NewInitCommand(app, force) }),
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Replace an existing instance")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show instance totals",
		Args:  cobra.NoArgs,
		RunE:  r.handler(func(app *App) Command { return NewStatusCommand(app) }),
	}

	// Group commands
	groupCmd := &cobra.Command{
		Use:   "group",
		Short: "Manage groups",
	}
	groupCmd.AddCommand(&cobra.Command{
		Use:   "add <title> [description]",
		Short: "Add a group",
		Long:  "Add a group at the end of the group list. Ids follow the last group's id.",
		Args:  cobra.MinimumNArgs(1),
		RunE:  r.handler(func(app *App) Command { return NewGroupAddCommand(app) }),
	})

	// Task commands
	taskCmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	var addGroup uint32
	taskAddCmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task",
		Long: `Add a task created now. Words are joined with spaces.

Examples:
  ac task add "Write the report"
  ac task add --group 1 Call the bank`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var group *uint32
			if cmd.Flags().Changed("group") {
				group = &addGroup
			}
			return NewTaskAddCommand(r.app, group).Execute(cmd.Context(), args)
		},
	}
	taskAddCmd.Flags().Uint32VarP(&addGroup, "group", "g", 0, "Group id to assign")

	var undo bool
	taskCompleteCmd := &cobra.Command{
		Use:   "complete <task id>",
		Short: "Mark a task complete",
		Args:  cobra.ExactArgs(1),
		RunE:  r.handler(func(app *App) Command { return NewTaskCompleteCommand(app, undo) }),
	}
	taskCompleteCmd.Flags().BoolVar(&undo, "undo", false, "Mark the task not complete")

	var unset bool
	taskOngoingCmd := &cobra.Command{
		Use:   "ongoing <task id>",
		Short: "Exclude a task from scoring",
		Args:  cobra.ExactArgs(1),
		RunE:  r.handler(func(app *App) Command { return NewTaskOngoingCommand(app, unset) }),
	}
	taskOngoingCmd.Flags().BoolVar(&unset, "clear", false, "Clear the ongoing flag")

	taskCmd.AddCommand(
		taskAddCmd,
		taskCompleteCmd,
		taskOngoingCmd,
		&cobra.Command{
			Use:   "assign <task id> <group id>",
			Short: "Move a task to a group",
			Long:  "Move a task to a group. The group does not have to exist; dumps show it as unknown.",
			Args:  cobra.ExactArgs(2),
			RunE:  r.handler(func(app *App) Command { return NewTaskAssignCommand(app) }),
		},
		&cobra.Command{
			Use:   "delete <task id>",
			Short: "Delete a task",
			Args:  cobra.ExactArgs(1),
			RunE:  r.handler(func(app *App) Command { return NewTaskDeleteCommand(app) }),
		},
	)

	scoreCmd := &cobra.Command{
		Use:   "score",
		Short: "Settle points for unscored tasks",
		Long: `Settle points for every task that is neither ongoing nor already scored.

A complete task within the threshold earns its age in days times the multiplier,
with a same-day completion counting as one day. An incomplete task at or past
the threshold is adjusted by (threshold - age) * multiplier in the opposite
direction. Every evaluated task is marked processed and never scored again.`,
		Args: cobra.NoArgs,
		RunE: r.handler(func(app *App) Command { return NewScoreCommand(app) }),
	}

	var format string
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print points and tasks",
		Args:  cobra.NoArgs,
		RunE:  r.handler(func(app *App) Command { return NewDumpCommand(app, format) }),
	}
	dumpCmd.Flags().StringVar(&format, "format", "text", "Output format: text or csv")

	exportCmd := &cobra.Command{
		Use:   "export [database path]",
		Short: "Copy the instance into a SQLite snapshot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewExportCommand(r.app, r.openRepo(r.config)).Execute(cmd.Context(), args)
		},
	}

	importCmd := &cobra.Command{
		Use:   "import [database path]",
		Short: "Replace the instance with a SQLite snapshot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewImportCommand(r.app, r.openRepo(r.config)).Execute(cmd.Context(), args)
		},
	}

	var savePath string
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the sample session on a throwaway instance",
		Long: `Build an instance with multiplier 10 and threshold 3, add a "Work" group and
four tasks, complete the first two, move the first into "Work", delete the
third, score and dump.`,
		Args: cobra.NoArgs,
		RunE: r.handler(func(app *App) Command { return NewDemoCommand(app, savePath) }),
	}
	demoCmd.Flags().StringVar(&savePath, "save", "", "Also save the demo instance to this path")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE:  r.handler(func(app *App) Command { return NewConfigCommand(app) }),
	}

	r.cmd.AddCommand(
		initCmd,
		statusCmd,
		groupCmd,
		taskCmd,
		scoreCmd,
		dumpCmd,
		exportCmd,
		importCmd,
		demoCmd,
		configCmd,
	)
}
