package terminal

import (
	"io"
	"os"

	"github.com/de-tools/hospital-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/hospital-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/hospital-atlas/pkg/services/dashboard"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	session   *session
	flags     *globalFlags
	reporter  *export.Reporter
	previewer *Reporter
	logOutput io.Writer
	output    io.Writer
	rootCmd   *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Backends dashboard.BackendRegistry
	Output   io.Writer
	// LogOutput receives structured logs, stderr by default
	LogOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	if opts.Backends == nil {
		opts.Backends = dashboard.NewBackendRegistry()
	}

	flags := &globalFlags{}
	cli := &CLI{
		flags:     flags,
		session:   newSession(flags, opts.Backends),
		reporter:  export.NewReporter(opts.Output),
		previewer: NewReporter(opts.Output),
		logOutput: opts.LogOutput,
		output:    opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides os.Args, used by tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "hospital-atlas",
		Short:             "Hospital cost, activity and forecast dashboard",
		SilenceUsage:      true,
		PersistentPreRunE: cli.setupLogger,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return cli.session.Close()
		},
	}
	cmd.SetOut(cli.output)

	pf := cmd.PersistentFlags()
	pf.StringVar(&cli.flags.configPath, "config", "", "Path to a settings file (yaml, toml or json)")
	pf.StringVar(&cli.flags.profilesPath, "profiles", "", "Path to the connection profiles file (default is $HOME/.hospitalcfg)")
	pf.StringVarP(&cli.flags.profile, "profile", "p", "", "Connection profile to use")
	pf.StringVar(&cli.flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	cmd.AddCommand(commands.NewOverviewCmd(cli.session, cli.reporter))
	cmd.AddCommand(commands.NewSeriesCmd(cli.session, cli.reporter))
	cmd.AddCommand(commands.NewForecastCmd(cli.session, cli.reporter))
	cmd.AddCommand(commands.NewReportCmd(cli.session, cli.previewer))
	cmd.AddCommand(commands.NewProfilesCmd(cli.session, cli.reporter))

	return cmd
}

func (cli *CLI) setupLogger(cmd *cobra.Command, _ []string) error {
	level, err := zerolog.ParseLevel(cli.flags.logLevel)
	if err != nil {
		return err
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cli.logOutput}).
		Level(level).
		With().
		Timestamp().
		Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}
