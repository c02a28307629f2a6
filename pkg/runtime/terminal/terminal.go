package terminal

import (
	"io"
	"os"

	"github.com/de-tools/heightweight/pkg/runtime/app"
	"github.com/de-tools/heightweight/pkg/runtime/terminal/commands"
	"github.com/de-tools/heightweight/pkg/runtime/terminal/export"
	"github.com/de-tools/heightweight/pkg/services/config"
	"github.com/de-tools/heightweight/pkg/services/registry"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reporter  *export.Reporter
	rootCmd   *cobra.Command
	errOutput io.Writer

	cfgPath         string
	populationsFile string
	count           int
	seed            uint64
	logLevel        string

	cfg *config.Config
	app *app.App
}

// Options contain configuration for the CLI
type Options struct {
	Output    io.Writer
	ErrOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}

	cli := &CLI{
		reporter:  export.NewReporter(opts.Output),
		errOutput: opts.ErrOutput,
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	cli.rootCmd.SetErr(opts.ErrOutput)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "heightweight",
		Short:             "Synthetic height/weight sampling and linear regression",
		SilenceUsage:      true,
		PersistentPreRunE: cli.setup,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&cli.cfgPath, "config", "c", "", "Path to a YAML config file")
	flags.StringVar(&cli.populationsFile, "populations", "", "Path to a population profiles ini file")
	flags.IntVarP(&cli.count, "count", "n", 100, "Number of observations to generate")
	flags.Uint64Var(&cli.seed, "seed", 0, "Random seed (0 seeds from the clock)")
	flags.StringVar(&cli.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	cmd.AddCommand(commands.NewGenerateCmd(cli.App, cli.reporter))
	cmd.AddCommand(commands.NewFitCmd(cli.App, cli.reporter))
	cmd.AddCommand(commands.NewChartCmd(cli.App))
	cmd.AddCommand(commands.NewPopulationsCmd(cli.Registry, cli.reporter))

	return cmd
}

// setup loads configuration, lets explicit flags override it, and puts a
// logger into the command context.
func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cli.cfgPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("populations") {
		cfg.Sampling.PopulationsFile = cli.populationsFile
	}
	if flags.Changed("count") {
		cfg.Sampling.Count = cli.count
	}
	if flags.Changed("seed") {
		cfg.Sampling.Seed = cli.seed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = cli.logLevel
	}

	logger, err := app.NewLogger(cli.errOutput, cfg.LogLevel)
	if err != nil {
		return err
	}
	cmd.SetContext(logger.WithContext(cmd.Context()))

	if err := cfg.Validate(); err != nil {
		return err
	}
	cli.cfg = cfg
	return nil
}

// App wires the sampling pipeline on first use, so commands that only read
// profiles never resolve the mixture.
func (cli *CLI) App() (*app.App, error) {
	if cli.cfg == nil {
		return nil, errNotInitialized
	}
	if cli.app == nil {
		a, err := app.New(cli.cfg)
		if err != nil {
			return nil, err
		}
		cli.app = a
	}
	return cli.app, nil
}

func (cli *CLI) Registry() (registry.PopulationRegistry, error) {
	if cli.cfg == nil {
		return nil, errNotInitialized
	}
	return app.NewRegistry(cli.cfg.Sampling.PopulationsFile)
}
