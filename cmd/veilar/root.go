package main

import (
	"github.com/spf13/cobra"

	"github.com/veilar-ui/veilar/pkg/config"
	"github.com/veilar-ui/veilar/pkg/errors"
	"github.com/veilar-ui/veilar/pkg/logging"
)

type rootFlags struct {
	logLevel string
	human    bool
	verbose  bool
	envFile  string
}

// app is the state shared by subcommands once the root pre-run has
// resolved the environment and the logger.
type app struct {
	flags rootFlags
	env   config.Env
	log   *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "veilar",
		Short:         "Preview and inspect veilar style sheets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "Log level (overrides VEILAR_LOG_LEVEL)")
	cmd.PersistentFlags().BoolVar(&a.flags.human, "human", true, "Human readable log output")
	cmd.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "Include stack traces in error logs")
	cmd.PersistentFlags().StringVar(&a.flags.envFile, "env-file", ".env", "Dotenv file with VEILAR_ overrides")

	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newInspectCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	env, err := config.LoadEnv(a.flags.envFile)
	if err != nil {
		return err
	}
	a.env = env

	level := a.flags.logLevel
	if level == "" {
		level = env.LogLevel
	}
	if level == "" {
		level = "info"
	}
	log, err := logging.New(logging.Options{
		Level:         level,
		HumanReadable: a.flags.human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.log = log
	logging.SetDefault(log)
	errors.SetHandler(&errors.LogHandler{Logger: log, Verbose: a.flags.verbose})
	return nil
}

// loadSheet reads a sheet and applies the environment overrides.
func (a *app) loadSheet(path string) (*config.Sheet, error) {
	sheet, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	a.env.Apply(sheet)
	a.log.Debug().Str("sheet", path).Float64("density", sheet.Density).Int("controls", len(sheet.Controls)).Msg("sheet loaded")
	return sheet, nil
}
