package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/perch"
	"github.com/simonhull/firebird-suite/perch/config"
	"github.com/simonhull/firebird-suite/perch/dialog"
	"github.com/simonhull/firebird-suite/perch/logger"
	"github.com/simonhull/firebird-suite/fledge/output"
)

// app carries state shared by the subcommands
type app struct {
	configPath string
	mode       string
	verbose    bool

	cfg *config.Config
	log logger.Logger

	// newPrompter builds the prompter for a run. Tests swap it for a dialog.Script.
	newPrompter func(cfg *config.Config) (dialog.Prompter, error)
}

func newApp() *app {
	return &app{newPrompter: terminalPrompter}
}

func terminalPrompter(cfg *config.Config) (dialog.Prompter, error) {
	return dialog.FromMode(cfg.Mode, os.Stdin, os.Stdout, cfg.DialogOptions())
}

// RootCmd creates and returns the root command for the perch CLI
func RootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perch",
		Short: "Dialog-style prompts for ints, floats, strings and characters",
		Long: `perch reads simple typed values from a person at the keyboard.

Every read either succeeds or records why the input was rejected:
• ints must be whole base-10 numbers
• floats must be decimal numbers
• chars must be exactly one character

Try the bank-account sample:
  perch bank`,
		Version:       perch.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose output for debugging")
	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.FileName, "Path to configuration file")
	cmd.PersistentFlags().StringVarP(&a.mode, "mode", "m", "", "Prompt style: auto, console or modal (overrides config)")

	cmd.AddCommand(a.bankCmd())
	cmd.AddCommand(a.askCmd())
	cmd.AddCommand(a.configCmd())
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "perch v%s\n", perch.Version)
		},
	})

	return cmd
}

// setup loads configuration and wires the logger before any subcommand runs.
func (a *app) setup() error {
	output.SetVerbose(a.verbose)

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.mode != "" {
		cfg.Mode = a.mode
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	level := cfg.LogLevel()
	if a.verbose {
		level = logger.LevelDebug
	}
	a.log = logger.New(level, os.Stderr)
	logger.SetDefault(a.log)

	output.Verbose(fmt.Sprintf("mode=%s config=%s", cfg.Mode, a.configPath))
	return nil
}

// Execute runs the root command, printing any error
func Execute() error {
	err := RootCmd().Execute()
	if err != nil {
		output.Error(err.Error())
	}
	return err
}
