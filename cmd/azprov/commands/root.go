// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/azprov/cmd/azprov/handlers"
	"github.com/imamik/azprov/internal/config"
)

// Root returns the root command for the azprov CLI.
//
// Flags shared by the Azure-facing commands are persistent on the root and
// collected into one handlers.Options value.
func Root() *cobra.Command {
	opts := &handlers.Options{}

	cmd := &cobra.Command{
		Use:           "azprov",
		Short:         "Provision an Azure virtual machine and its monitoring",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", config.DefaultConfigFilename, "Path to configuration file (JSON or YAML)")
	flags.StringVar(&opts.EnvFile, "env-file", config.DefaultEnvFilename, "Env file loaded before reading credentials")
	flags.StringVar(&opts.LogFile, "log-file", config.DefaultLogFilename, "File that receives a copy of all log output (empty to disable)")
	flags.StringVar(&opts.LogFormat, "log-format", handlers.LogFormatText, "Log format: text or json")
	flags.StringVar(&opts.MetricsFile, "metrics-file", "", "Write run metrics in Prometheus textfile format to this path")

	// Azure commands
	cmd.AddCommand(Provision(opts))
	cmd.AddCommand(Monitor(opts))
	cmd.AddCommand(Alerts(opts))

	// Utility commands
	cmd.AddCommand(Init())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
