package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/azprov/cmd/azprov/handlers"
	"github.com/imamik/azprov/internal/config"
)

// Init returns the command for interactively creating a configuration file.
//
// Flags:
//
//	--output, -o: Path to output file (default "config.json")
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a configuration file",
		Long: `Interactively create a configuration file.

The wizard asks for the resource group, location, network resource names,
VM name and VM size. Every other setting gets its default value and is
written out explicitly so it can be edited afterwards.

Files ending in .json are written as JSON, anything else as YAML.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultConfigFilename, "Output file path")

	return cmd
}
