package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/azprov/cmd/azprov/handlers"
)

// Alerts returns the command that lists enabled metric alert rules.
func Alerts(opts *handlers.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "List enabled metric alert rules of the resource group",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Alerts(cmd.Context(), *opts)
		},
	}
}
