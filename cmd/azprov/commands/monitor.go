package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/azprov/cmd/azprov/handlers"
)

// Monitor returns the command that attaches monitoring to the VM.
//
// Flags:
//
//	--vm-id-source: How the VM resource ID is looked up, "cli" (az) or "api"
func Monitor(opts *handlers.Options) *cobra.Command {
	var vmIDSource string

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Attach diagnostic settings and metric alerts to the VM",
		Long: `Attach monitoring to an existing virtual machine.

The VM resource ID is looked up with 'az vm show' (or the compute API with
--vm-id-source=api). The command then routes the VM's metrics to the
log-analytics workspace named by WORKSPACE_ID, creates the CPU and memory
metric alert rules, and lists the enabled alert rules of the resource group.

The command fails when the VM does not exist.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Monitor(cmd.Context(), handlers.MonitorOptions{
				Options:    *opts,
				VMIDSource: vmIDSource,
			})
		},
	}

	cmd.Flags().StringVar(&vmIDSource, "vm-id-source", handlers.VMIDSourceCLI, "VM ID lookup: cli (az vm show) or api")

	return cmd
}
