package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/azprov/cmd/azprov/handlers"
)

// Provision returns the command that creates the VM and its dependencies.
//
// Flags:
//
//	--dry-run: Only check which resources exist
//	--key-dir: Directory for a generated SSH key pair (default: config file directory)
//
// Environment variables:
//
//	AZURE_SUBSCRIPTION_ID, AZURE_TENANT_ID, AZURE_CLIENT_ID, AZURE_CLIENT_SECRET,
//	ADMIN_USERNAME (required); ADMIN_PASSWORD (optional)
func Provision(opts *handlers.Options) *cobra.Command {
	var (
		dryRun bool
		keyDir string
	)

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Create the resource group, network and virtual machine",
		Long: `Create the resource group, virtual network, subnet, public IP,
network interface and virtual machine described by the configuration.

Every resource is looked up first and only created when missing, so the
command can be re-run safely. Resources are created strictly in dependency
order and the run stops at the first failure.

When ADMIN_PASSWORD is empty the VM uses SSH key authentication. The public
key is read from vm.ssh_public_key_path, or a new RSA key pair is generated
and the private key written to --key-dir.

Examples:
  # Provision using config.json and .env in the current directory
  azprov provision

  # Show what would be created
  azprov provision --dry-run

  # Use another configuration file
  azprov provision -c prod.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Provision(cmd.Context(), handlers.ProvisionOptions{
				Options: *opts,
				DryRun:  dryRun,
				KeyDir:  keyDir,
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Only check which resources exist, never create")
	cmd.Flags().StringVar(&keyDir, "key-dir", "", "Directory for a generated SSH key pair (default: config file directory)")

	return cmd
}
