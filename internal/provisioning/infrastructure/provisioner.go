package infrastructure

import (
	"github.com/imamik/azprov/internal/provisioning"
)

const phase = "infrastructure"

// Provisioner handles infrastructure provisioning (resource group through network interface).
type Provisioner struct{}

// NewProvisioner creates a new infrastructure provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Name implements the provisioning.Phase interface.
func (p *Provisioner) Name() string {
	return phase
}

// Provision implements the provisioning.Phase interface.
func (p *Provisioner) Provision(ctx *provisioning.Context) error {
	// 1. Resource group
	if err := p.ProvisionResourceGroup(ctx); err != nil {
		return err
	}

	// 2. Virtual network and subnet
	if err := p.ProvisionNetwork(ctx); err != nil {
		return err
	}

	// 3. Public IP
	if err := p.ProvisionPublicIP(ctx); err != nil {
		return err
	}

	// 4. Network interface, bound to both of the above
	return p.ProvisionNetworkInterface(ctx)
}
