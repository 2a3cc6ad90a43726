package infrastructure

import (
	"context"

	"github.com/imamik/azprov/internal/platform/azure"
	"github.com/imamik/azprov/internal/provisioning"
)

// ProvisionNetworkInterface ensures the NIC binding the subnet and the public IP.
// Both IDs must already be in state.
func (p *Provisioner) ProvisionNetworkInterface(ctx *provisioning.Context) error {
	cfg := ctx.Config
	state := ctx.State

	if err := provisioning.RequireID(ctx, azure.KindNetworkInterface, cfg.NetworkInterface, azure.KindSubnet, state.SubnetID); err != nil {
		return err
	}
	if err := provisioning.RequireID(ctx, azure.KindNetworkInterface, cfg.NetworkInterface, azure.KindPublicIP, state.PublicIPID); err != nil {
		return err
	}

	id, err := provisioning.EnsureExists(ctx, phase, provisioning.ResourceFuncs{
		ResourceKind: azure.KindNetworkInterface,
		ResourceName: cfg.NetworkInterface,
		LookupFunc: func(c context.Context) (string, bool, error) {
			return ctx.Infra.GetNetworkInterface(c, cfg.ResourceGroupName, cfg.NetworkInterface)
		},
		CreateFunc: func(c context.Context) (string, error) {
			return ctx.Infra.CreateNetworkInterface(c, azure.NetworkInterfaceSpec{
				ResourceGroup: cfg.ResourceGroupName,
				Name:          cfg.NetworkInterface,
				Location:      cfg.Location,
				IPConfigName:  cfg.Network.IPConfigName,
				SubnetID:      state.SubnetID,
				PublicIPID:    state.PublicIPID,
				Tags:          cfg.ResourceTags(),
			})
		},
	})
	if err != nil {
		return err
	}

	state.NetworkInterfaceID = id
	return nil
}
