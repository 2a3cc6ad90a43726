package infrastructure

import (
	"context"

	"github.com/imamik/azprov/internal/platform/azure"
	"github.com/imamik/azprov/internal/provisioning"
)

// ProvisionNetwork ensures the virtual network and its subnet.
func (p *Provisioner) ProvisionNetwork(ctx *provisioning.Context) error {
	if err := p.ProvisionVirtualNetwork(ctx); err != nil {
		return err
	}
	return p.ProvisionSubnet(ctx)
}

// ProvisionVirtualNetwork ensures the virtual network with the configured address space.
func (p *Provisioner) ProvisionVirtualNetwork(ctx *provisioning.Context) error {
	cfg := ctx.Config

	if err := provisioning.RequireID(ctx, azure.KindVirtualNetwork, cfg.NetworkName, azure.KindResourceGroup, ctx.State.ResourceGroupID); err != nil {
		return err
	}

	id, err := provisioning.EnsureExists(ctx, phase, provisioning.ResourceFuncs{
		ResourceKind: azure.KindVirtualNetwork,
		ResourceName: cfg.NetworkName,
		LookupFunc: func(c context.Context) (string, bool, error) {
			return ctx.Infra.GetVirtualNetwork(c, cfg.ResourceGroupName, cfg.NetworkName)
		},
		CreateFunc: func(c context.Context) (string, error) {
			return ctx.Infra.CreateVirtualNetwork(c, azure.VirtualNetworkSpec{
				ResourceGroup: cfg.ResourceGroupName,
				Name:          cfg.NetworkName,
				Location:      cfg.Location,
				AddressSpace:  cfg.Network.AddressSpace,
				Tags:          cfg.ResourceTags(),
			})
		},
	})
	if err != nil {
		return err
	}

	ctx.State.VirtualNetworkID = id
	return nil
}

// ProvisionSubnet ensures the subnet inside the virtual network.
// An existing virtual network is never modified; only a missing subnet is added.
func (p *Provisioner) ProvisionSubnet(ctx *provisioning.Context) error {
	cfg := ctx.Config

	if err := provisioning.RequireID(ctx, azure.KindSubnet, cfg.SubnetName, azure.KindVirtualNetwork, ctx.State.VirtualNetworkID); err != nil {
		return err
	}

	id, err := provisioning.EnsureExists(ctx, phase, provisioning.ResourceFuncs{
		ResourceKind: azure.KindSubnet,
		ResourceName: cfg.SubnetName,
		LookupFunc: func(c context.Context) (string, bool, error) {
			return ctx.Infra.GetSubnet(c, cfg.ResourceGroupName, cfg.NetworkName, cfg.SubnetName)
		},
		CreateFunc: func(c context.Context) (string, error) {
			return ctx.Infra.CreateSubnet(c, azure.SubnetSpec{
				ResourceGroup:                  cfg.ResourceGroupName,
				VirtualNetwork:                 cfg.NetworkName,
				Name:                           cfg.SubnetName,
				AddressPrefix:                  cfg.Network.SubnetPrefix,
				PrivateEndpointNetworkPolicies: cfg.Network.PrivateEndpointNetworkPolicies,
			})
		},
	})
	if err != nil {
		return err
	}

	ctx.State.SubnetID = id
	return nil
}
