package infrastructure

import (
	"context"

	"github.com/imamik/azprov/internal/platform/azure"
	"github.com/imamik/azprov/internal/provisioning"
)

// ProvisionPublicIP ensures the public IP address.
func (p *Provisioner) ProvisionPublicIP(ctx *provisioning.Context) error {
	cfg := ctx.Config

	if err := provisioning.RequireID(ctx, azure.KindPublicIP, cfg.IPName, azure.KindResourceGroup, ctx.State.ResourceGroupID); err != nil {
		return err
	}

	id, err := provisioning.EnsureExists(ctx, phase, provisioning.ResourceFuncs{
		ResourceKind: azure.KindPublicIP,
		ResourceName: cfg.IPName,
		LookupFunc: func(c context.Context) (string, bool, error) {
			return ctx.Infra.GetPublicIP(c, cfg.ResourceGroupName, cfg.IPName)
		},
		CreateFunc: func(c context.Context) (string, error) {
			return ctx.Infra.CreatePublicIP(c, azure.PublicIPSpec{
				ResourceGroup:    cfg.ResourceGroupName,
				Name:             cfg.IPName,
				Location:         cfg.Location,
				AllocationMethod: cfg.Network.PublicIPAllocation,
				Tags:             cfg.ResourceTags(),
			})
		},
	})
	if err != nil {
		return err
	}

	ctx.State.PublicIPID = id
	return nil
}
