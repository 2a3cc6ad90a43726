package infrastructure

import (
	"context"

	"github.com/imamik/azprov/internal/platform/azure"
	"github.com/imamik/azprov/internal/provisioning"
)

// ProvisionResourceGroup ensures the resource group exists.
func (p *Provisioner) ProvisionResourceGroup(ctx *provisioning.Context) error {
	cfg := ctx.Config

	id, err := provisioning.EnsureExists(ctx, phase, provisioning.ResourceFuncs{
		ResourceKind: azure.KindResourceGroup,
		ResourceName: cfg.ResourceGroupName,
		LookupFunc: func(c context.Context) (string, bool, error) {
			return ctx.Infra.GetResourceGroup(c, cfg.ResourceGroupName)
		},
		CreateFunc: func(c context.Context) (string, error) {
			return ctx.Infra.CreateResourceGroup(c, azure.ResourceGroupSpec{
				Name:     cfg.ResourceGroupName,
				Location: cfg.Location,
				Tags:     cfg.ResourceTags(),
			})
		},
	})
	if err != nil {
		return err
	}

	ctx.State.ResourceGroupID = id
	return nil
}
