package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// GetResourceGroup returns the ID of the named resource group and whether it exists.
func (c *RealClient) GetResourceGroup(ctx context.Context, name string) (string, bool, error) {
	checkCtx, cancel := context.WithTimeout(ctx, c.timeouts.Lookup)
	defer cancel()

	exists, err := c.resourceGroups.CheckExistence(checkCtx, name, nil)
	if err != nil {
		return "", false, fmt.Errorf("failed to check %s %q: %w", KindResourceGroup, name, err)
	}
	if !exists.Success {
		return "", false, nil
	}

	return (&LookupOperation[armresources.ResourceGroupsClientGetResponse]{
		Name:         name,
		ResourceType: KindResourceGroup,
		Get: func(ctx context.Context) (armresources.ResourceGroupsClientGetResponse, error) {
			return c.resourceGroups.Get(ctx, name, nil)
		},
		ID: func(r armresources.ResourceGroupsClientGetResponse) *string { return r.ID },
	}).Execute(ctx, c)
}

// CreateResourceGroup creates the resource group. The call is synchronous.
func (c *RealClient) CreateResourceGroup(ctx context.Context, spec ResourceGroupSpec) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Create)
	defer cancel()

	resp, err := c.resourceGroups.CreateOrUpdate(ctx, spec.Name, armresources.ResourceGroup{
		Location: to.Ptr(spec.Location),
		Tags:     toTags(spec.Tags),
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create %s %q: %w", KindResourceGroup, spec.Name, err)
	}

	id := value(resp.ID)
	if id == "" {
		return "", fmt.Errorf("%s %q was created but returned no ID", KindResourceGroup, spec.Name)
	}
	return id, nil
}
