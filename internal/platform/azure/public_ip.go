package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
)

// GetPublicIP returns the ID of the named public IP address and whether it exists.
func (c *RealClient) GetPublicIP(ctx context.Context, resourceGroup, name string) (string, bool, error) {
	return (&LookupOperation[armnetwork.PublicIPAddressesClientGetResponse]{
		Name:         name,
		ResourceType: KindPublicIP,
		Get: func(ctx context.Context) (armnetwork.PublicIPAddressesClientGetResponse, error) {
			return c.publicIPs.Get(ctx, resourceGroup, name, nil)
		},
		ID: func(r armnetwork.PublicIPAddressesClientGetResponse) *string { return r.ID },
	}).Execute(ctx, c)
}

// CreatePublicIP creates a public IP address with the requested allocation method.
func (c *RealClient) CreatePublicIP(ctx context.Context, spec PublicIPSpec) (string, error) {
	params := armnetwork.PublicIPAddress{
		Location: to.Ptr(spec.Location),
		Tags:     toTags(spec.Tags),
		Properties: &armnetwork.PublicIPAddressPropertiesFormat{
			PublicIPAllocationMethod: to.Ptr(armnetwork.IPAllocationMethod(spec.AllocationMethod)),
		},
	}

	return (&CreateOperation[armnetwork.PublicIPAddressesClientCreateOrUpdateResponse]{
		Name:         spec.Name,
		ResourceType: KindPublicIP,
		Begin: func(ctx context.Context) (*runtime.Poller[armnetwork.PublicIPAddressesClientCreateOrUpdateResponse], error) {
			return c.publicIPs.BeginCreateOrUpdate(ctx, spec.ResourceGroup, spec.Name, params, nil)
		},
		ID: func(r armnetwork.PublicIPAddressesClientCreateOrUpdateResponse) *string { return r.ID },
	}).Execute(ctx, c)
}
