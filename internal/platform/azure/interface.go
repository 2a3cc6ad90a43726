package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
)

// GetNetworkInterface returns the ID of the named NIC and whether it exists.
func (c *RealClient) GetNetworkInterface(ctx context.Context, resourceGroup, name string) (string, bool, error) {
	return (&LookupOperation[armnetwork.InterfacesClientGetResponse]{
		Name:         name,
		ResourceType: KindNetworkInterface,
		Get: func(ctx context.Context) (armnetwork.InterfacesClientGetResponse, error) {
			return c.interfaces.Get(ctx, resourceGroup, name, nil)
		},
		ID: func(r armnetwork.InterfacesClientGetResponse) *string { return r.ID },
	}).Execute(ctx, c)
}

// CreateNetworkInterface creates a NIC with one IP configuration
// referencing the subnet and the public IP by ID.
func (c *RealClient) CreateNetworkInterface(ctx context.Context, spec NetworkInterfaceSpec) (string, error) {
	params := armnetwork.Interface{
		Location: to.Ptr(spec.Location),
		Tags:     toTags(spec.Tags),
		Properties: &armnetwork.InterfacePropertiesFormat{
			IPConfigurations: []*armnetwork.InterfaceIPConfiguration{
				{
					Name: to.Ptr(spec.IPConfigName),
					Properties: &armnetwork.InterfaceIPConfigurationPropertiesFormat{
						PrivateIPAllocationMethod: to.Ptr(armnetwork.IPAllocationMethodDynamic),
						Subnet: &armnetwork.Subnet{
							ID: to.Ptr(spec.SubnetID),
						},
						PublicIPAddress: &armnetwork.PublicIPAddress{
							ID: to.Ptr(spec.PublicIPID),
						},
					},
				},
			},
		},
	}

	return (&CreateOperation[armnetwork.InterfacesClientCreateOrUpdateResponse]{
		Name:         spec.Name,
		ResourceType: KindNetworkInterface,
		Begin: func(ctx context.Context) (*runtime.Poller[armnetwork.InterfacesClientCreateOrUpdateResponse], error) {
			return c.interfaces.BeginCreateOrUpdate(ctx, spec.ResourceGroup, spec.Name, params, nil)
		},
		ID: func(r armnetwork.InterfacesClientCreateOrUpdateResponse) *string { return r.ID },
	}).Execute(ctx, c)
}
