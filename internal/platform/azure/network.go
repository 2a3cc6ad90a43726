package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
)

// GetVirtualNetwork returns the ID of the named virtual network and whether it exists.
func (c *RealClient) GetVirtualNetwork(ctx context.Context, resourceGroup, name string) (string, bool, error) {
	return (&LookupOperation[armnetwork.VirtualNetworksClientGetResponse]{
		Name:         name,
		ResourceType: KindVirtualNetwork,
		Get: func(ctx context.Context) (armnetwork.VirtualNetworksClientGetResponse, error) {
			return c.virtualNetworks.Get(ctx, resourceGroup, name, nil)
		},
		ID: func(r armnetwork.VirtualNetworksClientGetResponse) *string { return r.ID },
	}).Execute(ctx, c)
}

// CreateVirtualNetwork creates a virtual network with a single address space and no subnets.
func (c *RealClient) CreateVirtualNetwork(ctx context.Context, spec VirtualNetworkSpec) (string, error) {
	params := armnetwork.VirtualNetwork{
		Location: to.Ptr(spec.Location),
		Tags:     toTags(spec.Tags),
		Properties: &armnetwork.VirtualNetworkPropertiesFormat{
			AddressSpace: &armnetwork.AddressSpace{
				AddressPrefixes: []*string{to.Ptr(spec.AddressSpace)},
			},
		},
	}

	return (&CreateOperation[armnetwork.VirtualNetworksClientCreateOrUpdateResponse]{
		Name:         spec.Name,
		ResourceType: KindVirtualNetwork,
		Begin: func(ctx context.Context) (*runtime.Poller[armnetwork.VirtualNetworksClientCreateOrUpdateResponse], error) {
			return c.virtualNetworks.BeginCreateOrUpdate(ctx, spec.ResourceGroup, spec.Name, params, nil)
		},
		ID: func(r armnetwork.VirtualNetworksClientCreateOrUpdateResponse) *string { return r.ID },
	}).Execute(ctx, c)
}

// GetSubnet returns the ID of the named subnet and whether it exists.
// A missing parent virtual network is reported as a missing subnet.
func (c *RealClient) GetSubnet(ctx context.Context, resourceGroup, virtualNetwork, name string) (string, bool, error) {
	return (&LookupOperation[armnetwork.SubnetsClientGetResponse]{
		Name:         name,
		ResourceType: KindSubnet,
		Get: func(ctx context.Context) (armnetwork.SubnetsClientGetResponse, error) {
			return c.subnets.Get(ctx, resourceGroup, virtualNetwork, name, nil)
		},
		ID: func(r armnetwork.SubnetsClientGetResponse) *string { return r.ID },
	}).Execute(ctx, c)
}

// CreateSubnet creates a subnet inside an existing virtual network.
func (c *RealClient) CreateSubnet(ctx context.Context, spec SubnetSpec) (string, error) {
	props := &armnetwork.SubnetPropertiesFormat{
		AddressPrefix: to.Ptr(spec.AddressPrefix),
	}
	if spec.PrivateEndpointNetworkPolicies != "" {
		props.PrivateEndpointNetworkPolicies = to.Ptr(armnetwork.VirtualNetworkPrivateEndpointNetworkPolicies(spec.PrivateEndpointNetworkPolicies))
	}

	return (&CreateOperation[armnetwork.SubnetsClientCreateOrUpdateResponse]{
		Name:         spec.Name,
		ResourceType: KindSubnet,
		Begin: func(ctx context.Context) (*runtime.Poller[armnetwork.SubnetsClientCreateOrUpdateResponse], error) {
			return c.subnets.BeginCreateOrUpdate(ctx, spec.ResourceGroup, spec.VirtualNetwork, spec.Name, armnetwork.Subnet{
				Properties: props,
			}, nil)
		},
		ID: func(r armnetwork.SubnetsClientCreateOrUpdateResponse) *string { return r.ID },
	}).Execute(ctx, c)
}
