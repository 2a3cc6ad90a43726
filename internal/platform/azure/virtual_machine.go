package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
)

// GetVirtualMachine returns the ID of the named VM and whether it exists.
func (c *RealClient) GetVirtualMachine(ctx context.Context, resourceGroup, name string) (string, bool, error) {
	return (&LookupOperation[armcompute.VirtualMachinesClientGetResponse]{
		Name:         name,
		ResourceType: KindVirtualMachine,
		Get: func(ctx context.Context) (armcompute.VirtualMachinesClientGetResponse, error) {
			return c.virtualMachines.Get(ctx, resourceGroup, name, nil)
		},
		ID: func(r armcompute.VirtualMachinesClientGetResponse) *string { return r.ID },
	}).Execute(ctx, c)
}

// CreateVirtualMachine creates a Linux VM attached to an existing NIC.
func (c *RealClient) CreateVirtualMachine(ctx context.Context, spec VirtualMachineSpec) (string, error) {
	params := armcompute.VirtualMachine{
		Location: to.Ptr(spec.Location),
		Tags:     toTags(spec.Tags),
		Properties: &armcompute.VirtualMachineProperties{
			HardwareProfile: &armcompute.HardwareProfile{
				VMSize: to.Ptr(armcompute.VirtualMachineSizeTypes(spec.Size)),
			},
			StorageProfile: &armcompute.StorageProfile{
				ImageReference: &armcompute.ImageReference{
					Publisher: to.Ptr(spec.Image.Publisher),
					Offer:     to.Ptr(spec.Image.Offer),
					SKU:       to.Ptr(spec.Image.SKU),
					Version:   to.Ptr(spec.Image.Version),
				},
				OSDisk: &armcompute.OSDisk{
					CreateOption: to.Ptr(armcompute.DiskCreateOptionTypesFromImage),
					Caching:      to.Ptr(armcompute.CachingTypesReadWrite),
					OSType:       to.Ptr(armcompute.OperatingSystemTypesLinux),
				},
			},
			OSProfile: osProfile(spec),
			NetworkProfile: &armcompute.NetworkProfile{
				NetworkInterfaces: []*armcompute.NetworkInterfaceReference{
					{
						ID: to.Ptr(spec.NetworkInterfaceID),
						Properties: &armcompute.NetworkInterfaceReferenceProperties{
							Primary: to.Ptr(true),
						},
					},
				},
			},
		},
	}

	return (&CreateOperation[armcompute.VirtualMachinesClientCreateOrUpdateResponse]{
		Name:         spec.Name,
		ResourceType: KindVirtualMachine,
		Begin: func(ctx context.Context) (*runtime.Poller[armcompute.VirtualMachinesClientCreateOrUpdateResponse], error) {
			return c.virtualMachines.BeginCreateOrUpdate(ctx, spec.ResourceGroup, spec.Name, params, nil)
		},
		ID: func(r armcompute.VirtualMachinesClientCreateOrUpdateResponse) *string { return r.ID },
	}).Execute(ctx, c)
}

// osProfile uses password authentication when a password is set, SSH keys otherwise.
func osProfile(spec VirtualMachineSpec) *armcompute.OSProfile {
	profile := &armcompute.OSProfile{
		ComputerName:  to.Ptr(spec.Name),
		AdminUsername: to.Ptr(spec.AdminUsername),
	}

	if spec.AdminPassword != "" {
		profile.AdminPassword = to.Ptr(spec.AdminPassword)
		return profile
	}

	profile.LinuxConfiguration = &armcompute.LinuxConfiguration{
		DisablePasswordAuthentication: to.Ptr(true),
		SSH: &armcompute.SSHConfiguration{
			PublicKeys: []*armcompute.SSHPublicKey{
				{
					Path:    to.Ptr(fmt.Sprintf("/home/%s/.ssh/authorized_keys", spec.AdminUsername)),
					KeyData: to.Ptr(spec.SSHPublicKey),
				},
			},
		},
	}
	return profile
}
