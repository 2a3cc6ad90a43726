package azure

import (
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v2"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/imamik/azprov/internal/config"
)

// RealClient implements InfrastructureManager using the Azure Resource Manager API.
type RealClient struct {
	subscriptionID string
	timeouts       *config.Timeouts
	armOptions     *arm.ClientOptions

	resourceGroups     *armresources.ResourceGroupsClient
	virtualNetworks    *armnetwork.VirtualNetworksClient
	subnets            *armnetwork.SubnetsClient
	publicIPs          *armnetwork.PublicIPAddressesClient
	interfaces         *armnetwork.InterfacesClient
	virtualMachines    *armcompute.VirtualMachinesClient
	diagnosticSettings *armmonitor.DiagnosticSettingsClient
	metricAlerts       *armmonitor.MetricAlertsClient
}

var _ InfrastructureManager = (*RealClient)(nil)

// ClientOption configures a RealClient.
type ClientOption func(*RealClient)

// WithTimeouts sets custom timeouts for the client.
func WithTimeouts(t *config.Timeouts) ClientOption {
	return func(c *RealClient) {
		c.timeouts = t
	}
}

// WithARMOptions sets the ARM client options (transport, cloud, logging) used by every SDK client.
func WithARMOptions(opts *arm.ClientOptions) ClientOption {
	return func(c *RealClient) {
		c.armOptions = opts
	}
}

// NewCredential creates a service principal credential from the secrets.
func NewCredential(s *config.Secrets) (azcore.TokenCredential, error) {
	cred, err := azidentity.NewClientSecretCredential(s.TenantID, s.ClientID, s.ClientSecret, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create client secret credential: %w", err)
	}
	return cred, nil
}

// NewRealClient creates the ARM clients for the given subscription.
func NewRealClient(subscriptionID string, cred azcore.TokenCredential, opts ...ClientOption) (*RealClient, error) {
	c := &RealClient{
		subscriptionID: subscriptionID,
		timeouts:       config.LoadTimeouts(),
	}
	for _, opt := range opts {
		opt(c)
	}

	var err error
	if c.resourceGroups, err = armresources.NewResourceGroupsClient(subscriptionID, cred, c.armOptions); err != nil {
		return nil, fmt.Errorf("failed to create resource groups client: %w", err)
	}
	if c.virtualNetworks, err = armnetwork.NewVirtualNetworksClient(subscriptionID, cred, c.armOptions); err != nil {
		return nil, fmt.Errorf("failed to create virtual networks client: %w", err)
	}
	if c.subnets, err = armnetwork.NewSubnetsClient(subscriptionID, cred, c.armOptions); err != nil {
		return nil, fmt.Errorf("failed to create subnets client: %w", err)
	}
	if c.publicIPs, err = armnetwork.NewPublicIPAddressesClient(subscriptionID, cred, c.armOptions); err != nil {
		return nil, fmt.Errorf("failed to create public IP addresses client: %w", err)
	}
	if c.interfaces, err = armnetwork.NewInterfacesClient(subscriptionID, cred, c.armOptions); err != nil {
		return nil, fmt.Errorf("failed to create network interfaces client: %w", err)
	}
	if c.virtualMachines, err = armcompute.NewVirtualMachinesClient(subscriptionID, cred, c.armOptions); err != nil {
		return nil, fmt.Errorf("failed to create virtual machines client: %w", err)
	}
	if c.diagnosticSettings, err = armmonitor.NewDiagnosticSettingsClient(cred, c.armOptions); err != nil {
		return nil, fmt.Errorf("failed to create diagnostic settings client: %w", err)
	}
	if c.metricAlerts, err = armmonitor.NewMetricAlertsClient(subscriptionID, cred, c.armOptions); err != nil {
		return nil, fmt.Errorf("failed to create metric alerts client: %w", err)
	}

	return c, nil
}

// SubscriptionID returns the subscription the client operates on.
func (c *RealClient) SubscriptionID() string {
	return c.subscriptionID
}
