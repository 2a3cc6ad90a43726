package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"
)

// Resource kinds, used in errors, events and metrics labels.
const (
	KindResourceGroup     = "resource group"
	KindVirtualNetwork    = "virtual network"
	KindSubnet            = "subnet"
	KindPublicIP          = "public IP"
	KindNetworkInterface  = "network interface"
	KindVirtualMachine    = "virtual machine"
	KindDiagnosticSetting = "diagnostic setting"
	KindMetricAlert       = "metric alert"
)

// ResourceGroupSpec describes a resource group to create.
type ResourceGroupSpec struct {
	Name     string
	Location string
	Tags     map[string]string
}

// VirtualNetworkSpec describes a virtual network to create.
type VirtualNetworkSpec struct {
	ResourceGroup string
	Name          string
	Location      string
	AddressSpace  string
	Tags          map[string]string
}

// SubnetSpec describes a subnet to create inside an existing virtual network.
type SubnetSpec struct {
	ResourceGroup                  string
	VirtualNetwork                 string
	Name                           string
	AddressPrefix                  string
	PrivateEndpointNetworkPolicies string
}

// PublicIPSpec describes a public IP address to create.
type PublicIPSpec struct {
	ResourceGroup    string
	Name             string
	Location         string
	AllocationMethod string
	Tags             map[string]string
}

// NetworkInterfaceSpec describes a NIC binding a subnet and a public IP.
type NetworkInterfaceSpec struct {
	ResourceGroup string
	Name          string
	Location      string
	IPConfigName  string
	SubnetID      string
	PublicIPID    string
	Tags          map[string]string
}

// ImageReference identifies a marketplace image.
type ImageReference struct {
	Publisher string
	Offer     string
	SKU       string
	Version   string
}

// VirtualMachineSpec describes a Linux virtual machine to create.
// Exactly one of AdminPassword or SSHPublicKey is expected to be set.
type VirtualMachineSpec struct {
	ResourceGroup      string
	Name               string
	Location           string
	Size               string
	Image              ImageReference
	AdminUsername      string
	AdminPassword      string
	SSHPublicKey       string
	NetworkInterfaceID string
	Tags               map[string]string
}

// DiagnosticSettingSpec routes a resource's metrics to a log-analytics workspace.
type DiagnosticSettingSpec struct {
	ResourceURI    string
	Name           string
	WorkspaceID    string
	MetricCategory string
}

// MetricAlertSpec describes a static-threshold "greater than" metric alert.
type MetricAlertSpec struct {
	ResourceGroup       string
	RuleName            string
	CriterionName       string
	MetricName          string
	Threshold           float64
	Severity            int32
	WindowSize          string
	EvaluationFrequency string
	Description         string
	Location            string
	Scopes              []string
	Tags                map[string]string
}

// AlertRule summarizes a metric alert rule returned by a list call.
type AlertRule struct {
	ID          string
	Name        string
	Enabled     bool
	Severity    int32
	Description string
}

// ResourceGroupManager defines the interface for managing resource groups.
type ResourceGroupManager interface {
	GetResourceGroup(ctx context.Context, name string) (string, bool, error)
	CreateResourceGroup(ctx context.Context, spec ResourceGroupSpec) (string, error)
}

// NetworkManager defines the interface for managing networking resources.
type NetworkManager interface {
	GetVirtualNetwork(ctx context.Context, resourceGroup, name string) (string, bool, error)
	CreateVirtualNetwork(ctx context.Context, spec VirtualNetworkSpec) (string, error)
	GetSubnet(ctx context.Context, resourceGroup, virtualNetwork, name string) (string, bool, error)
	CreateSubnet(ctx context.Context, spec SubnetSpec) (string, error)
	GetPublicIP(ctx context.Context, resourceGroup, name string) (string, bool, error)
	CreatePublicIP(ctx context.Context, spec PublicIPSpec) (string, error)
	GetNetworkInterface(ctx context.Context, resourceGroup, name string) (string, bool, error)
	CreateNetworkInterface(ctx context.Context, spec NetworkInterfaceSpec) (string, error)
}

// ComputeManager defines the interface for managing virtual machines.
type ComputeManager interface {
	GetVirtualMachine(ctx context.Context, resourceGroup, name string) (string, bool, error)
	CreateVirtualMachine(ctx context.Context, spec VirtualMachineSpec) (string, error)
}

// MonitorManager defines the interface for attaching monitoring configuration.
type MonitorManager interface {
	CreateDiagnosticSetting(ctx context.Context, spec DiagnosticSettingSpec) (armmonitor.DiagnosticSettingsResource, error)
	CreateMetricAlert(ctx context.Context, spec MetricAlertSpec) (armmonitor.MetricAlertResource, error)
	ListMetricAlerts(ctx context.Context, resourceGroup string) ([]AlertRule, error)
}

// InfrastructureManager combines all infrastructure interfaces.
type InfrastructureManager interface {
	ResourceGroupManager
	NetworkManager
	ComputeManager
	MonitorManager
}
