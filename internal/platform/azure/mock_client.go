package azure

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"
)

// MockSubscriptionID is the subscription used in IDs minted by MockClient.
const MockSubscriptionID = "00000000-0000-0000-0000-000000000000"

// MockClient is an in-memory InfrastructureManager for tests.
// Resources live in a map keyed by ARM ID; every call is appended to Calls
// in invocation order. Create calls enforce the same dependencies ARM does.
type MockClient struct {
	mu sync.Mutex

	resources map[string]bool
	alerts    map[string]AlertRule

	// Calls records "<Method> <name>" for each call.
	Calls []string

	// Errors maps a method name (e.g. "CreateSubnet") to the error it returns.
	Errors map[string]error

	// DiagnosticSettings and MetricAlerts record accepted monitoring specs.
	DiagnosticSettings []DiagnosticSettingSpec
	MetricAlerts       []MetricAlertSpec
}

var _ InfrastructureManager = (*MockClient)(nil)

// NewMockClient returns an empty MockClient.
func NewMockClient() *MockClient {
	return &MockClient{
		resources: make(map[string]bool),
		alerts:    make(map[string]AlertRule),
		Errors:    make(map[string]error),
	}
}

// MockResourceGroupID and the builders below follow the ARM resource ID layout.
func MockResourceGroupID(rg string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s", MockSubscriptionID, rg)
}

func MockVirtualNetworkID(rg, name string) string {
	return MockResourceGroupID(rg) + "/providers/Microsoft.Network/virtualNetworks/" + name
}

func MockSubnetID(rg, vnet, name string) string {
	return MockVirtualNetworkID(rg, vnet) + "/subnets/" + name
}

func MockPublicIPID(rg, name string) string {
	return MockResourceGroupID(rg) + "/providers/Microsoft.Network/publicIPAddresses/" + name
}

func MockNetworkInterfaceID(rg, name string) string {
	return MockResourceGroupID(rg) + "/providers/Microsoft.Network/networkInterfaces/" + name
}

func MockVirtualMachineID(rg, name string) string {
	return MockResourceGroupID(rg) + "/providers/Microsoft.Compute/virtualMachines/" + name
}

// Seed marks the resource ID as pre-existing.
func (m *MockClient) Seed(ids ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		m.resources[strings.ToLower(id)] = true
	}
}

// SeedAlert adds an existing alert rule to a resource group.
func (m *MockClient) SeedAlert(resourceGroup string, rule AlertRule) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alerts[alertKey(resourceGroup, rule.Name)] = rule
}

// CreateCalls returns the recorded calls whose method starts with "Create".
func (m *MockClient) CreateCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, c := range m.Calls {
		if strings.HasPrefix(c, "Create") {
			out = append(out, c)
		}
	}
	return out
}

func (m *MockClient) record(method, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, method+" "+name)
	return m.Errors[method]
}

func (m *MockClient) exists(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resources[strings.ToLower(id)]
}

func (m *MockClient) lookup(method, name, id string) (string, bool, error) {
	if err := m.record(method, name); err != nil {
		return "", false, err
	}
	if m.exists(id) {
		return id, true, nil
	}
	return "", false, nil
}

func (m *MockClient) create(method, name, id string, deps ...string) (string, error) {
	if err := m.record(method, name); err != nil {
		return "", err
	}
	for _, dep := range deps {
		if dep == "" || !m.exists(dep) {
			return "", fmt.Errorf("%s %q: referenced resource %q not found", method, name, dep)
		}
	}
	m.Seed(id)
	return id, nil
}

// GetResourceGroup implements ResourceGroupManager.
func (m *MockClient) GetResourceGroup(_ context.Context, name string) (string, bool, error) {
	return m.lookup("GetResourceGroup", name, MockResourceGroupID(name))
}

// CreateResourceGroup implements ResourceGroupManager.
func (m *MockClient) CreateResourceGroup(_ context.Context, spec ResourceGroupSpec) (string, error) {
	return m.create("CreateResourceGroup", spec.Name, MockResourceGroupID(spec.Name))
}

// GetVirtualNetwork implements NetworkManager.
func (m *MockClient) GetVirtualNetwork(_ context.Context, rg, name string) (string, bool, error) {
	return m.lookup("GetVirtualNetwork", name, MockVirtualNetworkID(rg, name))
}

// CreateVirtualNetwork implements NetworkManager.
func (m *MockClient) CreateVirtualNetwork(_ context.Context, spec VirtualNetworkSpec) (string, error) {
	return m.create("CreateVirtualNetwork", spec.Name, MockVirtualNetworkID(spec.ResourceGroup, spec.Name),
		MockResourceGroupID(spec.ResourceGroup))
}

// GetSubnet implements NetworkManager.
func (m *MockClient) GetSubnet(_ context.Context, rg, vnet, name string) (string, bool, error) {
	return m.lookup("GetSubnet", name, MockSubnetID(rg, vnet, name))
}

// CreateSubnet implements NetworkManager.
func (m *MockClient) CreateSubnet(_ context.Context, spec SubnetSpec) (string, error) {
	return m.create("CreateSubnet", spec.Name, MockSubnetID(spec.ResourceGroup, spec.VirtualNetwork, spec.Name),
		MockVirtualNetworkID(spec.ResourceGroup, spec.VirtualNetwork))
}

// GetPublicIP implements NetworkManager.
func (m *MockClient) GetPublicIP(_ context.Context, rg, name string) (string, bool, error) {
	return m.lookup("GetPublicIP", name, MockPublicIPID(rg, name))
}

// CreatePublicIP implements NetworkManager.
func (m *MockClient) CreatePublicIP(_ context.Context, spec PublicIPSpec) (string, error) {
	return m.create("CreatePublicIP", spec.Name, MockPublicIPID(spec.ResourceGroup, spec.Name),
		MockResourceGroupID(spec.ResourceGroup))
}

// GetNetworkInterface implements NetworkManager.
func (m *MockClient) GetNetworkInterface(_ context.Context, rg, name string) (string, bool, error) {
	return m.lookup("GetNetworkInterface", name, MockNetworkInterfaceID(rg, name))
}

// CreateNetworkInterface implements NetworkManager.
func (m *MockClient) CreateNetworkInterface(_ context.Context, spec NetworkInterfaceSpec) (string, error) {
	return m.create("CreateNetworkInterface", spec.Name, MockNetworkInterfaceID(spec.ResourceGroup, spec.Name),
		spec.SubnetID, spec.PublicIPID)
}

// GetVirtualMachine implements ComputeManager.
func (m *MockClient) GetVirtualMachine(_ context.Context, rg, name string) (string, bool, error) {
	return m.lookup("GetVirtualMachine", name, MockVirtualMachineID(rg, name))
}

// CreateVirtualMachine implements ComputeManager.
func (m *MockClient) CreateVirtualMachine(_ context.Context, spec VirtualMachineSpec) (string, error) {
	if spec.AdminPassword == "" && spec.SSHPublicKey == "" {
		return "", fmt.Errorf("CreateVirtualMachine %q: no admin password or SSH public key", spec.Name)
	}
	return m.create("CreateVirtualMachine", spec.Name, MockVirtualMachineID(spec.ResourceGroup, spec.Name),
		spec.NetworkInterfaceID)
}

// CreateDiagnosticSetting implements MonitorManager.
func (m *MockClient) CreateDiagnosticSetting(_ context.Context, spec DiagnosticSettingSpec) (armmonitor.DiagnosticSettingsResource, error) {
	if err := m.record("CreateDiagnosticSetting", spec.Name); err != nil {
		return armmonitor.DiagnosticSettingsResource{}, err
	}
	if !m.exists(spec.ResourceURI) {
		return armmonitor.DiagnosticSettingsResource{}, fmt.Errorf("resource %q not found", spec.ResourceURI)
	}

	m.mu.Lock()
	m.DiagnosticSettings = append(m.DiagnosticSettings, spec)
	m.mu.Unlock()

	return armmonitor.DiagnosticSettingsResource{
		ID:   to.Ptr(spec.ResourceURI + "/providers/microsoft.insights/diagnosticSettings/" + spec.Name),
		Name: to.Ptr(spec.Name),
		Properties: &armmonitor.DiagnosticSettings{
			WorkspaceID: to.Ptr(spec.WorkspaceID),
			Metrics: []*armmonitor.MetricSettings{
				{Category: to.Ptr(spec.MetricCategory), Enabled: to.Ptr(true)},
			},
		},
	}, nil
}

// CreateMetricAlert implements MonitorManager.
func (m *MockClient) CreateMetricAlert(_ context.Context, spec MetricAlertSpec) (armmonitor.MetricAlertResource, error) {
	if err := m.record("CreateMetricAlert", spec.RuleName); err != nil {
		return armmonitor.MetricAlertResource{}, err
	}
	for _, scope := range spec.Scopes {
		if !m.exists(scope) {
			return armmonitor.MetricAlertResource{}, fmt.Errorf("scope %q not found", scope)
		}
	}

	id := MockResourceGroupID(spec.ResourceGroup) + "/providers/Microsoft.Insights/metricAlerts/" + spec.RuleName
	rule := AlertRule{
		ID:          id,
		Name:        spec.RuleName,
		Enabled:     true,
		Severity:    spec.Severity,
		Description: spec.Description,
	}

	m.mu.Lock()
	m.MetricAlerts = append(m.MetricAlerts, spec)
	m.alerts[alertKey(spec.ResourceGroup, spec.RuleName)] = rule
	m.mu.Unlock()

	return armmonitor.MetricAlertResource{
		ID:       to.Ptr(id),
		Name:     to.Ptr(spec.RuleName),
		Location: to.Ptr(spec.Location),
		Properties: &armmonitor.MetricAlertProperties{
			Description: to.Ptr(spec.Description),
			Enabled:     to.Ptr(true),
			Severity:    to.Ptr(spec.Severity),
		},
	}, nil
}

// ListMetricAlerts implements MonitorManager.
func (m *MockClient) ListMetricAlerts(_ context.Context, resourceGroup string) ([]AlertRule, error) {
	if err := m.record("ListMetricAlerts", resourceGroup); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	prefix := strings.ToLower(resourceGroup) + "/"
	var out []AlertRule
	for key, rule := range m.alerts {
		if strings.HasPrefix(key, prefix) {
			out = append(out, rule)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func alertKey(resourceGroup, name string) string {
	return strings.ToLower(resourceGroup) + "/" + name
}
