package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalJSON = `{
  "resource_group_name": "rg1",
  "location": "westeurope",
  "vm_name": "vm1",
  "network_name": "vnet1",
  "subnet_name": "snet1",
  "ip_name": "pip1",
  "network_interface": "nic1"
}`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadFile_JSONAppliesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFile(writeConfig(t, "config.json", minimalJSON))
	require.NoError(t, err)

	assert.Equal(t, "rg1", cfg.ResourceGroupName)
	assert.Equal(t, "westeurope", cfg.Location)
	assert.Equal(t, "vm1", cfg.VMName)
	assert.Equal(t, "vnet1", cfg.NetworkName)
	assert.Equal(t, "snet1", cfg.SubnetName)
	assert.Equal(t, "pip1", cfg.IPName)
	assert.Equal(t, "nic1", cfg.NetworkInterface)

	assert.Equal(t, DefaultAddressSpace, cfg.Network.AddressSpace)
	assert.Equal(t, DefaultSubnetPrefix, cfg.Network.SubnetPrefix)
	assert.Equal(t, "Dynamic", cfg.Network.PublicIPAllocation)
	assert.Equal(t, "Disabled", cfg.Network.PrivateEndpointNetworkPolicies)
	assert.Equal(t, "ipConfig1", cfg.Network.IPConfigName)

	assert.Equal(t, "Standard_B1s", cfg.VM.Size)
	assert.Equal(t, ImageConfig{Publisher: "Canonical", Offer: "UbuntuServer", SKU: "18.04-LTS", Version: "latest"}, cfg.VM.Image)

	assert.Equal(t, "vmDiagnosticSettings", cfg.Monitoring.DiagnosticSettingName)
	assert.Equal(t, "AllMetrics", cfg.Monitoring.MetricCategory)
	assert.Equal(t, float64(80), cfg.Monitoring.CPUAlert.Threshold)
	assert.Equal(t, "HighCPUUsage", cfg.Monitoring.CPUAlert.CriterionName)
	assert.Equal(t, float64(75), cfg.Monitoring.MemoryAlert.Threshold)
	assert.Equal(t, "Average_% Used Memory", cfg.Monitoring.MemoryAlert.MetricName)
	assert.Equal(t, 3, cfg.Monitoring.MemoryAlert.Severity)
	assert.Equal(t, "PT5M", cfg.Monitoring.MemoryAlert.WindowSize)
	assert.Equal(t, "PT1M", cfg.Monitoring.MemoryAlert.EvaluationFrequency)
}

func TestLoadFile_YAMLOverrides(t *testing.T) {
	t.Parallel()
	content := `
resource_group_name: rg1
location: northeurope
vm_name: vm1
network_name: vnet1
subnet_name: snet1
ip_name: pip1
network_interface: nic1
tags:
  env: dev
network:
  address_space: 10.1.0.0/16
  subnet_prefix: 10.1.2.0/24
  public_ip_allocation: Static
vm:
  size: Standard_B2s
monitoring:
  cpu_alert:
    threshold: 90
    severity: 2
`
	cfg, err := LoadFile(writeConfig(t, "config.yaml", content))
	require.NoError(t, err)

	assert.Equal(t, "10.1.0.0/16", cfg.Network.AddressSpace)
	assert.Equal(t, "10.1.2.0/24", cfg.Network.SubnetPrefix)
	assert.Equal(t, "Static", cfg.Network.PublicIPAllocation)
	assert.Equal(t, "Standard_B2s", cfg.VM.Size)
	assert.Equal(t, float64(90), cfg.Monitoring.CPUAlert.Threshold)
	assert.Equal(t, 2, cfg.Monitoring.CPUAlert.Severity)
	assert.Equal(t, "Average_% Processor Time", cfg.Monitoring.CPUAlert.RuleName)
	assert.Equal(t, map[string]string{"env": "dev", "managed-by": "azprov", "deployment": "vm1"}, cfg.ResourceTags())
}

func TestLoadFile_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing names",
			content: `{"location": "westeurope"}`,
			wantErr: "resource_group_name is required",
		},
		{
			name:    "unknown key",
			content: `{"resource_group": "rg1"}`,
			wantErr: "failed to decode config",
		},
		{
			name:    "malformed",
			content: `{"resource_group_name": `,
			wantErr: "failed to unmarshal config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadFile(writeConfig(t, "config.json", tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFile_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestResourceTags_DefaultsWin(t *testing.T) {
	t.Parallel()
	cfg := &Config{VMName: "vm1", Tags: map[string]string{"managed-by": "someone-else", "deployment": "x", "team": "ops"}}

	tags := cfg.ResourceTags()

	assert.Equal(t, "azprov", tags["managed-by"])
	assert.Equal(t, "vm1", tags["deployment"])
	assert.Equal(t, "ops", tags["team"])
}
