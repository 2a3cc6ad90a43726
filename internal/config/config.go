package config

import "github.com/imamik/azprov/internal/util/tags"

// Config is the desired state of a single-VM deployment.
//
// The top-level name fields use the flat config.json layout so existing
// files keep working. Every nested section is optional and falls
// back to the defaults in constants.go.
type Config struct {
	ResourceGroupName string `mapstructure:"resource_group_name" json:"resource_group_name"`
	Location          string `mapstructure:"location" json:"location"`
	VMName            string `mapstructure:"vm_name" json:"vm_name"`
	NetworkName       string `mapstructure:"network_name" json:"network_name"`
	SubnetName        string `mapstructure:"subnet_name" json:"subnet_name"`
	IPName            string `mapstructure:"ip_name" json:"ip_name"`
	NetworkInterface  string `mapstructure:"network_interface" json:"network_interface"`

	// Tags are applied to every created resource in addition to the
	// managed-by and deployment tags.
	Tags map[string]string `mapstructure:"tags" json:"tags,omitempty"`

	Network    NetworkConfig    `mapstructure:"network" json:"network,omitempty"`
	VM         VMConfig         `mapstructure:"vm" json:"vm,omitempty"`
	Monitoring MonitoringConfig `mapstructure:"monitoring" json:"monitoring,omitempty"`
}

// NetworkConfig holds the address plan and public IP settings.
type NetworkConfig struct {
	AddressSpace                   string `mapstructure:"address_space" json:"address_space,omitempty"`
	SubnetPrefix                   string `mapstructure:"subnet_prefix" json:"subnet_prefix,omitempty"`
	PrivateEndpointNetworkPolicies string `mapstructure:"private_endpoint_network_policies" json:"private_endpoint_network_policies,omitempty"`
	PublicIPAllocation             string `mapstructure:"public_ip_allocation" json:"public_ip_allocation,omitempty"`
	IPConfigName                   string `mapstructure:"ip_config_name" json:"ip_config_name,omitempty"`
}

// VMConfig holds the virtual machine hardware and image settings.
type VMConfig struct {
	Size  string      `mapstructure:"size" json:"size,omitempty"`
	Image ImageConfig `mapstructure:"image" json:"image,omitempty"`

	// SSHPublicKeyPath points to an authorized_keys formatted public key.
	// Used when no admin password is provided; if empty a key pair is generated.
	SSHPublicKeyPath string `mapstructure:"ssh_public_key_path" json:"ssh_public_key_path,omitempty"`
}

// ImageConfig identifies a marketplace image.
type ImageConfig struct {
	Publisher string `mapstructure:"publisher" json:"publisher,omitempty"`
	Offer     string `mapstructure:"offer" json:"offer,omitempty"`
	SKU       string `mapstructure:"sku" json:"sku,omitempty"`
	Version   string `mapstructure:"version" json:"version,omitempty"`
}

// MonitoringConfig holds the diagnostic setting and alert rule payloads.
type MonitoringConfig struct {
	DiagnosticSettingName string      `mapstructure:"diagnostic_setting_name" json:"diagnostic_setting_name,omitempty"`
	MetricCategory        string      `mapstructure:"metric_category" json:"metric_category,omitempty"`
	CPUAlert              AlertConfig `mapstructure:"cpu_alert" json:"cpu_alert,omitempty"`
	MemoryAlert           AlertConfig `mapstructure:"memory_alert" json:"memory_alert,omitempty"`
}

// AlertConfig describes one static-threshold metric alert rule.
type AlertConfig struct {
	RuleName            string  `mapstructure:"rule_name" json:"rule_name,omitempty"`
	CriterionName       string  `mapstructure:"criterion_name" json:"criterion_name,omitempty"`
	MetricName          string  `mapstructure:"metric_name" json:"metric_name,omitempty"`
	Threshold           float64 `mapstructure:"threshold" json:"threshold,omitempty"`
	Severity            int     `mapstructure:"severity" json:"severity,omitempty"`
	WindowSize          string  `mapstructure:"window_size" json:"window_size,omitempty"`
	EvaluationFrequency string  `mapstructure:"evaluation_frequency" json:"evaluation_frequency,omitempty"`
	Description         string  `mapstructure:"description" json:"description,omitempty"`
}

// ResourceTags returns the tags to apply to created resources.
// The standard tags always win over user tags with the same key.
func (c *Config) ResourceTags() map[string]string {
	return tags.NewTagBuilder(c.VMName).Merge(c.Tags).Build()
}
