package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses the configuration from a JSON or YAML file,
// applies defaults and validates the result.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Parse decodes raw config bytes and applies defaults without validating.
// JSON input is accepted since it is a subset of YAML.
func Parse(data []byte) (*Config, error) {
	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(rawConfig); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills every unset optional field with its default.
func (c *Config) ApplyDefaults() {
	n := &c.Network
	setDefault(&n.AddressSpace, DefaultAddressSpace)
	setDefault(&n.SubnetPrefix, DefaultSubnetPrefix)
	setDefault(&n.PrivateEndpointNetworkPolicies, DefaultPrivateEndpointNetworkPolicies)
	setDefault(&n.PublicIPAllocation, DefaultPublicIPAllocation)
	setDefault(&n.IPConfigName, DefaultIPConfigName)

	vm := &c.VM
	setDefault(&vm.Size, DefaultVMSize)
	setDefault(&vm.Image.Publisher, DefaultImagePublisher)
	setDefault(&vm.Image.Offer, DefaultImageOffer)
	setDefault(&vm.Image.SKU, DefaultImageSKU)
	setDefault(&vm.Image.Version, DefaultImageVersion)

	m := &c.Monitoring
	setDefault(&m.DiagnosticSettingName, DefaultDiagnosticSettingName)
	setDefault(&m.MetricCategory, DefaultMetricCategory)

	applyAlertDefaults(&m.CPUAlert, AlertConfig{
		RuleName:      DefaultCPUAlertRuleName,
		CriterionName: DefaultCPUCriterionName,
		MetricName:    DefaultCPUMetricName,
		Threshold:     DefaultCPUThreshold,
		Description:   DefaultCPUAlertDescription,
	})
	applyAlertDefaults(&m.MemoryAlert, AlertConfig{
		RuleName:      DefaultMemoryAlertRuleName,
		CriterionName: DefaultMemoryCriterionName,
		MetricName:    DefaultMemoryMetricName,
		Threshold:     DefaultMemoryThreshold,
		Description:   DefaultMemoryAlertDescription,
	})
}

func applyAlertDefaults(a *AlertConfig, d AlertConfig) {
	setDefault(&a.RuleName, d.RuleName)
	setDefault(&a.CriterionName, d.CriterionName)
	setDefault(&a.MetricName, d.MetricName)
	setDefault(&a.Description, d.Description)
	setDefault(&a.WindowSize, DefaultAlertWindowSize)
	setDefault(&a.EvaluationFrequency, DefaultAlertEvaluationFrequency)
	if a.Threshold == 0 {
		a.Threshold = d.Threshold
	}
	if a.Severity == 0 {
		a.Severity = DefaultAlertSeverity
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
