package config

import (
	"errors"
	"fmt"
	"net"
)

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error

	required := []struct {
		key   string
		value string
	}{
		{"resource_group_name", c.ResourceGroupName},
		{"location", c.Location},
		{"vm_name", c.VMName},
		{"network_name", c.NetworkName},
		{"subnet_name", c.SubnetName},
		{"ip_name", c.IPName},
		{"network_interface", c.NetworkInterface},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", r.key))
		}
	}

	if err := c.validateNetwork(); err != nil {
		errs = append(errs, fmt.Errorf("network validation failed: %w", err))
	}
	if err := c.validateVM(); err != nil {
		errs = append(errs, fmt.Errorf("vm validation failed: %w", err))
	}
	if err := c.validateMonitoring(); err != nil {
		errs = append(errs, fmt.Errorf("monitoring validation failed: %w", err))
	}

	return errors.Join(errs...)
}

func (c *Config) validateNetwork() error {
	n := c.Network

	_, space, err := net.ParseCIDR(n.AddressSpace)
	if err != nil {
		return fmt.Errorf("invalid address_space %q: %w", n.AddressSpace, err)
	}
	subnetIP, subnet, err := net.ParseCIDR(n.SubnetPrefix)
	if err != nil {
		return fmt.Errorf("invalid subnet_prefix %q: %w", n.SubnetPrefix, err)
	}

	spaceOnes, _ := space.Mask.Size()
	subnetOnes, _ := subnet.Mask.Size()
	if !space.Contains(subnetIP) || subnetOnes < spaceOnes {
		return fmt.Errorf("subnet_prefix %s is not inside address_space %s", n.SubnetPrefix, n.AddressSpace)
	}

	if !ValidAllocationMethods[n.PublicIPAllocation] {
		return fmt.Errorf("public_ip_allocation must be Dynamic or Static, got %q", n.PublicIPAllocation)
	}
	if !ValidNetworkPolicies[n.PrivateEndpointNetworkPolicies] {
		return fmt.Errorf("private_endpoint_network_policies must be Enabled or Disabled, got %q", n.PrivateEndpointNetworkPolicies)
	}
	return nil
}

func (c *Config) validateVM() error {
	img := c.VM.Image
	if img.Publisher == "" || img.Offer == "" || img.SKU == "" || img.Version == "" {
		return fmt.Errorf("image publisher, offer, sku and version must all be set")
	}
	return nil
}

func (c *Config) validateMonitoring() error {
	if c.Monitoring.DiagnosticSettingName == "" {
		return fmt.Errorf("diagnostic_setting_name is required")
	}
	if err := c.Monitoring.CPUAlert.validate(); err != nil {
		return fmt.Errorf("cpu_alert: %w", err)
	}
	if err := c.Monitoring.MemoryAlert.validate(); err != nil {
		return fmt.Errorf("memory_alert: %w", err)
	}
	if c.Monitoring.CPUAlert.RuleName == c.Monitoring.MemoryAlert.RuleName {
		return fmt.Errorf("cpu_alert and memory_alert must use different rule names")
	}
	return nil
}

func (a AlertConfig) validate() error {
	if a.RuleName == "" || a.MetricName == "" || a.CriterionName == "" {
		return fmt.Errorf("rule_name, criterion_name and metric_name are required")
	}
	if a.Threshold <= 0 || a.Threshold > 100 {
		return fmt.Errorf("threshold must be in (0, 100], got %v", a.Threshold)
	}
	if a.Severity < 0 || a.Severity > 4 {
		return fmt.Errorf("severity must be between 0 and 4, got %d", a.Severity)
	}
	return nil
}
