package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/huh"
	"sigs.k8s.io/yaml"

	"github.com/imamik/azprov/internal/util/naming"
)

// Locations offered by the wizard. Any valid Azure region works in the file.
var wizardLocations = []string{
	"westeurope",
	"northeurope",
	"germanywestcentral",
	"eastus",
	"eastus2",
	"westus2",
	"uksouth",
}

// WizardResult holds the user's choices from the init wizard.
type WizardResult struct {
	ResourceGroupName string
	Location          string
	VMName            string
	NetworkName       string
	SubnetName        string
	IPName            string
	NetworkInterface  string
	VMSize            string
}

// RunWizard asks for the resource names of a new deployment.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		Location: "westeurope",
		VMSize:   DefaultVMSize,
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Virtual machine name").
				Description("Other names default to <type>-<vm name>").
				Placeholder("web01").
				Value(&result.VMName).
				Validate(validateResourceName),
			huh.NewSelect[string]().
				Title("Location").
				Options(huh.NewOptions(wizardLocations...)...).
				Value(&result.Location),
		).Title("Virtual Machine"),

		huh.NewGroup(
			optionalNameInput("Resource group", naming.ResourceGroup, &result.ResourceGroupName),
			optionalNameInput("Virtual network name", naming.VirtualNetwork, &result.NetworkName),
			optionalNameInput("Subnet name", naming.Subnet, &result.SubnetName),
			optionalNameInput("Public IP name", naming.PublicIP, &result.IPName),
			optionalNameInput("Network interface name", naming.NetworkInterface, &result.NetworkInterface),
		).Title("Resource Names").Description("Leave a name empty to use the default"),

		huh.NewGroup(
			huh.NewSelect[string]().
				Title("VM size").
				Options(
					huh.NewOption("Standard_B1s - 1 vCPU, 1GB RAM", "Standard_B1s"),
					huh.NewOption("Standard_B2s - 2 vCPU, 4GB RAM", "Standard_B2s"),
					huh.NewOption("Standard_D2s_v5 - 2 vCPU, 8GB RAM", "Standard_D2s_v5"),
				).
				Value(&result.VMSize),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// optionalNameInput asks for a name that falls back to derive(vm name).
func optionalNameInput(title string, derive func(string) string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(derive("<vm>")).
		Value(value).
		Validate(func(s string) error {
			if s == "" {
				return nil
			}
			return validateResourceName(s)
		})
}

// ToConfig converts the wizard result to a Config with defaults applied.
// Empty resource names are derived from the VM name.
func (r *WizardResult) ToConfig() *Config {
	setDefault(&r.ResourceGroupName, naming.ResourceGroup(r.VMName))
	setDefault(&r.NetworkName, naming.VirtualNetwork(r.VMName))
	setDefault(&r.SubnetName, naming.Subnet(r.VMName))
	setDefault(&r.IPName, naming.PublicIP(r.VMName))
	setDefault(&r.NetworkInterface, naming.NetworkInterface(r.VMName))

	cfg := &Config{
		ResourceGroupName: r.ResourceGroupName,
		Location:          r.Location,
		VMName:            r.VMName,
		NetworkName:       r.NetworkName,
		SubnetName:        r.SubnetName,
		IPName:            r.IPName,
		NetworkInterface:  r.NetworkInterface,
		VM:                VMConfig{Size: r.VMSize},
	}
	cfg.ApplyDefaults()
	return cfg
}

// Save writes cfg to path. Files ending in .json are written as JSON,
// everything else as YAML.
func Save(cfg *Config, path string) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(cfg, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// validateResourceName applies the rules shared by all names the wizard asks for.
func validateResourceName(s string) error {
	if s == "" {
		return fmt.Errorf("name is required")
	}
	if len(s) > 64 {
		return fmt.Errorf("name must be 64 characters or less")
	}
	for _, c := range s {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_' || c == '.') {
			return fmt.Errorf("name can only contain letters, numbers, '-', '_' and '.'")
		}
	}
	if strings.HasSuffix(s, ".") {
		return fmt.Errorf("name cannot end with '.'")
	}
	return nil
}
