package config

// Defaults for the network plan.
const (
	DefaultAddressSpace                   = "10.0.0.0/16"
	DefaultSubnetPrefix                   = "10.0.10.0/24"
	DefaultPrivateEndpointNetworkPolicies = "Disabled"
	DefaultPublicIPAllocation             = "Dynamic"
	DefaultIPConfigName                   = "ipConfig1"
)

// Defaults for the virtual machine.
const (
	DefaultVMSize         = "Standard_B1s"
	DefaultImagePublisher = "Canonical"
	DefaultImageOffer     = "UbuntuServer"
	DefaultImageSKU       = "18.04-LTS"
	DefaultImageVersion   = "latest"
)

// Defaults for monitoring.
const (
	DefaultDiagnosticSettingName = "vmDiagnosticSettings"
	DefaultMetricCategory        = "AllMetrics"

	// AlertLocation is where metric alert rules live. Azure requires "global".
	AlertLocation = "global"

	DefaultAlertSeverity            = 3
	DefaultAlertWindowSize          = "PT5M"
	DefaultAlertEvaluationFrequency = "PT1M"

	DefaultCPUAlertRuleName    = "Average_% Processor Time"
	DefaultCPUCriterionName    = "HighCPUUsage"
	DefaultCPUMetricName       = "Average_% Processor Time"
	DefaultCPUThreshold        = 80
	DefaultCPUAlertDescription = "Alert when CPU usage is greater than 80%"

	DefaultMemoryAlertRuleName    = "Average_% Used Memory"
	DefaultMemoryCriterionName    = "HighMEMUsage"
	DefaultMemoryMetricName       = "Average_% Used Memory"
	DefaultMemoryThreshold        = 75
	DefaultMemoryAlertDescription = "Alert when MEM usage is greater than 75%"
)

// DefaultConfigFilename is the config file looked up when no path is given.
const DefaultConfigFilename = "config.json"

// DefaultEnvFilename is the dotenv file consulted for secrets.
const DefaultEnvFilename = ".env"

// DefaultLogFilename is the local log file every run appends to.
const DefaultLogFilename = ".logs"

// ValidAllocationMethods lists the accepted public IP allocation methods.
var ValidAllocationMethods = map[string]bool{
	"Dynamic": true,
	"Static":  true,
}

// ValidNetworkPolicies lists the accepted private endpoint policy values.
var ValidNetworkPolicies = map[string]bool{
	"Enabled":  true,
	"Disabled": true,
}
