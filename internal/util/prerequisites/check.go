// Package prerequisites provides utilities for checking required client tools.
package prerequisites

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/tidwall/gjson"
)

// Tool represents a client tool that may be required.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string

	// InstallURL provides a URL for installation instructions.
	InstallURL string

	// VersionArgs are the arguments printing the version.
	VersionArgs []string

	// VersionPath is a gjson path into JSON version output; the first
	// output line is used when empty.
	VersionPath string
}

// AzureCLI is the az tool, used to look up VM resource IDs.
func AzureCLI(required bool) Tool {
	return Tool{
		Name:        "az",
		Required:    required,
		Description: "Used to look up virtual machine resource IDs",
		InstallURL:  "https://learn.microsoft.com/cli/azure/install-azure-cli",
		VersionArgs: []string{"version", "-o", "json"},
		VersionPath: `azure-cli`,
	}
}

// MonitoringTools returns the tools needed by the monitor command when
// VM IDs are resolved through the az CLI.
func MonitoringTools() []Tool {
	return []Tool{AzureCLI(true)}
}

// OptionalTools returns tools that are useful but not required.
func OptionalTools() []Tool {
	return []Tool{AzureCLI(false)}
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool    Tool
	Found   bool
	Path    string
	Version string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tools are missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error if any required tools are missing.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.InstallURL))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// lookPath and runVersion are replaceable in tests.
var (
	lookPath   = exec.LookPath
	runVersion = func(name string, args ...string) ([]byte, error) {
		// #nosec G204 - name comes from trusted Tool definitions, not user input
		return exec.Command(name, args...).Output()
	}
)

// Check verifies that the specified tools are available.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		path, err := lookPath(tool.Name)
		if err == nil {
			result.Found = true
			result.Path = path
			result.Version = toolVersion(tool)
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// CheckOptional checks the tools that are useful but not required.
func CheckOptional() *CheckResults {
	return Check(OptionalTools())
}

// CheckForMonitoring checks the tools the monitor command needs.
func CheckForMonitoring() *CheckResults {
	return Check(MonitoringTools())
}

// toolVersion returns the tool's version, or "" if it cannot be determined.
func toolVersion(tool Tool) string {
	args := tool.VersionArgs
	if len(args) == 0 {
		args = []string{"--version"}
	}

	output, err := runVersion(tool.Name, args...)
	if err != nil {
		return ""
	}

	if tool.VersionPath != "" {
		return gjson.GetBytes(output, tool.VersionPath).String()
	}

	first, _, _ := strings.Cut(string(output), "\n")
	return strings.TrimSpace(first)
}
