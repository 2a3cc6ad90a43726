package azure

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/tidwall/gjson"
)

// VirtualMachineResourceType is the ARM type a monitored resource must have.
const VirtualMachineResourceType = "Microsoft.Compute/virtualMachines"

// VMIDResolver looks up the ARM resource ID of a virtual machine.
type VMIDResolver interface {
	ResolveVMID(ctx context.Context, resourceGroup, name string) (string, error)
}

// CommandRunner runs an external program and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// CLIResolver resolves VM IDs by running `az vm show`.
type CLIResolver struct {
	// Binary is the az executable, "az" when empty.
	Binary string
	// Run executes the command; exec.CommandContext when nil.
	Run CommandRunner
}

// ResolveVMID runs `az vm show -g <rg> -n <name> -o json` and returns its id field.
func (r *CLIResolver) ResolveVMID(ctx context.Context, resourceGroup, name string) (string, error) {
	binary := r.Binary
	if binary == "" {
		binary = "az"
	}
	run := r.Run
	if run == nil {
		run = runCommand
	}

	out, err := run(ctx, binary, "vm", "show", "-g", resourceGroup, "-n", name, "-o", "json")
	if err != nil {
		return "", fmt.Errorf("failed to look up %s %q with %s: %w", KindVirtualMachine, name, binary, err)
	}

	id := gjson.GetBytes(out, "id")
	if !id.Exists() || id.String() == "" {
		return "", fmt.Errorf("%w: %s output for %q has no id field", ErrVirtualMachineNotFound, binary, name)
	}
	return id.String(), nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, err
	}
	return out, nil
}

// APIResolver resolves VM IDs through the compute API.
type APIResolver struct {
	Compute ComputeManager
}

// ResolveVMID returns the VM's ID or ErrVirtualMachineNotFound.
func (r *APIResolver) ResolveVMID(ctx context.Context, resourceGroup, name string) (string, error) {
	id, found, err := r.Compute.GetVirtualMachine(ctx, resourceGroup, name)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%w: %q in resource group %q", ErrVirtualMachineNotFound, name, resourceGroup)
	}
	return id, nil
}

// VirtualMachineID is a parsed virtual machine resource ID.
type VirtualMachineID struct {
	ID             string
	SubscriptionID string
	ResourceGroup  string
	Name           string
}

// ParseVirtualMachineID validates that id is an ARM ID of a virtual machine.
func ParseVirtualMachineID(id string) (*VirtualMachineID, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidResourceID)
	}

	rid, err := arm.ParseResourceID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidResourceID, id, err)
	}
	if !strings.EqualFold(rid.ResourceType.String(), VirtualMachineResourceType) {
		return nil, fmt.Errorf("%w: %q has type %s", ErrInvalidResourceID, id, rid.ResourceType.String())
	}

	return &VirtualMachineID{
		ID:             id,
		SubscriptionID: rid.SubscriptionID,
		ResourceGroup:  rid.ResourceGroupName,
		Name:           rid.Name,
	}, nil
}
