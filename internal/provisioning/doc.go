// Package provisioning provides shared types, interfaces, and orchestration for
// provisioning a monitored Azure virtual machine.
//
// # Subpackages
//
//   - infrastructure/: Resource group, virtual network, subnet, public IP, network interface
//   - compute/: Virtual machine and its admin credentials
//   - monitoring/: Diagnostic setting, metric alerts, alert listing
//
// # Core Types
//
// Context carries configuration, secrets, state, the Azure client, observer and metrics.
// Phase defines a provisioning step with Name() and Provision() methods.
// State accumulates resource IDs and per-resource outcomes from each phase.
// EnsureExists implements the lookup-then-create step shared by every resource.
package provisioning
