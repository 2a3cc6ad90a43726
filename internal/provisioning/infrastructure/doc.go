// Package infrastructure provisions the networking resources a virtual machine
// needs: resource group, virtual network, subnet, public IP and network interface.
//
// Each resource is ensured in dependency order with provisioning.EnsureExists,
// so re-running against an existing deployment creates nothing. Resource IDs
// are stored in provisioning.State for the compute phase.
package infrastructure
