// Package naming derives resource names from a virtual machine name.
//
// Names follow the Azure Cloud Adoption Framework abbreviations, e.g.
// vnet-{vm} for the virtual network and nic-{vm} for the network interface.
// The wizard uses them when the user leaves a name empty.
package naming
