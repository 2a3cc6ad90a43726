// Package azure provides a thin wrapper around the Azure Resource Manager SDK
// clients used to provision a single virtual machine and its monitoring.
//
// # Architecture
//
//   - client.go: manager interfaces and the resource specs they accept
//   - real_client.go: RealClient construction (credential, ARM clients, timeouts)
//   - operations.go: generic lookup and create-and-wait operations
//   - resource_group.go, network.go, public_ip.go, interface.go: networking resources
//   - virtual_machine.go: virtual machine lifecycle
//   - monitor.go: diagnostic settings and metric alert rules
//   - vmid.go: virtual machine resource ID resolution (az CLI or API)
//   - errors.go: error classification
//   - mock_client.go: in-memory InfrastructureManager for tests
//
// # Lookups and creates
//
// Every Get* method answers "does this exist, and what is its ID". A 404
// from ARM is reported as found=false with a nil error; any other failure
// is returned. Every Create* method issues a create-or-update call and,
// for long-running operations, blocks until the poller completes.
//
// Nothing here retries. Timeouts come from config.Timeouts:
//
//   - AZPROV_TIMEOUT_LOOKUP: bound for one existence check (default: 2m)
//   - AZPROV_TIMEOUT_CREATE: bound for one create call (default: 30m)
//   - AZPROV_POLL_FREQUENCY: long-running operation poll interval (default: 10s)
package azure
