// Package monitoring attaches monitoring to an existing virtual machine.
//
// It resolves the VM's resource ID, checks the ID names a virtual machine
// that exists, routes the VM's metrics to a log-analytics workspace with a
// diagnostic setting, and upserts CPU and memory metric alert rules. Each
// attachment is a single create-or-update call; nothing is polled or removed.
package monitoring
