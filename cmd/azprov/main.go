// Package main is the entry point for the azprov CLI.
//
// azprov provisions a resource group, virtual network, subnet, public IP,
// network interface and Linux virtual machine on Azure, and attaches
// diagnostic settings and CPU/memory metric alerts to the machine.
//
// Commands: init, provision, monitor, alerts.
//
// For detailed usage information, run:
//
//	azprov --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/azprov/cmd/azprov/commands"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
