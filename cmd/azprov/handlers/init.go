package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/imamik/azprov/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// isInteractive reports whether stdin is a terminal the wizard can use.
	isInteractive = func() bool {
		fd := os.Stdin.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}

	// runWizard runs the interactive form.
	runWizard = config.RunWizard

	// saveConfig writes the config to a file.
	saveConfig = config.Save
)

// ErrNotInteractive is returned by Init when stdin is not a terminal.
var ErrNotInteractive = errors.New("init needs an interactive terminal; write the config file by hand instead")

// Init runs the configuration wizard and writes the result to outputPath.
func Init(ctx context.Context, outputPath string) error {
	if !isInteractive() {
		return ErrNotInteractive
	}

	if fileExists(outputPath) {
		fmt.Fprintf(stdout, "Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return err
	}

	cfg := result.ToConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := saveConfig(cfg, outputPath); err != nil {
		return err
	}

	printInitSuccess(outputPath, cfg)
	return nil
}

func printWelcome() {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, titleStyle.Render("azprov - Azure VM provisioning"))
	fmt.Fprintln(stdout, dimStyle.Render("Answer a few questions; every other setting gets its default."))
	fmt.Fprintln(stdout)
}

func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, sectionStyle.Render("Configuration saved"))
	fmt.Fprintf(stdout, "  File:              %s\n", outputPath)
	fmt.Fprintf(stdout, "  Resource group:    %s (%s)\n", cfg.ResourceGroupName, cfg.Location)
	fmt.Fprintf(stdout, "  Virtual network:   %s / %s\n", cfg.NetworkName, cfg.SubnetName)
	fmt.Fprintf(stdout, "  Public IP:         %s\n", cfg.IPName)
	fmt.Fprintf(stdout, "  Network interface: %s\n", cfg.NetworkInterface)
	fmt.Fprintf(stdout, "  Virtual machine:   %s (%s)\n", cfg.VMName, cfg.VM.Size)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Next steps:")
	fmt.Fprintln(stdout, "  1. Put AZURE_SUBSCRIPTION_ID, AZURE_TENANT_ID, AZURE_CLIENT_ID,")
	fmt.Fprintln(stdout, "     AZURE_CLIENT_SECRET and ADMIN_USERNAME into .env")
	fmt.Fprintf(stdout, "  2. azprov provision -c %s\n", outputPath)
	fmt.Fprintln(stdout, "  3. Set WORKSPACE_ID, then: azprov monitor")
}
