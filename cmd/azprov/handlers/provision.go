package handlers

import (
	"context"
	"path/filepath"

	"github.com/imamik/azprov/internal/provisioning"
	"github.com/imamik/azprov/internal/provisioning/compute"
	"github.com/imamik/azprov/internal/provisioning/infrastructure"
	"github.com/imamik/azprov/internal/util/prerequisites"
)

// checkOptionalPrereqs looks for tools later commands rely on.
var checkOptionalPrereqs = prerequisites.CheckOptional

// ProvisionOptions are the flags of the provision command.
type ProvisionOptions struct {
	Options
	DryRun bool
	KeyDir string
}

// Provision creates the resource group, network resources and virtual
// machine described by the configuration, skipping every resource that
// already exists.
//
// Validation runs before the Azure client is created, so missing
// credentials are reported together with configuration errors.
func Provision(ctx context.Context, opts ProvisionOptions) error {
	s, err := newSession(ctx, opts.Options)
	if err != nil {
		return err
	}
	defer s.close()

	s.pctx.DryRun = opts.DryRun

	if err := provisioning.RunPhases(s.pctx, []provisioning.Phase{
		provisioning.NewValidationPhase(provisioning.ValidateProvisioning),
	}); err != nil {
		return err
	}

	if err := s.connect(); err != nil {
		return err
	}

	keyDir := opts.KeyDir
	if keyDir == "" {
		keyDir = filepath.Dir(opts.ConfigPath)
	}

	err = provisioning.RunPhases(s.pctx, []provisioning.Phase{
		infrastructure.NewProvisioner(),
		compute.NewProvisioner(keyDir),
	})

	title := "Provisioning summary"
	if opts.DryRun {
		title = "Dry run: no resources were created"
	}
	printSummary(s.out, title, s.pctx.State)
	if err != nil {
		return err
	}

	if path := s.pctx.State.SSHPrivateKeyPath; path != "" {
		s.pctx.Observer.Printf("SSH private key written to %s", path)
	}
	for _, tool := range checkOptionalPrereqs().Missing {
		s.pctx.Observer.Printf("Note: %s not found in PATH; 'azprov monitor' needs it unless --vm-id-source=api is used (%s)", tool.Name, tool.InstallURL)
	}
	return nil
}
