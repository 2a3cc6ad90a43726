package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/imamik/azprov/internal/platform/azure"
	"github.com/imamik/azprov/internal/provisioning"
	"github.com/imamik/azprov/internal/provisioning/monitoring"
	"github.com/imamik/azprov/internal/util/prerequisites"
)

// VM ID sources accepted by --vm-id-source.
const (
	VMIDSourceCLI = "cli"
	VMIDSourceAPI = "api"
)

// MonitorOptions are the flags of the monitor command.
type MonitorOptions struct {
	Options
	VMIDSource string
}

// Factory function variables for monitor - can be replaced in tests.
var (
	// checkMonitoringPrereqs verifies the az CLI is installed.
	checkMonitoringPrereqs = prerequisites.CheckForMonitoring

	// newCLIResolver creates the resolver that shells out to az.
	newCLIResolver = func() azure.VMIDResolver {
		return &azure.CLIResolver{}
	}
)

// Monitor attaches the diagnostic setting and the CPU and memory alert rules
// to the configured VM, prints the responses and lists the enabled alert rules.
func Monitor(ctx context.Context, opts MonitorOptions) error {
	if opts.VMIDSource != VMIDSourceCLI && opts.VMIDSource != VMIDSourceAPI {
		return fmt.Errorf("unknown VM ID source %q (want %s or %s)", opts.VMIDSource, VMIDSourceCLI, VMIDSourceAPI)
	}

	if opts.VMIDSource == VMIDSourceCLI {
		if err := checkMonitoringPrereqs().Error(); err != nil {
			return err
		}
	}

	s, err := newSession(ctx, opts.Options)
	if err != nil {
		return err
	}
	defer s.close()

	if err := provisioning.RunPhases(s.pctx, []provisioning.Phase{
		provisioning.NewValidationPhase(provisioning.ValidateMonitoring),
	}); err != nil {
		return err
	}

	if err := s.connect(); err != nil {
		return err
	}

	var resolver azure.VMIDResolver
	if opts.VMIDSource == VMIDSourceAPI {
		resolver = &azure.APIResolver{Compute: s.pctx.Infra}
	} else {
		resolver = newCLIResolver()
	}

	err = provisioning.RunPhases(s.pctx, []provisioning.Phase{
		monitoring.NewAttacher(resolver),
	})

	state := s.pctx.State
	errs := []error{err}
	if state.DiagnosticSetting != nil {
		errs = append(errs, printYAML(s.out, "Diagnostic setting", state.DiagnosticSetting))
	}
	for i := range state.MetricAlerts {
		errs = append(errs, printYAML(s.out, "Metric alert", &state.MetricAlerts[i]))
	}
	printSummary(s.out, "Monitoring summary", state)
	return errors.Join(errs...)
}
