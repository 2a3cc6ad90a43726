package monitoring

import (
	"fmt"

	"github.com/imamik/azprov/internal/config"
	"github.com/imamik/azprov/internal/platform/azure"
	"github.com/imamik/azprov/internal/provisioning"
)

const phase = "monitoring"

// Attacher implements provisioning.Phase for monitoring attachment.
type Attacher struct {
	Resolver azure.VMIDResolver
}

// NewAttacher creates an attacher that looks VM IDs up with resolver.
func NewAttacher(resolver azure.VMIDResolver) *Attacher {
	return &Attacher{Resolver: resolver}
}

// Name implements the provisioning.Phase interface.
func (a *Attacher) Name() string {
	return phase
}

// Provision implements the provisioning.Phase interface.
func (a *Attacher) Provision(ctx *provisioning.Context) error {
	vmID, err := a.ResolveVirtualMachine(ctx)
	if err != nil {
		return err
	}

	if err := AttachDiagnosticSetting(ctx, vmID); err != nil {
		return err
	}

	for _, alert := range []config.AlertConfig{ctx.Config.Monitoring.CPUAlert, ctx.Config.Monitoring.MemoryAlert} {
		if err := AttachMetricAlert(ctx, vmID, alert); err != nil {
			return err
		}
	}

	_, err = ListEnabledAlerts(ctx)
	return err
}

// ResolveVirtualMachine returns the ID of the configured VM after checking it
// parses as a virtual machine ID and the VM exists.
func (a *Attacher) ResolveVirtualMachine(ctx *provisioning.Context) (string, error) {
	cfg := ctx.Config

	id := ctx.State.VirtualMachineID
	if id == "" {
		if a.Resolver == nil {
			return "", fmt.Errorf("no VM ID resolver configured")
		}
		resolved, err := a.Resolver.ResolveVMID(ctx, cfg.ResourceGroupName, cfg.VMName)
		if err != nil {
			return "", err
		}
		id = resolved
	}

	parsed, err := azure.ParseVirtualMachineID(id)
	if err != nil {
		return "", err
	}

	existing, found, err := ctx.Infra.GetVirtualMachine(ctx, parsed.ResourceGroup, parsed.Name)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%w: %s", azure.ErrVirtualMachineNotFound, parsed.ID)
	}

	ctx.Observer.Printf("[%s] Attaching monitoring to %s", phase, existing)
	ctx.State.VirtualMachineID = existing
	return existing, nil
}

// AttachDiagnosticSetting routes the VM's metrics to the workspace.
func AttachDiagnosticSetting(ctx *provisioning.Context, vmID string) error {
	m := ctx.Config.Monitoring

	resp, err := ctx.Infra.CreateDiagnosticSetting(ctx, azure.DiagnosticSettingSpec{
		ResourceURI:    vmID,
		Name:           m.DiagnosticSettingName,
		WorkspaceID:    ctx.Secrets.WorkspaceID,
		MetricCategory: m.MetricCategory,
	})
	if err != nil {
		provisioning.LogResourceFailed(ctx.Observer, phase, azure.KindDiagnosticSetting, m.DiagnosticSettingName, err)
		ctx.Metrics.CountFailure(azure.KindDiagnosticSetting)
		return err
	}

	id := value(resp.ID)
	provisioning.LogResourceApplied(ctx.Observer, phase, azure.KindDiagnosticSetting, m.DiagnosticSettingName, id)
	ctx.State.Record(azure.KindDiagnosticSetting, m.DiagnosticSettingName, id, provisioning.OutcomeApplied)
	ctx.Metrics.CountOutcome(azure.KindDiagnosticSetting, provisioning.OutcomeApplied)
	ctx.State.DiagnosticSetting = &resp
	return nil
}

// AttachMetricAlert upserts one "average metric greater than threshold" rule scoped to the VM.
func AttachMetricAlert(ctx *provisioning.Context, vmID string, alert config.AlertConfig) error {
	cfg := ctx.Config

	resp, err := ctx.Infra.CreateMetricAlert(ctx, azure.MetricAlertSpec{
		ResourceGroup:       cfg.ResourceGroupName,
		RuleName:            alert.RuleName,
		CriterionName:       alert.CriterionName,
		MetricName:          alert.MetricName,
		Threshold:           alert.Threshold,
		Severity:            int32(alert.Severity), //nolint:gosec // validated to 0..4
		WindowSize:          alert.WindowSize,
		EvaluationFrequency: alert.EvaluationFrequency,
		Description:         alert.Description,
		Location:            config.AlertLocation,
		Scopes:              []string{vmID},
		Tags:                cfg.ResourceTags(),
	})
	if err != nil {
		provisioning.LogResourceFailed(ctx.Observer, phase, azure.KindMetricAlert, alert.RuleName, err)
		ctx.Metrics.CountFailure(azure.KindMetricAlert)
		return err
	}

	id := value(resp.ID)
	provisioning.LogResourceApplied(ctx.Observer, phase, azure.KindMetricAlert, alert.RuleName, id)
	ctx.State.Record(azure.KindMetricAlert, alert.RuleName, id, provisioning.OutcomeApplied)
	ctx.Metrics.CountOutcome(azure.KindMetricAlert, provisioning.OutcomeApplied)
	ctx.State.MetricAlerts = append(ctx.State.MetricAlerts, resp)
	return nil
}

// ListEnabledAlerts returns the enabled metric alert rules of the resource
// group and prints one line per rule.
func ListEnabledAlerts(ctx *provisioning.Context) ([]azure.AlertRule, error) {
	rules, err := ctx.Infra.ListMetricAlerts(ctx, ctx.Config.ResourceGroupName)
	if err != nil {
		return nil, err
	}

	enabled := make([]azure.AlertRule, 0, len(rules))
	for _, rule := range rules {
		if !rule.Enabled {
			continue
		}
		enabled = append(enabled, rule)
		ctx.Observer.Printf("Alert: %s, Status: %t", rule.Name, rule.Enabled)
	}

	ctx.State.EnabledAlerts = enabled
	return enabled, nil
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
