package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"
)

// CreateDiagnosticSetting routes the metric category of spec.ResourceURI to the workspace.
// The call is an upsert and returns the service's echo of the setting.
func (c *RealClient) CreateDiagnosticSetting(ctx context.Context, spec DiagnosticSettingSpec) (armmonitor.DiagnosticSettingsResource, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Create)
	defer cancel()

	resp, err := c.diagnosticSettings.CreateOrUpdate(ctx, spec.ResourceURI, spec.Name, armmonitor.DiagnosticSettingsResource{
		Properties: &armmonitor.DiagnosticSettings{
			WorkspaceID: to.Ptr(spec.WorkspaceID),
			Metrics: []*armmonitor.MetricSettings{
				{
					Category: to.Ptr(spec.MetricCategory),
					Enabled:  to.Ptr(true),
				},
			},
		},
	}, nil)
	if err != nil {
		return armmonitor.DiagnosticSettingsResource{}, fmt.Errorf("failed to create %s %q: %w", KindDiagnosticSetting, spec.Name, err)
	}
	return resp.DiagnosticSettingsResource, nil
}

// CreateMetricAlert upserts a static-threshold alert rule firing when the
// averaged metric is greater than the threshold.
func (c *RealClient) CreateMetricAlert(ctx context.Context, spec MetricAlertSpec) (armmonitor.MetricAlertResource, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Create)
	defer cancel()

	scopes := make([]*string, 0, len(spec.Scopes))
	for _, s := range spec.Scopes {
		scopes = append(scopes, to.Ptr(s))
	}

	resp, err := c.metricAlerts.CreateOrUpdate(ctx, spec.ResourceGroup, spec.RuleName, armmonitor.MetricAlertResource{
		Location: to.Ptr(spec.Location),
		Tags:     toTags(spec.Tags),
		Properties: &armmonitor.MetricAlertProperties{
			Description:         to.Ptr(spec.Description),
			Enabled:             to.Ptr(true),
			Severity:            to.Ptr(spec.Severity),
			WindowSize:          to.Ptr(spec.WindowSize),
			EvaluationFrequency: to.Ptr(spec.EvaluationFrequency),
			Scopes:              scopes,
			Criteria: &armmonitor.MetricAlertMultipleResourceMultipleMetricCriteria{
				ODataType: to.Ptr(armmonitor.OdatatypeMicrosoftAzureMonitorMultipleResourceMultipleMetricCriteria),
				AllOf: []armmonitor.MultiMetricCriteriaClassification{
					&armmonitor.MetricCriteria{
						CriterionType:   to.Ptr(armmonitor.CriterionTypeStaticThresholdCriterion),
						Name:            to.Ptr(spec.CriterionName),
						MetricName:      to.Ptr(spec.MetricName),
						Operator:        to.Ptr(armmonitor.OperatorGreaterThan),
						Threshold:       to.Ptr(spec.Threshold),
						TimeAggregation: to.Ptr(armmonitor.AggregationTypeEnumAverage),
					},
				},
			},
		},
	}, nil)
	if err != nil {
		return armmonitor.MetricAlertResource{}, fmt.Errorf("failed to create %s %q: %w", KindMetricAlert, spec.RuleName, err)
	}
	return resp.MetricAlertResource, nil
}

// ListMetricAlerts returns every metric alert rule in the resource group, enabled or not.
func (c *RealClient) ListMetricAlerts(ctx context.Context, resourceGroup string) ([]AlertRule, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Lookup)
	defer cancel()

	var rules []AlertRule
	pager := c.metricAlerts.NewListByResourceGroupPager(resourceGroup, nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list metric alerts in %q: %w", resourceGroup, err)
		}
		for _, r := range page.Value {
			if r == nil {
				continue
			}
			rules = append(rules, toAlertRule(r))
		}
	}
	return rules, nil
}

func toAlertRule(r *armmonitor.MetricAlertResource) AlertRule {
	rule := AlertRule{
		ID:   value(r.ID),
		Name: value(r.Name),
	}
	if p := r.Properties; p != nil {
		rule.Enabled = value(p.Enabled)
		rule.Severity = value(p.Severity)
		rule.Description = value(p.Description)
	}
	return rule
}
