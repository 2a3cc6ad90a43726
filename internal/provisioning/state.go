package provisioning

import (
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/monitor/armmonitor"

	"github.com/imamik/azprov/internal/platform/azure"
)

// Outcome is the result of one ensure step.
type Outcome string

const (
	// OutcomeCreated means the resource was missing and has been created.
	OutcomeCreated Outcome = "created"
	// OutcomeExists means the resource was found and left untouched.
	OutcomeExists Outcome = "exists"
	// OutcomePlanned means the resource is missing and a dry run skipped creating it.
	OutcomePlanned Outcome = "planned"
	// OutcomeApplied means an upsert was sent (monitoring attachments).
	OutcomeApplied Outcome = "applied"
)

// StepResult records what happened to one resource.
type StepResult struct {
	Kind    string
	Name    string
	ID      string
	Outcome Outcome
}

// State holds the shared results of provisioning phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results.
type State struct {
	// Infrastructure results (populated by infrastructure provisioner)
	ResourceGroupID    string
	VirtualNetworkID   string
	SubnetID           string
	PublicIPID         string
	NetworkInterfaceID string

	// Compute results (populated by compute provisioner)
	VirtualMachineID  string
	SSHPrivateKeyPath string // set when a key pair was generated for the admin user

	// Monitoring results (populated by monitoring attacher)
	DiagnosticSetting *armmonitor.DiagnosticSettingsResource
	MetricAlerts      []armmonitor.MetricAlertResource
	EnabledAlerts     []azure.AlertRule

	// Steps lists every ensured resource in execution order.
	Steps []StepResult
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}

// Record appends a step result.
func (s *State) Record(kind, name, id string, outcome Outcome) {
	s.Steps = append(s.Steps, StepResult{Kind: kind, Name: name, ID: id, Outcome: outcome})
}

// Count returns how many steps ended with the given outcome.
func (s *State) Count(outcome Outcome) int {
	n := 0
	for _, step := range s.Steps {
		if step.Outcome == outcome {
			n++
		}
	}
	return n
}
