package handlers

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"sigs.k8s.io/yaml"

	"github.com/imamik/azprov/internal/platform/azure"
	"github.com/imamik/azprov/internal/provisioning"
)

var (
	colorGreen = lipgloss.Color("#22c55e")
	colorBlue  = lipgloss.Color("#3b82f6")
	colorDim   = lipgloss.Color("#6b7280")
	colorWhite = lipgloss.Color("#f9fafb")
	colorAmber = lipgloss.Color("#eab308")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	outcomeStyles = map[provisioning.Outcome]lipgloss.Style{
		provisioning.OutcomeCreated: lipgloss.NewStyle().Foreground(colorGreen),
		provisioning.OutcomeApplied: lipgloss.NewStyle().Foreground(colorGreen),
		provisioning.OutcomeExists:  lipgloss.NewStyle().Foreground(colorDim),
		provisioning.OutcomePlanned: lipgloss.NewStyle().Foreground(colorAmber),
	}
)

// renderSummary lists every step of the run with its outcome.
func renderSummary(title string, state *provisioning.State) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  " + title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", len(title))))
	b.WriteString("\n")

	if len(state.Steps) == 0 {
		b.WriteString(dimStyle.Render("    nothing to do"))
		b.WriteString("\n")
		return b.String()
	}

	kindWidth := 0
	for _, step := range state.Steps {
		kindWidth = max(kindWidth, len(step.Kind))
	}

	for _, step := range state.Steps {
		outcome := fmt.Sprintf("%-8s", step.Outcome)
		if style, ok := outcomeStyles[step.Outcome]; ok {
			outcome = style.Render(outcome)
		}
		fmt.Fprintf(&b, "    %s %-*s  %s\n", outcome, kindWidth, step.Kind, step.Name)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "    created: %d  existing: %d  planned: %d  applied: %d\n",
		state.Count(provisioning.OutcomeCreated),
		state.Count(provisioning.OutcomeExists),
		state.Count(provisioning.OutcomePlanned),
		state.Count(provisioning.OutcomeApplied))

	return b.String()
}

func printSummary(w io.Writer, title string, state *provisioning.State) {
	fmt.Fprint(w, renderSummary(title, state))
}

// marshalYAML renders Azure responses; replaced in tests.
var marshalYAML = yaml.Marshal

// printYAML prints an Azure response as YAML under a section heading.
// sigs.k8s.io/yaml goes through the SDK's JSON marshalers, so field names
// match the ARM payload.
func printYAML(w io.Writer, heading string, v any) error {
	data, err := marshalYAML(v)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", strings.ToLower(heading), err)
	}
	fmt.Fprintf(w, "\n%s\n%s", sectionStyle.Render(heading), data)
	return nil
}

// printAlerts prints the enabled alert rules of a resource group.
func printAlerts(w io.Writer, resourceGroup string, rules []azure.AlertRule) {
	fmt.Fprintf(w, "\n%s\n", sectionStyle.Render(fmt.Sprintf("Enabled alert rules in %s", resourceGroup)))
	if len(rules) == 0 {
		fmt.Fprintln(w, dimStyle.Render("  none"))
		return
	}
	for _, rule := range rules {
		fmt.Fprintf(w, "  %-30s severity %d  %s\n", rule.Name, rule.Severity, dimStyle.Render(rule.Description))
	}
}
