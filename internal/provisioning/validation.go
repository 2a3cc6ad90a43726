package provisioning

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/imamik/azprov/internal/config"
)

// ValidationError represents a configuration validation error or warning.
type ValidationError struct {
	Field    string // Configuration field or environment variable that failed validation
	Message  string // Human-readable error message
	Severity string // "error" or "warning"
}

// Error implements the error interface.
func (ve ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", ve.Severity, ve.Field, ve.Message)
}

// IsError returns true if this is an error (not a warning).
func (ve ValidationError) IsError() bool {
	return ve.Severity == "error"
}

// Validation targets.
const (
	ValidateProvisioning = "provisioning"
	ValidateMonitoring   = "monitoring"
)

// ValidationPhase implements the Phase interface for pre-flight validation.
type ValidationPhase struct {
	target string
}

// NewValidationPhase creates a validation phase for the given target
// (ValidateProvisioning or ValidateMonitoring).
func NewValidationPhase(target string) *ValidationPhase {
	return &ValidationPhase{target: target}
}

// Name implements the Phase interface.
func (vp *ValidationPhase) Name() string {
	return "validation"
}

// Provision implements the Phase interface.
func (vp *ValidationPhase) Provision(ctx *Context) error {
	ctx.Observer.Printf("[Validation] Running pre-flight validation...")

	var errs []ValidationError
	for _, ve := range validate(ctx, vp.target) {
		if ve.IsError() {
			errs = append(errs, ve)
			continue
		}
		ctx.Observer.Event(Event{
			Type:    EventValidationWarning,
			Phase:   vp.Name(),
			Message: ve.Message,
			Fields:  map[string]string{"field": ve.Field},
		})
	}

	if len(errs) > 0 {
		errMsgs := make([]string, 0, len(errs))
		for _, e := range errs {
			errMsgs = append(errMsgs, e.Error())
		}
		return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(errMsgs, "\n  "))
	}

	ctx.Observer.Printf("[Validation] Validation passed")
	return nil
}

// validate runs all validation checks and returns any errors or warnings.
func validate(ctx *Context, target string) []ValidationError {
	var errs []ValidationError
	cfg := ctx.Config
	secrets := ctx.Secrets

	if cfg == nil {
		return []ValidationError{{Field: "config", Message: "configuration is not loaded", Severity: "error"}}
	}
	if secrets == nil {
		return []ValidationError{{Field: "environment", Message: "secrets are not loaded", Severity: "error"}}
	}

	if err := cfg.Validate(); err != nil {
		errs = append(errs, ValidationError{Field: "config", Message: err.Error(), Severity: "error"})
	}

	var secretErr error
	switch target {
	case ValidateMonitoring:
		secretErr = secrets.ValidateForMonitoring()
	default:
		secretErr = secrets.ValidateForProvisioning()
	}
	var merr *multierror.Error
	if errors.As(secretErr, &merr) {
		for _, e := range merr.Errors {
			errs = append(errs, ValidationError{Field: "environment", Message: e.Error(), Severity: "error"})
		}
	} else if secretErr != nil {
		errs = append(errs, ValidationError{Field: "environment", Message: secretErr.Error(), Severity: "error"})
	}

	if target == ValidateMonitoring {
		return errs
	}

	// --- Provisioning warnings ---

	if secrets.UsesPasswordAuth() {
		errs = append(errs, ValidationError{
			Field:    config.EnvAdminPassword,
			Message:  "password authentication is enabled; leave ADMIN_PASSWORD empty to use SSH keys",
			Severity: "warning",
		})
		if cfg.VM.SSHPublicKeyPath != "" {
			errs = append(errs, ValidationError{
				Field:    "vm.ssh_public_key_path",
				Message:  "ignored because ADMIN_PASSWORD is set",
				Severity: "warning",
			})
		}
	}

	if secrets.WorkspaceID == "" {
		errs = append(errs, ValidationError{
			Field:    config.EnvWorkspaceID,
			Message:  "WORKSPACE_ID is not set; monitoring cannot be attached until it is",
			Severity: "warning",
		})
	}

	return errs
}
