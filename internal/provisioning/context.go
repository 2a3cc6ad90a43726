package provisioning

import (
	"context"

	"github.com/imamik/azprov/internal/config"
	"github.com/imamik/azprov/internal/platform/azure"
)

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config   *config.Config
	Secrets  *config.Secrets
	State    *State
	Infra    azure.InfrastructureManager
	Observer Observer
	Timeouts *config.Timeouts
	Metrics  *Metrics

	// DryRun limits every ensure step to its existence check.
	DryRun bool
}

// NewContext creates a new provisioning context with a console observer.
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	secrets *config.Secrets,
	infra azure.InfrastructureManager,
) *Context {
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Secrets:  secrets,
		State:    NewState(),
		Infra:    infra,
		Observer: NewConsoleObserver(nil),
		Timeouts: config.LoadTimeouts(),
		Metrics:  NewMetrics(),
	}
}
