package provisioning

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrDependencyMissing is returned when a step needs the ID of a resource
// that an earlier step did not produce.
var ErrDependencyMissing = errors.New("dependency missing")

// Resource is the capability every ensure step provides: a kind and name
// for reporting, an existence check and a create action.
type Resource interface {
	Kind() string
	Name() string
	Lookup(ctx context.Context) (id string, found bool, err error)
	Create(ctx context.Context) (id string, err error)
}

// ResourceFuncs adapts a pair of functions to Resource.
type ResourceFuncs struct {
	ResourceKind string
	ResourceName string
	LookupFunc   func(ctx context.Context) (string, bool, error)
	CreateFunc   func(ctx context.Context) (string, error)
}

// Kind implements Resource.
func (r ResourceFuncs) Kind() string { return r.ResourceKind }

// Name implements Resource.
func (r ResourceFuncs) Name() string { return r.ResourceName }

// Lookup implements Resource.
func (r ResourceFuncs) Lookup(ctx context.Context) (string, bool, error) { return r.LookupFunc(ctx) }

// Create implements Resource.
func (r ResourceFuncs) Create(ctx context.Context) (string, error) { return r.CreateFunc(ctx) }

// EnsureExists looks the resource up and creates it only when it is missing.
// It returns the resource ID; on a dry run a missing resource yields an empty ID.
// The outcome is recorded in ctx.State and reported to the observer and metrics.
func EnsureExists(ctx *Context, phase string, r Resource) (string, error) {
	start := time.Now()
	id, found, err := r.Lookup(ctx)
	ctx.Metrics.ObserveOperation(r.Kind(), "lookup", time.Since(start))
	if err != nil {
		LogResourceFailed(ctx.Observer, phase, r.Kind(), r.Name(), err)
		ctx.Metrics.CountFailure(r.Kind())
		return "", err
	}

	if found {
		LogResourceExists(ctx.Observer, phase, r.Kind(), r.Name(), id)
		ctx.State.Record(r.Kind(), r.Name(), id, OutcomeExists)
		ctx.Metrics.CountOutcome(r.Kind(), OutcomeExists)
		return id, nil
	}

	if ctx.DryRun {
		LogResourcePlanned(ctx.Observer, phase, r.Kind(), r.Name())
		ctx.State.Record(r.Kind(), r.Name(), "", OutcomePlanned)
		ctx.Metrics.CountOutcome(r.Kind(), OutcomePlanned)
		return "", nil
	}

	LogResourceCreating(ctx.Observer, phase, r.Kind(), r.Name())
	start = time.Now()
	id, err = r.Create(ctx)
	ctx.Metrics.ObserveOperation(r.Kind(), "create", time.Since(start))
	if err != nil {
		LogResourceFailed(ctx.Observer, phase, r.Kind(), r.Name(), err)
		ctx.Metrics.CountFailure(r.Kind())
		return "", err
	}

	LogResourceCreated(ctx.Observer, phase, r.Kind(), r.Name(), id)
	ctx.State.Record(r.Kind(), r.Name(), id, OutcomeCreated)
	ctx.Metrics.CountOutcome(r.Kind(), OutcomeCreated)
	return id, nil
}

// RequireID fails with ErrDependencyMissing when id is empty.
// Dry runs skip the check, since planned resources have no ID yet.
func RequireID(ctx *Context, kind, name, dependency, id string) error {
	if id != "" || ctx.DryRun {
		return nil
	}
	return fmt.Errorf("%w: %s %q needs the %s ID", ErrDependencyMissing, kind, name, dependency)
}
