package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// LookupOperation encapsulates the existence check for any ARM resource.
// A 404 from Get means the resource does not exist; any other error is fatal.
//
// Usage example:
//
//	func (c *RealClient) GetPublicIP(ctx context.Context, resourceGroup, name string) (string, bool, error) {
//	    return (&LookupOperation[armnetwork.PublicIPAddressesClientGetResponse]{
//	        Name:         name,
//	        ResourceType: KindPublicIP,
//	        Get: func(ctx context.Context) (armnetwork.PublicIPAddressesClientGetResponse, error) {
//	            return c.publicIPs.Get(ctx, resourceGroup, name, nil)
//	        },
//	        ID: func(r armnetwork.PublicIPAddressesClientGetResponse) *string { return r.ID },
//	    }).Execute(ctx, c)
//	}
type LookupOperation[T any] struct {
	Name         string
	ResourceType string

	// Get retrieves the resource
	Get func(ctx context.Context) (T, error)

	// ID extracts the resource ID from the response
	ID func(resp T) *string
}

// Execute runs the lookup bounded by the client's lookup timeout.
func (op *LookupOperation[T]) Execute(ctx context.Context, client *RealClient) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, client.timeouts.Lookup)
	defer cancel()

	resp, err := op.Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %s %q: %w", op.ResourceType, op.Name, err)
	}

	id := value(op.ID(resp))
	if id == "" {
		return "", false, fmt.Errorf("%s %q exists but has no ID", op.ResourceType, op.Name)
	}
	return id, true, nil
}

// CreateOperation encapsulates a create-or-update long-running operation.
// Execute blocks until the poller reports a terminal state.
type CreateOperation[T any] struct {
	Name         string
	ResourceType string

	// Begin starts the long-running create-or-update
	Begin func(ctx context.Context) (*runtime.Poller[T], error)

	// ID extracts the resource ID from the final response
	ID func(resp T) *string
}

// Execute starts the operation and waits for it, bounded by the client's create timeout.
func (op *CreateOperation[T]) Execute(ctx context.Context, client *RealClient) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, client.timeouts.Create)
	defer cancel()

	poller, err := op.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create %s %q: %w", op.ResourceType, op.Name, err)
	}

	resp, err := poller.PollUntilDone(ctx, &runtime.PollUntilDoneOptions{
		Frequency: client.timeouts.PollFrequency,
	})
	if err != nil {
		return "", fmt.Errorf("failed to wait for %s %q creation: %w", op.ResourceType, op.Name, err)
	}

	id := value(op.ID(resp))
	if id == "" {
		return "", fmt.Errorf("%s %q was created but returned no ID", op.ResourceType, op.Name)
	}
	return id, nil
}

// value dereferences p, returning the zero value for nil.
func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// toTags converts plain tags to the pointer map the SDK models use.
func toTags(tags map[string]string) map[string]*string {
	if len(tags) == 0 {
		return nil
	}
	out := make(map[string]*string, len(tags))
	for k, v := range tags {
		out[k] = &v
	}
	return out
}
