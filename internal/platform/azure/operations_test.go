package azure

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/azprov/internal/config"
)

type fakeResponse struct {
	ID *string
}

// testClientMinimal creates a RealClient with test timeouts and no SDK clients.
func testClientMinimal() *RealClient {
	return &RealClient{
		timeouts: config.TestTimeouts(),
	}
}

func TestLookupOperation_Found(t *testing.T) {
	t.Parallel()

	op := &LookupOperation[fakeResponse]{
		Name:         "vnet1",
		ResourceType: KindVirtualNetwork,
		Get: func(ctx context.Context) (fakeResponse, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline, "lookup should be bounded by a timeout")
			return fakeResponse{ID: to.Ptr("/id/vnet1")}, nil
		},
		ID: func(r fakeResponse) *string { return r.ID },
	}

	id, found, err := op.Execute(context.Background(), testClientMinimal())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "/id/vnet1", id)
}

func TestLookupOperation_NotFound(t *testing.T) {
	t.Parallel()

	op := &LookupOperation[fakeResponse]{
		Name:         "vnet1",
		ResourceType: KindVirtualNetwork,
		Get: func(_ context.Context) (fakeResponse, error) {
			return fakeResponse{}, newResponseError(http.StatusNotFound)
		},
		ID: func(r fakeResponse) *string { return r.ID },
	}

	id, found, err := op.Execute(context.Background(), testClientMinimal())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, id)
}

func TestLookupOperation_OtherErrorIsFatal(t *testing.T) {
	t.Parallel()

	op := &LookupOperation[fakeResponse]{
		Name:         "vnet1",
		ResourceType: KindVirtualNetwork,
		Get: func(_ context.Context) (fakeResponse, error) {
			return fakeResponse{}, newResponseError(http.StatusForbidden)
		},
		ID: func(r fakeResponse) *string { return r.ID },
	}

	_, found, err := op.Execute(context.Background(), testClientMinimal())
	require.Error(t, err)
	assert.False(t, found)
	assert.Contains(t, err.Error(), `failed to get virtual network "vnet1"`)
	assert.True(t, IsAuthorizationFailed(err))
}

func TestLookupOperation_MissingID(t *testing.T) {
	t.Parallel()

	op := &LookupOperation[fakeResponse]{
		Name:         "ip1",
		ResourceType: KindPublicIP,
		Get: func(_ context.Context) (fakeResponse, error) {
			return fakeResponse{}, nil
		},
		ID: func(r fakeResponse) *string { return r.ID },
	}

	_, _, err := op.Execute(context.Background(), testClientMinimal())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no ID")
}

func TestCreateOperation_BeginError(t *testing.T) {
	t.Parallel()

	op := &CreateOperation[fakeResponse]{
		Name:         "nic1",
		ResourceType: KindNetworkInterface,
		Begin: func(_ context.Context) (*runtime.Poller[fakeResponse], error) {
			return nil, errors.New("quota exceeded")
		},
		ID: func(r fakeResponse) *string { return r.ID },
	}

	_, err := op.Execute(context.Background(), testClientMinimal())
	require.Error(t, err)
	assert.Equal(t, `failed to create network interface "nic1": quota exceeded`, err.Error())
}

func TestValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", value[string](nil))
	assert.Equal(t, "x", value(to.Ptr("x")))
	assert.Equal(t, int32(3), value(to.Ptr(int32(3))))
}

func TestToTags(t *testing.T) {
	t.Parallel()

	assert.Nil(t, toTags(nil))

	tags := toTags(map[string]string{"env": "dev", "owner": "ops"})
	require.Len(t, tags, 2)
	assert.Equal(t, "dev", *tags["env"])
	assert.Equal(t, "ops", *tags["owner"])
}
