package provisioning

import (
	"context"

	"github.com/imamik/azprov/internal/config"
	"github.com/imamik/azprov/internal/platform/azure"
)

// newTestContext returns a Context backed by an in-memory Azure client.
func newTestContext() (*Context, *azure.MockClient, *MockObserver) {
	mock := azure.NewMockClient()
	obs := NewMockObserver()

	cfg := &config.Config{
		ResourceGroupName: "rg1",
		Location:          "westeurope",
		VMName:            "vm1",
		NetworkName:       "vnet1",
		SubnetName:        "subnet1",
		IPName:            "ip1",
		NetworkInterface:  "nic1",
	}
	cfg.ApplyDefaults()

	ctx := &Context{
		Context: context.Background(),
		Config:  cfg,
		Secrets: &config.Secrets{
			SubscriptionID: "sub",
			TenantID:       "tenant",
			ClientID:       "client",
			ClientSecret:   "secret",
			AdminUsername:  "azureuser",
			AdminPassword:  "S3cret!pass",
			WorkspaceID:    "/subscriptions/sub/resourceGroups/rg1/providers/Microsoft.OperationalInsights/workspaces/ws",
		},
		State:    NewState(),
		Infra:    mock,
		Observer: obs,
		Timeouts: config.TestTimeouts(),
		Metrics:  NewMetrics(),
	}
	return ctx, mock, obs
}
