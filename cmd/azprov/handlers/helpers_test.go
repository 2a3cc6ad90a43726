package handlers

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/imamik/azprov/internal/config"
	"github.com/imamik/azprov/internal/platform/azure"
	"github.com/imamik/azprov/internal/util/prerequisites"
)

const testConfigJSON = `{
  "resource_group_name": "rg1",
  "location": "westeurope",
  "vm_name": "vm1",
  "network_name": "vnet1",
  "subnet_name": "subnet1",
  "ip_name": "ip1",
  "network_interface": "nic1"
}
`

// saveAndRestoreFactories restores every factory variable after the test.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origLoadConfigFile := loadConfigFile
	origLoadSecrets := loadSecrets
	origLoadTimeouts := loadTimeouts
	origNewInfraClient := newInfraClient
	origStdout := stdout
	origCheckMonitoringPrereqs := checkMonitoringPrereqs
	origCheckOptionalPrereqs := checkOptionalPrereqs
	origNewCLIResolver := newCLIResolver
	origFileExists := fileExists
	origIsInteractive := isInteractive
	origRunWizard := runWizard
	origSaveConfig := saveConfig
	origMarshalYAML := marshalYAML

	t.Cleanup(func() {
		loadConfigFile = origLoadConfigFile
		loadSecrets = origLoadSecrets
		loadTimeouts = origLoadTimeouts
		newInfraClient = origNewInfraClient
		stdout = origStdout
		checkMonitoringPrereqs = origCheckMonitoringPrereqs
		checkOptionalPrereqs = origCheckOptionalPrereqs
		newCLIResolver = origNewCLIResolver
		fileExists = origFileExists
		isInteractive = origIsInteractive
		runWizard = origRunWizard
		saveConfig = origSaveConfig
		marshalYAML = origMarshalYAML
	})
}

func testSecrets() *config.Secrets {
	return &config.Secrets{
		SubscriptionID: "sub",
		TenantID:       "tenant",
		ClientID:       "client",
		ClientSecret:   "secret",
		AdminUsername:  "azureuser",
		AdminPassword:  "S3cret!pass",
		WorkspaceID:    "/subscriptions/sub/resourceGroups/rg1/providers/Microsoft.OperationalInsights/workspaces/ws",
	}
}

type testEnv struct {
	opts    Options
	mock    *azure.MockClient
	out     *bytes.Buffer
	secrets *config.Secrets
	// connects counts newInfraClient calls.
	connects int
}

// setupTest writes a config file into a temp dir and wires every factory to
// in-memory fakes.
func setupTest(t *testing.T) *testEnv {
	t.Helper()
	saveAndRestoreFactories(t)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(configPath, []byte(testConfigJSON), 0600))

	env := &testEnv{
		opts: Options{
			ConfigPath: configPath,
			LogFile:    filepath.Join(dir, ".logs"),
			LogFormat:  LogFormatText,
		},
		mock:    azure.NewMockClient(),
		out:     &bytes.Buffer{},
		secrets: testSecrets(),
	}

	stdout = env.out
	loadSecrets = func(string) (*config.Secrets, error) { return env.secrets, nil }
	loadTimeouts = config.TestTimeouts
	newInfraClient = func(*config.Secrets, *config.Timeouts) (azure.InfrastructureManager, error) {
		env.connects++
		return env.mock, nil
	}
	checkMonitoringPrereqs = func() *prerequisites.CheckResults { return &prerequisites.CheckResults{} }
	checkOptionalPrereqs = func() *prerequisites.CheckResults { return &prerequisites.CheckResults{} }
	newCLIResolver = func() azure.VMIDResolver { return &azure.APIResolver{Compute: env.mock} }

	return env
}

// fakeResolver returns a fixed ID.
type fakeResolver struct {
	id    string
	err   error
	calls int
}

func (r *fakeResolver) ResolveVMID(_ context.Context, _, _ string) (string, error) {
	r.calls++
	return r.id, r.err
}
