package handlers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/azprov/internal/config"
	"github.com/imamik/azprov/internal/platform/azure"
	"github.com/imamik/azprov/internal/util/prerequisites"
)

func TestProvision_CreatesEverythingInOrder(t *testing.T) {
	env := setupTest(t)

	err := Provision(context.Background(), ProvisionOptions{Options: env.opts})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"CreateResourceGroup rg1",
		"CreateVirtualNetwork vnet1",
		"CreateSubnet subnet1",
		"CreatePublicIP ip1",
		"CreateNetworkInterface nic1",
		"CreateVirtualMachine vm1",
	}, env.mock.CreateCalls())
	assert.Equal(t, 1, env.connects)

	out := env.out.String()
	assert.Contains(t, out, "Provisioning summary")
	assert.Contains(t, out, "created: 6")
}

func TestProvision_SecondRunCreatesNothing(t *testing.T) {
	env := setupTest(t)

	require.NoError(t, Provision(context.Background(), ProvisionOptions{Options: env.opts}))
	first := len(env.mock.CreateCalls())

	env.out.Reset()
	require.NoError(t, Provision(context.Background(), ProvisionOptions{Options: env.opts}))

	assert.Len(t, env.mock.CreateCalls(), first)
	assert.Contains(t, env.out.String(), "existing: 6")
}

func TestProvision_WritesLogFile(t *testing.T) {
	env := setupTest(t)

	require.NoError(t, Provision(context.Background(), ProvisionOptions{Options: env.opts}))

	data, err := os.ReadFile(env.opts.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "resource.created [infrastructure] resource=vnet1")
	assert.Contains(t, string(data), "resource.created [compute] resource=vm1")
}

func TestProvision_NoLogFile(t *testing.T) {
	env := setupTest(t)
	logPath := env.opts.LogFile
	env.opts.LogFile = ""

	require.NoError(t, Provision(context.Background(), ProvisionOptions{Options: env.opts}))

	_, err := os.Stat(logPath)
	assert.True(t, os.IsNotExist(err))
	assert.Contains(t, env.out.String(), "resource.created")
}

func TestProvision_JSONLogs(t *testing.T) {
	env := setupTest(t)
	env.opts.LogFormat = LogFormatJSON

	require.NoError(t, Provision(context.Background(), ProvisionOptions{Options: env.opts}))

	assert.Contains(t, env.out.String(), `"msg"`)
	assert.Contains(t, env.out.String(), `"azprov"`)
}

func TestProvision_UnknownLogFormat(t *testing.T) {
	env := setupTest(t)
	env.opts.LogFormat = "xml"

	err := Provision(context.Background(), ProvisionOptions{Options: env.opts})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown log format "xml"`)
	assert.Empty(t, env.mock.Calls)
}

func TestProvision_DryRun(t *testing.T) {
	env := setupTest(t)
	env.mock.Seed(azure.MockResourceGroupID("rg1"))

	err := Provision(context.Background(), ProvisionOptions{Options: env.opts, DryRun: true})
	require.NoError(t, err)

	assert.Empty(t, env.mock.CreateCalls())
	out := env.out.String()
	assert.Contains(t, out, "Dry run")
	assert.Contains(t, out, "existing: 1")
	assert.Contains(t, out, "planned: 5")
}

func TestProvision_MissingCredentialsFailBeforeConnecting(t *testing.T) {
	env := setupTest(t)
	env.secrets = &config.Secrets{}

	err := Provision(context.Background(), ProvisionOptions{Options: env.opts})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation phase failed")
	assert.Contains(t, err.Error(), config.EnvSubscriptionID)
	assert.Contains(t, err.Error(), config.EnvAdminUsername)
	assert.Zero(t, env.connects)
}

func TestProvision_ClientError(t *testing.T) {
	env := setupTest(t)
	newInfraClient = func(*config.Secrets, *config.Timeouts) (azure.InfrastructureManager, error) {
		return nil, errors.New("bad tenant")
	}

	err := Provision(context.Background(), ProvisionOptions{Options: env.opts})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create Azure client: bad tenant")
}

func TestProvision_ConfigError(t *testing.T) {
	env := setupTest(t)
	env.opts.ConfigPath = filepath.Join(t.TempDir(), "missing.json")

	err := Provision(context.Background(), ProvisionOptions{Options: env.opts})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestProvision_StepFailureStopsRun(t *testing.T) {
	env := setupTest(t)
	env.mock.Errors["CreatePublicIP"] = errors.New("quota exceeded")

	err := Provision(context.Background(), ProvisionOptions{Options: env.opts})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "infrastructure phase failed")
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.NotContains(t, env.mock.CreateCalls(), "CreateNetworkInterface nic1")
	assert.Contains(t, env.out.String(), "Provisioning summary")
}

func TestProvision_GeneratesSSHKeyWithoutPassword(t *testing.T) {
	env := setupTest(t)
	env.secrets.AdminPassword = ""
	keyDir := t.TempDir()

	err := Provision(context.Background(), ProvisionOptions{Options: env.opts, KeyDir: keyDir})
	require.NoError(t, err)

	privatePath := filepath.Join(keyDir, "vm1_azureuser_rsa")
	info, err := os.Stat(privatePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.FileExists(t, privatePath+".pub")
	assert.Contains(t, env.out.String(), "SSH private key written to "+privatePath)
}

func TestProvision_KeyDirDefaultsToConfigDir(t *testing.T) {
	env := setupTest(t)
	env.secrets.AdminPassword = ""

	require.NoError(t, Provision(context.Background(), ProvisionOptions{Options: env.opts}))

	assert.FileExists(t, filepath.Join(filepath.Dir(env.opts.ConfigPath), "vm1_azureuser_rsa"))
}

func TestProvision_MetricsFile(t *testing.T) {
	env := setupTest(t)
	env.opts.MetricsFile = filepath.Join(t.TempDir(), "azprov.prom")

	require.NoError(t, Provision(context.Background(), ProvisionOptions{Options: env.opts}))

	data, err := os.ReadFile(env.opts.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `azprov_resources_total{kind="virtual machine",outcome="created"} 1`)
	assert.Contains(t, string(data), "azprov_last_run_timestamp_seconds")
}

func TestProvision_NotesMissingAzureCLI(t *testing.T) {
	env := setupTest(t)
	checkOptionalPrereqs = func() *prerequisites.CheckResults {
		return &prerequisites.CheckResults{Missing: []prerequisites.Tool{prerequisites.AzureCLI(false)}}
	}

	require.NoError(t, Provision(context.Background(), ProvisionOptions{Options: env.opts}))

	assert.Contains(t, env.out.String(), "az not found in PATH")
}
