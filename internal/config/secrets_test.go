package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secretEnvVars = []string{
	EnvSubscriptionID, EnvTenantID, EnvClientID, EnvClientSecret,
	EnvAdminUsername, EnvAdminPassword, EnvWorkspaceID,
}

// clearSecretEnv empties every secret variable for the duration of the test.
// godotenv only sets variables that are absent, so they are unset rather than emptied.
func clearSecretEnv(t *testing.T) {
	t.Helper()
	for _, name := range secretEnvVars {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestLoadSecrets_FromEnvFile(t *testing.T) {
	clearSecretEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "AZURE_SUBSCRIPTION_ID=sub\nAZURE_TENANT_ID=tenant\nAZURE_CLIENT_ID=client\n" +
		"AZURE_CLIENT_SECRET=secret\nADMIN_USERNAME=azureuser\nWORKSPACE_ID=/subscriptions/sub/ws\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0600))

	s, err := LoadSecrets(envFile)
	require.NoError(t, err)

	assert.Equal(t, "sub", s.SubscriptionID)
	assert.Equal(t, "tenant", s.TenantID)
	assert.Equal(t, "client", s.ClientID)
	assert.Equal(t, "secret", s.ClientSecret)
	assert.Equal(t, "azureuser", s.AdminUsername)
	assert.Equal(t, "/subscriptions/sub/ws", s.WorkspaceID)
	assert.False(t, s.UsesPasswordAuth())
	assert.NoError(t, s.ValidateForProvisioning())
	assert.NoError(t, s.ValidateForMonitoring())
}

func TestLoadSecrets_EnvironmentWinsOverFile(t *testing.T) {
	clearSecretEnv(t)
	t.Setenv(EnvSubscriptionID, "from-env")
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("AZURE_SUBSCRIPTION_ID=from-file\n"), 0600))

	s, err := LoadSecrets(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-env", s.SubscriptionID)
}

func TestLoadSecrets_MissingEnvFileIsIgnored(t *testing.T) {
	clearSecretEnv(t)
	t.Setenv(EnvAdminPassword, "p@ss")

	s, err := LoadSecrets(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.True(t, s.UsesPasswordAuth())
}

func TestSecrets_ValidationListsEveryMissingVariable(t *testing.T) {
	t.Parallel()
	s := &Secrets{SubscriptionID: "sub"}

	err := s.ValidateForProvisioning()
	require.Error(t, err)
	for _, name := range []string{EnvTenantID, EnvClientID, EnvClientSecret, EnvAdminUsername} {
		assert.Contains(t, err.Error(), name)
	}
	assert.NotContains(t, err.Error(), EnvSubscriptionID)

	err = s.ValidateForMonitoring()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvWorkspaceID)
	assert.NotContains(t, err.Error(), EnvAdminUsername)
}
