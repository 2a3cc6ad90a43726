package provisioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationPhase_Passes(t *testing.T) {
	t.Parallel()
	ctx, _, obs := newTestContext()

	err := NewValidationPhase(ValidateProvisioning).Provision(ctx)

	require.NoError(t, err)
	// password auth is in use in the test context
	require.Len(t, obs.events, 1)
	assert.Equal(t, EventValidationWarning, obs.events[0].Type)
	assert.Equal(t, "ADMIN_PASSWORD", obs.events[0].Fields["field"])
}

func TestValidationPhase_MissingSecrets(t *testing.T) {
	t.Parallel()
	ctx, _, _ := newTestContext()
	ctx.Secrets.ClientSecret = ""
	ctx.Secrets.AdminUsername = ""

	err := NewValidationPhase(ValidateProvisioning).Provision(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "AZURE_CLIENT_SECRET")
	assert.Contains(t, err.Error(), "ADMIN_USERNAME")
}

func TestValidationPhase_InvalidConfig(t *testing.T) {
	t.Parallel()
	ctx, _, _ := newTestContext()
	ctx.Config.Network.SubnetPrefix = "192.168.0.0/24"

	err := NewValidationPhase(ValidateProvisioning).Provision(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
}

func TestValidationPhase_Monitoring(t *testing.T) {
	t.Parallel()

	t.Run("needs workspace", func(t *testing.T) {
		t.Parallel()
		ctx, _, _ := newTestContext()
		ctx.Secrets.WorkspaceID = ""

		err := NewValidationPhase(ValidateMonitoring).Provision(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "WORKSPACE_ID")
	})

	t.Run("admin user not required", func(t *testing.T) {
		t.Parallel()
		ctx, _, obs := newTestContext()
		ctx.Secrets.AdminUsername = ""

		require.NoError(t, NewValidationPhase(ValidateMonitoring).Provision(ctx))
		assert.Empty(t, obs.events)
	})
}

func TestValidate_Warnings(t *testing.T) {
	t.Parallel()
	ctx, _, _ := newTestContext()
	ctx.Secrets.WorkspaceID = ""
	ctx.Config.VM.SSHPublicKeyPath = "/home/me/.ssh/id_rsa.pub"

	results := validate(ctx, ValidateProvisioning)

	fields := make([]string, 0, len(results))
	for _, r := range results {
		assert.False(t, r.IsError(), r.Error())
		fields = append(fields, r.Field)
	}
	assert.ElementsMatch(t, []string{"ADMIN_PASSWORD", "vm.ssh_public_key_path", "WORKSPACE_ID"}, fields)
}

func TestValidate_NilInputs(t *testing.T) {
	t.Parallel()
	ctx, _, _ := newTestContext()
	ctx.Config = nil

	results := validate(ctx, ValidateProvisioning)
	require.Len(t, results, 1)
	assert.True(t, results[0].IsError())
}
