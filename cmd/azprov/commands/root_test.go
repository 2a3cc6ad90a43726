package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/azprov/cmd/azprov/handlers"
	"github.com/imamik/azprov/internal/config"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "azprov", cmd.Use)
	assert.Equal(t, "Provision an Azure virtual machine and its monitoring", cmd.Short)
	assert.True(t, cmd.SilenceUsage)
}

func TestRoot_HasSubcommands(t *testing.T) {
	cmd := Root()

	expectedSubcommands := []string{
		"provision",
		"monitor",
		"alerts",
		"init",
		"version",
		"completion",
	}

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}

	for _, expected := range expectedSubcommands {
		assert.True(t, subcommands[expected], "Expected subcommand %s not found", expected)
	}
	assert.Len(t, cmd.Commands(), len(expectedSubcommands))
}

func TestRoot_PersistentFlagDefaults(t *testing.T) {
	cmd := Root()
	flags := cmd.PersistentFlags()

	tests := []struct {
		name string
		want string
	}{
		{"config", config.DefaultConfigFilename},
		{"env-file", config.DefaultEnvFilename},
		{"log-file", config.DefaultLogFilename},
		{"log-format", handlers.LogFormatText},
		{"metrics-file", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := flags.Lookup(tt.name)
			require.NotNil(t, f, "flag %s not found", tt.name)
			assert.Equal(t, tt.want, f.DefValue)
		})
	}

	assert.Equal(t, "c", flags.Lookup("config").Shorthand)
}

func TestRoot_SubcommandsInheritFlags(t *testing.T) {
	cmd := Root()
	for _, name := range []string{"provision", "monitor", "alerts"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.NotNil(t, sub.InheritedFlags().Lookup("config"), "%s should inherit --config", name)
	}
}
