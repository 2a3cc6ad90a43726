package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// Environment variable names read by LoadSecrets.
const (
	EnvSubscriptionID = "AZURE_SUBSCRIPTION_ID"
	EnvTenantID       = "AZURE_TENANT_ID"
	EnvClientID       = "AZURE_CLIENT_ID"
	EnvClientSecret   = "AZURE_CLIENT_SECRET"
	EnvAdminUsername  = "ADMIN_USERNAME"
	EnvAdminPassword  = "ADMIN_PASSWORD"
	EnvWorkspaceID    = "WORKSPACE_ID"
)

// Secrets holds the credentials and identifiers provided by the environment.
type Secrets struct {
	SubscriptionID string
	TenantID       string
	ClientID       string
	ClientSecret   string
	AdminUsername  string
	AdminPassword  string
	WorkspaceID    string
}

// LoadSecrets seeds the process environment from envFile, if it exists, and
// reads the secrets from it. Variables already set in the environment take
// precedence over the file.
func LoadSecrets(envFile string) (*Secrets, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	return &Secrets{
		SubscriptionID: os.Getenv(EnvSubscriptionID),
		TenantID:       os.Getenv(EnvTenantID),
		ClientID:       os.Getenv(EnvClientID),
		ClientSecret:   os.Getenv(EnvClientSecret),
		AdminUsername:  os.Getenv(EnvAdminUsername),
		AdminPassword:  os.Getenv(EnvAdminPassword),
		WorkspaceID:    os.Getenv(EnvWorkspaceID),
	}, nil
}

// ValidateCredentials checks the service principal and subscription are set.
func (s *Secrets) ValidateCredentials() error {
	return requireEnv(
		EnvSubscriptionID, s.SubscriptionID,
		EnvTenantID, s.TenantID,
		EnvClientID, s.ClientID,
		EnvClientSecret, s.ClientSecret,
	)
}

// ValidateForProvisioning checks everything the provision flow needs.
// ADMIN_PASSWORD may be empty, in which case SSH key auth is used.
func (s *Secrets) ValidateForProvisioning() error {
	var result *multierror.Error
	result = multierror.Append(result, s.ValidateCredentials())
	result = multierror.Append(result, requireEnv(EnvAdminUsername, s.AdminUsername))
	return result.ErrorOrNil()
}

// ValidateForMonitoring checks everything the monitor flow needs.
func (s *Secrets) ValidateForMonitoring() error {
	var result *multierror.Error
	result = multierror.Append(result, s.ValidateCredentials())
	result = multierror.Append(result, requireEnv(EnvWorkspaceID, s.WorkspaceID))
	return result.ErrorOrNil()
}

// UsesPasswordAuth reports whether the VM admin logs in with a password.
func (s *Secrets) UsesPasswordAuth() bool {
	return s.AdminPassword != ""
}

// requireEnv takes name/value pairs and reports every empty value.
func requireEnv(pairs ...string) error {
	var result *multierror.Error
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			result = multierror.Append(result, fmt.Errorf("environment variable %s is not set", pairs[i]))
		}
	}
	return result.ErrorOrNil()
}
