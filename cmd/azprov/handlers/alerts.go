package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/azprov/internal/provisioning/monitoring"
)

// Alerts prints the enabled metric alert rules of the configured resource group.
func Alerts(ctx context.Context, opts Options) error {
	s, err := newSession(ctx, opts)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.pctx.Secrets.ValidateCredentials(); err != nil {
		return fmt.Errorf("missing credentials: %w", err)
	}
	if err := s.connect(); err != nil {
		return err
	}

	rules, err := monitoring.ListEnabledAlerts(s.pctx)
	if err != nil {
		return err
	}

	printAlerts(s.out, s.pctx.Config.ResourceGroupName, rules)
	return nil
}
