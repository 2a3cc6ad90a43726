// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/imamik/azprov/internal/config"
	"github.com/imamik/azprov/internal/platform/azure"
	"github.com/imamik/azprov/internal/provisioning"
)

// Log formats accepted by --log-format.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Options holds the flags shared by every Azure-facing command.
type Options struct {
	ConfigPath  string
	EnvFile     string
	LogFile     string
	LogFormat   string
	MetricsFile string
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfigFile loads config from file.
	loadConfigFile = config.LoadFile

	// loadSecrets reads credentials from the env file and environment.
	loadSecrets = config.LoadSecrets

	// loadTimeouts reads operation timeouts from the environment.
	loadTimeouts = config.LoadTimeouts

	// newInfraClient creates the Azure client once credentials are validated.
	newInfraClient = func(secrets *config.Secrets, timeouts *config.Timeouts) (azure.InfrastructureManager, error) {
		cred, err := azure.NewCredential(secrets)
		if err != nil {
			return nil, err
		}
		client, err := azure.NewRealClient(secrets.SubscriptionID, cred, azure.WithTimeouts(timeouts))
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	// stdout receives log and summary output.
	stdout io.Writer = os.Stdout
)

// session is one command run: the provisioning context plus the resources
// that must be released when the command returns.
type session struct {
	pctx    *provisioning.Context
	out     io.Writer
	logFile *os.File
	opts    Options
}

// newSession loads configuration and secrets and sets up logging. The Azure
// client is not created yet so that validation can report missing
// credentials first.
func newSession(ctx context.Context, opts Options) (*session, error) {
	cfg, err := loadConfigFile(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	secrets, err := loadSecrets(opts.EnvFile)
	if err != nil {
		return nil, err
	}

	out, logFile, err := openLogOutput(opts.LogFile)
	if err != nil {
		return nil, err
	}

	observer, err := newObserver(opts.LogFormat, out)
	if err != nil {
		closeQuietly(logFile)
		return nil, err
	}

	pctx := provisioning.NewContext(ctx, cfg, secrets, nil)
	pctx.Observer = observer
	pctx.Timeouts = loadTimeouts()

	return &session{pctx: pctx, out: out, logFile: logFile, opts: opts}, nil
}

// connect creates the Azure client for the session.
func (s *session) connect() error {
	infra, err := newInfraClient(s.pctx.Secrets, s.pctx.Timeouts)
	if err != nil {
		return fmt.Errorf("failed to create Azure client: %w", err)
	}
	s.pctx.Infra = infra
	return nil
}

// close writes the metrics file, if requested, and closes the log file.
func (s *session) close() {
	if s.opts.MetricsFile != "" {
		if err := s.pctx.Metrics.WriteTextfile(s.opts.MetricsFile); err != nil {
			s.pctx.Observer.Printf("Warning: failed to write metrics: %v", err)
		}
	}
	closeQuietly(s.logFile)
}

// openLogOutput returns stdout teed into path, opened for appending.
// An empty path disables the log file.
func openLogOutput(path string) (io.Writer, *os.File, error) {
	if path == "" {
		return stdout, nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return io.MultiWriter(stdout, f), f, nil
}

func newObserver(format string, w io.Writer) (provisioning.Observer, error) {
	switch format {
	case "", LogFormatText:
		return provisioning.NewConsoleObserver(log.New(w, "", log.LstdFlags)), nil
	case LogFormatJSON:
		return provisioning.NewJSONObserver(w), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want %s or %s)", format, LogFormatText, LogFormatJSON)
	}
}

func closeQuietly(f *os.File) {
	if f != nil {
		_ = f.Close()
	}
}
