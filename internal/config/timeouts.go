package config

import (
	"os"
	"time"
)

// Timeouts holds all configurable timeout values.
// These values can be customized via environment variables.
type Timeouts struct {
	Create        time.Duration // Upper bound for one create call including its long-running operation
	Lookup        time.Duration // Upper bound for one existence check
	PollFrequency time.Duration // Interval between long-running operation polls
}

// LoadTimeouts loads timeout configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - AZPROV_TIMEOUT_CREATE (default: 30m)
//   - AZPROV_TIMEOUT_LOOKUP (default: 2m)
//   - AZPROV_POLL_FREQUENCY (default: 10s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		Create:        parseDuration("AZPROV_TIMEOUT_CREATE", 30*time.Minute),
		Lookup:        parseDuration("AZPROV_TIMEOUT_LOOKUP", 2*time.Minute),
		PollFrequency: parseDuration("AZPROV_POLL_FREQUENCY", 10*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set, unparsable or not positive, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}

	d, err := time.ParseDuration(val)
	if err != nil || d <= 0 {
		return defaultVal
	}

	return d
}

// TestTimeouts returns short timeouts for use in tests.
func TestTimeouts() *Timeouts {
	return &Timeouts{
		Create:        5 * time.Second,
		Lookup:        2 * time.Second,
		PollFrequency: 10 * time.Millisecond,
	}
}
