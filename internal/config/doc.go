// Package config defines the configuration model shared by the provision
// and monitor flows.
//
// The [Config] struct carries resource names and the payload defaults for
// every Azure object this tool creates. It is loaded from a JSON or YAML
// file by [LoadFile]. Credentials never live in the file: they are read
// from the environment (optionally seeded from a .env file) into
// [Secrets] by [LoadSecrets].
package config
