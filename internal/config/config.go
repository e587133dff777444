// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

// EnvPrefix is prepended to every environment variable the vault reads.
const EnvPrefix = "VAULT_"

// Persistent backend drivers accepted by Storage.Driver.
const (
	// DriverKeychain stores credentials as macOS generic-password items.
	DriverKeychain = "keychain"
	// DriverKeyring stores payloads in the OS keyring and attributes in a
	// local SQLite index.
	DriverKeyring = "keyring"
)

// Defaults applied before any other source is merged.
const (
	DefaultNamespace           = "go-pass-vault"
	DefaultGeneratedLength     = 16
	DefaultClipboardClearAfter = 30 * time.Second
	DefaultLogLevel            = "info"
)

// StructuredConfig is the top-level configuration container for the vault.
// It is populated by merging defaults, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//
// Every variable is additionally prefixed with [EnvPrefix].
type StructuredConfig struct {
	// App holds vault-wide behaviour switches.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the secure backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds settings for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// UI holds settings for the interactive front ends.
	UI UI `envPrefix:"UI_"`

	// Log controls the zerolog output.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Env: VAULT_CONFIG, flag: -c / --config
	JSONFilePath string `env:"CONFIG"`
}

// App holds vault-wide behaviour switches.
type App struct {
	// Namespace scopes every persisted item. Two vaults with different
	// namespaces never see each other's credentials.
	// Env: VAULT_APP_NAMESPACE
	Namespace string `env:"NAMESPACE"`

	// StableIDs makes an update of an existing business key keep the
	// record ID instead of minting a new one.
	// Env: VAULT_APP_STABLE_IDS
	StableIDs bool `env:"STABLE_IDS"`
}

// Storage selects the secure backend for the lifetime of the process.
type Storage struct {
	// InMemory selects the process-local backend. Nothing is persisted.
	// Env: VAULT_STORAGE_IN_MEMORY
	InMemory bool `env:"IN_MEMORY"`

	// Driver names the persistent backend: [DriverKeychain] or
	// [DriverKeyring]. Ignored when InMemory is set.
	// Env: VAULT_STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// IndexDSN is the SQLite data source of the attribute index used by
	// the keyring driver.
	// Env: VAULT_STORAGE_INDEX_DSN
	IndexDSN string `env:"INDEX_DSN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval makes the interactive UI reload the backend
	// periodically, picking up items changed by other programs. Zero
	// disables the job.
	// Env: VAULT_WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// UI holds settings for the TUI and CLI.
type UI struct {
	// GeneratedLength is the length of passwords produced by the
	// generate action.
	// Env: VAULT_UI_GENERATED_LENGTH
	GeneratedLength int `env:"GENERATED_LENGTH"`

	// ClipboardClearAfter is how long a copied secret stays on the
	// clipboard. Zero disables clearing.
	// Env: VAULT_UI_CLIPBOARD_CLEAR_AFTER
	ClipboardClearAfter time.Duration `env:"CLIPBOARD_CLEAR_AFTER"`
}

// Log controls logging.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error...).
	// Env: VAULT_LOG_LEVEL
	Level string `env:"LEVEL"`

	// File, when set, redirects logs to the given path. The TUI always
	// logs to a file so the screen is not corrupted.
	// Env: VAULT_LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads, merges, and validates the vault configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags registered through [RegisterFlags]
//  4. JSON file (path resolved from sources 2 and 3)
//
// flags may be nil when no command line is available.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}

// defaultConfig returns the built-in configuration. File locations live
// under the user's configuration directory.
func defaultConfig() *StructuredConfig {
	driver := DriverKeyring
	if runtime.GOOS == "darwin" {
		driver = DriverKeychain
	}

	dir := dataDir()

	return &StructuredConfig{
		App: App{
			Namespace: DefaultNamespace,
		},
		Storage: Storage{
			Driver:   driver,
			IndexDSN: filepath.Join(dir, "index.db"),
		},
		UI: UI{
			GeneratedLength:     DefaultGeneratedLength,
			ClipboardClearAfter: DefaultClipboardClearAfter,
		},
		Log: Log{
			Level: DefaultLogLevel,
			File:  filepath.Join(dir, "vault.log"),
		},
	}
}

func dataDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		base = os.TempDir()
	}
	return filepath.Join(base, DefaultNamespace)
}
