// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flag names shared by every vault command.
const (
	FlagConfig              = "config"
	FlagNamespace           = "namespace"
	FlagStableIDs           = "stable-ids"
	FlagInMemory            = "in-memory"
	FlagDriver              = "driver"
	FlagIndexDSN            = "index-dsn"
	FlagRefreshInterval     = "refresh-interval"
	FlagGeneratedLength     = "length"
	FlagClipboardClearAfter = "clipboard-clear"
	FlagLogLevel            = "log-level"
	FlagLogFile             = "log-file"
)

// Flags holds the configuration values bound to a pflag.FlagSet. Only
// flags the user actually set take part in the merge.
type Flags struct {
	fs *pflag.FlagSet

	jsonConfigPath      string
	namespace           string
	stableIDs           bool
	inMemory            bool
	driver              string
	indexDSN            string
	refreshInterval     time.Duration
	generatedLength     int
	clipboardClearAfter time.Duration
	logLevel            string
	logFile             string
}

// RegisterFlags binds the configuration flags to fs. Cobra callers pass
// the root command's PersistentFlags.
//
// Flags:
//
//	-c/--config          json file path with configs
//	--namespace          vault namespace scoping persisted items
//	--stable-ids         keep record IDs when a credential is updated
//	--in-memory          use the process-local backend
//	--driver             persistent backend (keychain|keyring)
//	--index-dsn          SQLite DSN of the keyring attribute index
//	--refresh-interval   periodic backend reload in the TUI (e.g. "1m")
//	--length             generated password length
//	--clipboard-clear    clipboard clear delay (e.g. "30s")
//	--log-level          zerolog level
//	--log-file           log file path
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.StringVarP(&f.jsonConfigPath, FlagConfig, "c", "", "JSON config file path")
	fs.StringVar(&f.namespace, FlagNamespace, "", "Vault namespace")
	fs.BoolVar(&f.stableIDs, FlagStableIDs, false, "Keep record IDs across updates")
	fs.BoolVar(&f.inMemory, FlagInMemory, false, "Use the in-memory backend (nothing is persisted)")
	fs.StringVar(&f.driver, FlagDriver, "", "Persistent backend: keychain or keyring")
	fs.StringVar(&f.indexDSN, FlagIndexDSN, "", "SQLite DSN of the keyring attribute index")
	fs.DurationVar(&f.refreshInterval, FlagRefreshInterval, 0, "Reload the vault periodically (e.g. 1m)")
	fs.IntVar(&f.generatedLength, FlagGeneratedLength, 0, "Generated password length")
	fs.DurationVar(&f.clipboardClearAfter, FlagClipboardClearAfter, 0, "Clipboard clear delay (e.g. 30s)")
	fs.StringVar(&f.logLevel, FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.logFile, FlagLogFile, "", "Log file path")

	return f
}

// config converts the parsed flags into a partial [StructuredConfig].
// Unset flags stay zero so they never override another source.
func (f *Flags) config() *StructuredConfig {
	cfg := &StructuredConfig{}

	set := func(name string, apply func()) {
		if f.fs.Changed(name) {
			apply()
		}
	}

	set(FlagConfig, func() { cfg.JSONFilePath = f.jsonConfigPath })
	set(FlagNamespace, func() { cfg.App.Namespace = f.namespace })
	set(FlagStableIDs, func() { cfg.App.StableIDs = f.stableIDs })
	set(FlagInMemory, func() { cfg.Storage.InMemory = f.inMemory })
	set(FlagDriver, func() { cfg.Storage.Driver = f.driver })
	set(FlagIndexDSN, func() { cfg.Storage.IndexDSN = f.indexDSN })
	set(FlagRefreshInterval, func() { cfg.Workers.RefreshInterval = f.refreshInterval })
	set(FlagGeneratedLength, func() { cfg.UI.GeneratedLength = f.generatedLength })
	set(FlagClipboardClearAfter, func() { cfg.UI.ClipboardClearAfter = f.clipboardClearAfter })
	set(FlagLogLevel, func() { cfg.Log.Level = f.logLevel })
	set(FlagLogFile, func() { cfg.Log.File = f.logFile })

	return cfg
}
