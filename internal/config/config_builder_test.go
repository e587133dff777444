// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig returns a config that passes validation on every platform.
func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{Namespace: "test"},
		Storage: Storage{InMemory: true},
		UI:      UI{GeneratedLength: 16},
		Log:     Log{Level: "info"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a zero config fails validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_DefaultsAreValid verifies that the built-in defaults alone
// produce a usable config.
func TestBuild_DefaultsAreValid(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, DefaultNamespace, cfg.App.Namespace)
	assert.Equal(t, DefaultGeneratedLength, cfg.UI.GeneratedLength)
	assert.Equal(t, DefaultClipboardClearAfter, cfg.UI.ClipboardClearAfter)
	assert.NotEmpty(t, cfg.Storage.IndexDSN)
	assert.Contains(t, []string{DriverKeychain, DriverKeyring}, cfg.Storage.Driver)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{App: App{StableIDs: true}},
		&StructuredConfig{Log: Log{File: "/tmp/x.log"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.App.Namespace)
	assert.True(t, cfg.App.StableIDs)
	assert.Equal(t, "/tmp/x.log", cfg.Log.File)
}

// TestBuild_LaterSourceWins verifies that a later non-zero field overrides
// an earlier one while zero fields do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{App: App{Namespace: "override"}},
		&StructuredConfig{App: App{Namespace: ""}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.App.Namespace)
	assert.Equal(t, 16, cfg.UI.GeneratedLength)
}

// TestBuild_ValidationFailure verifies that validation errors surface from
// build.
func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig(), &StructuredConfig{UI: UI{GeneratedLength: 2}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidUIConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_AppendsConfig verifies that withEnv appends the parsed
// environment.
func TestWithEnv_AppendsConfig(t *testing.T) {
	setEnvVars(t, map[string]string{"VAULT_APP_NAMESPACE": "env-ns"})

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-ns", b.configs[0].App.Namespace)
}

// TestWithEnv_SetsError_WhenInvalid verifies that parse errors are recorded.
func TestWithEnv_SetsError_WhenInvalid(t *testing.T) {
	setEnvVars(t, map[string]string{"VAULT_UI_GENERATED_LENGTH": "many"})

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_NilIsNoop verifies that nil flags add nothing.
func TestWithFlags_NilIsNoop(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

// TestWithFlags_OverridesEnv verifies that flags take precedence over the
// environment.
func TestWithFlags_OverridesEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"VAULT_APP_NAMESPACE": "env-ns",
		"VAULT_LOG_LEVEL":     "warn",
	})
	f := parseTestFlags(t, "--namespace", "flag-ns", "--in-memory")

	cfg, err := newConfigBuilder().withDefaults().withEnv().withFlags(f).build()

	require.NoError(t, err)
	assert.Equal(t, "flag-ns", cfg.App.Namespace)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Storage.InMemory)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPath_NoOp verifies that withJSON does nothing when no
// config carries a JSON path.
func TestWithJSON_NoPath_NoOp(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Namespace = "json-ns"
	payload.UI.ClipboardClearAfter = Duration(5 * time.Second)
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-ns", b.configs[1].App.Namespace)
	assert.Equal(t, 5*time.Second, b.configs[1].UI.ClipboardClearAfter)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Namespace = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Namespace)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_JSONOverridesFlags verifies the full priority
// chain with a JSON file named on the command line.
func TestGetStructuredConfig_JSONOverridesFlags(t *testing.T) {
	clearEnvVars(t)

	payload := StructuredJSONConfig{}
	payload.App.Namespace = "from-json"
	payload.UI.GeneratedLength = 40
	path := writeTempJSONConfig(t, payload)

	fs := pflag.NewFlagSet("vault-test", pflag.ContinueOnError)
	f := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"-c", path, "--namespace", "from-flag", "--in-memory"}))

	cfg, err := GetStructuredConfig(f)

	require.NoError(t, err)
	assert.Equal(t, "from-json", cfg.App.Namespace)
	assert.Equal(t, 40, cfg.UI.GeneratedLength)
	assert.True(t, cfg.Storage.InMemory)
	assert.Equal(t, path, cfg.JSONFilePath)
}
