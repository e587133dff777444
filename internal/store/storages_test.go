// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

func TestNewStorage_InMemory(t *testing.T) {
	cfg := config.StructuredConfig{Storage: config.Storage{InMemory: true, Driver: "ignored"}}

	s, err := NewStorage(testContext(), cfg, logger.Nop())

	require.NoError(t, err)
	assert.IsType(t, &MemoryBackend{}, s.Backend)
	assert.NoError(t, s.Close())
}

func TestNewStorage_Keyring(t *testing.T) {
	keyring.MockInit()
	cfg := config.StructuredConfig{
		App: config.App{Namespace: "test"},
		Storage: config.Storage{
			Driver:   config.DriverKeyring,
			IndexDSN: filepath.Join(t.TempDir(), "index.db"),
		},
	}

	s, err := NewStorage(testContext(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.IsType(t, &KeyringBackend{}, s.Backend)
	require.NoError(t, s.Backend.Upsert(testContext(), cred("1", "github.com", "alice", "a")))

	all, err := s.Backend.QueryAll(testContext())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestNewStorage_UnknownDriver(t *testing.T) {
	cfg := config.StructuredConfig{Storage: config.Storage{Driver: "vaultwarden"}}

	s, err := NewStorage(testContext(), cfg, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestStorage_CloseTwice(t *testing.T) {
	keyring.MockInit()
	cfg := config.StructuredConfig{
		App:     config.App{Namespace: "test"},
		Storage: config.Storage{Driver: config.DriverKeyring, IndexDSN: filepath.Join(t.TempDir(), "index.db")},
	}

	s, err := NewStorage(testContext(), cfg, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}
