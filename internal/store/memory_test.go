// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func cred(id, service, account, secret string) models.Credential {
	return models.Credential{
		ID:           id,
		Service:      service,
		Account:      account,
		Secret:       secret,
		LastModified: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestMemoryBackend_UpsertInsertsInOrder(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend()

	require.NoError(t, m.Upsert(ctx, cred("1", "github.com", "alice", "a")))
	require.NoError(t, m.Upsert(ctx, cred("2", "gitlab.com", "alice", "b")))

	all, err := m.QueryAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "2", all[1].ID)
}

func TestMemoryBackend_UpsertReplacesSameKey(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend()

	require.NoError(t, m.Upsert(ctx, cred("1", "github.com", "alice", "old")))
	require.NoError(t, m.Upsert(ctx, cred("2", "github.com", "alice", "new")))

	all, err := m.QueryAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "2", all[0].ID)
	assert.Equal(t, "new", all[0].Secret)
}

func TestMemoryBackend_KeyIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend()

	require.NoError(t, m.Upsert(ctx, cred("1", "GitHub.com", "alice", "a")))
	require.NoError(t, m.Upsert(ctx, cred("2", "github.com", "alice", "b")))

	assert.Equal(t, 2, m.Len())
}

func TestMemoryBackend_DeleteByKey(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend(cred("1", "github.com", "alice", "a"), cred("2", "github.com", "bob", "b"))

	require.NoError(t, m.DeleteByKey(ctx, "github.com", "alice"))

	all, err := m.QueryAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "bob", all[0].Account)
}

func TestMemoryBackend_DeleteMissingKeyIsNoop(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend(cred("1", "github.com", "alice", "a"))

	require.NoError(t, m.DeleteByKey(ctx, "github.com", "nobody"))
	assert.Equal(t, 1, m.Len())
}

func TestMemoryBackend_QueryAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryBackend(cred("1", "github.com", "alice", "a"))

	all, err := m.QueryAll(ctx)
	require.NoError(t, err)
	all[0].Secret = "mutated"

	again, err := m.QueryAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a", again[0].Secret)
}
