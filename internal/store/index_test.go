// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

var (
	deleteByKeySQL = regexp.QuoteMeta(`DELETE FROM credentials WHERE namespace = ? AND service = ? AND account = ?`)
	insertSQL      = regexp.QuoteMeta(`INSERT INTO credentials (namespace,id,service,account,notes,last_modified) VALUES (?,?,?,?,?,?)`)
	selectAllSQL   = regexp.QuoteMeta(`SELECT id, service, account, notes, last_modified FROM credentials WHERE namespace = ? ORDER BY service, account`)
)

var indexColumns = []string{"id", "service", "account", "notes", "last_modified"}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestIndex(t *testing.T) (*Index, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewIndex(&DB{DB: db, logger: logger.Nop()}, "ns"), mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// ── Replace ──────────────────────────────────────────────────────────────────

func TestIndex_Replace_Success(t *testing.T) {
	ix, mock := newTestIndex(t)
	c := cred("id-1", "github.com", "alice", "s3cret")
	c.Notes = "work"

	mock.ExpectBegin()
	mock.ExpectExec(deleteByKeySQL).
		WithArgs("ns", "github.com", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertSQL).
		WithArgs("ns", "id-1", "github.com", "alice", "work", c.LastModified).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	called := false
	err := ix.Replace(testContext(), c, func() error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIndex_Replace_BeforeCommitErrorRollsBack(t *testing.T) {
	ix, mock := newTestIndex(t)
	hookErr := errors.New("keyring locked")

	mock.ExpectBegin()
	mock.ExpectExec(deleteByKeySQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(insertSQL).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectRollback()

	err := ix.Replace(testContext(), cred("id-1", "github.com", "alice", "x"), func() error {
		return hookErr
	})

	assert.ErrorIs(t, err, hookErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIndex_Replace_BeginError(t *testing.T) {
	ix, mock := newTestIndex(t)

	mock.ExpectBegin().WillReturnError(errors.New("database is locked"))

	err := ix.Replace(testContext(), cred("id-1", "github.com", "alice", "x"), nil)

	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestIndex_Replace_InsertError(t *testing.T) {
	ix, mock := newTestIndex(t)

	mock.ExpectBegin()
	mock.ExpectExec(deleteByKeySQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(insertSQL).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := ix.Replace(testContext(), cred("id-1", "github.com", "alice", "x"), nil)

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIndex_Replace_CommitError(t *testing.T) {
	ix, mock := newTestIndex(t)

	mock.ExpectBegin()
	mock.ExpectExec(deleteByKeySQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(insertSQL).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit().WillReturnError(errors.New("io error"))

	err := ix.Replace(testContext(), cred("id-1", "github.com", "alice", "x"), nil)

	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

// ── All ──────────────────────────────────────────────────────────────────────

func TestIndex_All_Success(t *testing.T) {
	ix, mock := newTestIndex(t)
	ts := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(selectAllSQL).
		WithArgs("ns").
		WillReturnRows(sqlmock.NewRows(indexColumns).
			AddRow("id-1", "github.com", "alice", "", ts).
			AddRow("id-2", "gitlab.com", "bob", "ci", ts))

	items, err := ix.All(testContext())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "id-1", items[0].ID)
	assert.Equal(t, "ci", items[1].Notes)
	assert.Equal(t, ts, items[1].LastModified)
	assert.Empty(t, items[0].Secret)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIndex_All_QueryError(t *testing.T) {
	ix, mock := newTestIndex(t)

	mock.ExpectQuery(selectAllSQL).WillReturnError(errors.New("no such table"))

	items, err := ix.All(testContext())

	assert.Nil(t, items)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestIndex_All_ScanError(t *testing.T) {
	ix, mock := newTestIndex(t)

	mock.ExpectQuery(selectAllSQL).
		WillReturnRows(sqlmock.NewRows(indexColumns).
			AddRow("id-1", "github.com", "alice", "", "not-a-time"))

	items, err := ix.All(testContext())

	assert.Nil(t, items)
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestIndex_All_RowsError(t *testing.T) {
	ix, mock := newTestIndex(t)

	mock.ExpectQuery(selectAllSQL).
		WillReturnRows(sqlmock.NewRows(indexColumns).
			AddRow("id-1", "github.com", "alice", "", time.Now()).
			RowError(0, errors.New("corrupt page")))

	_, err := ix.All(testContext())

	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── Remove ───────────────────────────────────────────────────────────────────

func TestIndex_Remove_Success(t *testing.T) {
	ix, mock := newTestIndex(t)

	mock.ExpectExec(deleteByKeySQL).
		WithArgs("ns", "github.com", "alice").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, ix.Remove(testContext(), "github.com", "alice"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIndex_Remove_Error(t *testing.T) {
	ix, mock := newTestIndex(t)

	mock.ExpectExec(deleteByKeySQL).WillReturnError(errors.New("readonly database"))

	assert.ErrorIs(t, ix.Remove(testContext(), "github.com", "alice"), ErrExecutingStatement)
}
