// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [Backend] implementations. Callers should use
// [errors.Is] to match against these values; the underlying cause stays
// wrapped.
var (
	// ErrBackendWrite is returned when an Upsert cannot be persisted.
	ErrBackendWrite = errors.New("backend write failed")

	// ErrBackendQuery is returned when QueryAll cannot enumerate the store.
	ErrBackendQuery = errors.New("backend query failed")

	// ErrBackendDelete is returned when DeleteByKey fails for a reason other
	// than the key being absent.
	ErrBackendDelete = errors.New("backend delete failed")

	// ErrUnsupportedDriver is returned by [NewStorage] when the configured
	// driver is not available on this platform.
	ErrUnsupportedDriver = errors.New("storage driver is not supported on this platform")
)

// Low-level index errors. These are wrapped inside the backend sentinels
// above when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a statement.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when scanning index rows fails.
	ErrScanningRows = errors.New("failed to scan credential rows")
)
