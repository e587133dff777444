// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// Index is the SQLite table holding the queryable attributes of keyring
// credentials: id, service, account, notes and last_modified. Secrets never
// touch the index. Every row belongs to one namespace.
type Index struct {
	db        *DB
	namespace string
}

// NewIndex returns an index scoped to namespace.
func NewIndex(db *DB, namespace string) *Index {
	return &Index{db: db, namespace: namespace}
}

// Replace deletes the row stored under the business key of c and inserts c
// in a single transaction. beforeCommit, when non-nil, runs after both
// statements succeed; an error from it rolls the transaction back. If the
// commit itself fails after beforeCommit succeeded, undoing its side effects
// is up to the caller.
func (ix *Index) Replace(ctx context.Context, c models.Credential, beforeCommit func() error) error {
	log := logger.FromContext(ctx)

	deleteSQL, deleteArgs, err := deleteByKeyQuery(ix.namespace, c.Service, c.Account)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertSQL, insertArgs, err := insertQuery(ix.namespace, c)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := ix.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "Index.Replace").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteSQL, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "Index.Replace").
			Str("service", c.Service).
			Str("account", c.Account).
			Msg("failed to delete previous index row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err := tx.ExecContext(ctx, insertSQL, insertArgs...); err != nil {
		log.Err(err).
			Str("func", "Index.Replace").
			Str("id", c.ID).
			Msg("failed to insert index row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if beforeCommit != nil {
		if err := beforeCommit(); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "Index.Replace").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// All returns every row of the namespace. The returned credentials carry no
// secret.
func (ix *Index) All(ctx context.Context) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectAllQuery(ix.namespace)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := ix.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "Index.All").Msg("failed to query index")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var items []models.Credential
	for rows.Next() {
		var item models.Credential
		if err := rows.Scan(&item.ID, &item.Service, &item.Account, &item.Notes, &item.LastModified); err != nil {
			log.Err(err).Str("func", "Index.All").Msg("failed to scan index row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "Index.All").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// Remove deletes the row stored under (service, account). A missing row is
// not an error.
func (ix *Index) Remove(ctx context.Context, service, account string) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteByKeyQuery(ix.namespace, service, account)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := ix.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "Index.Remove").
			Str("service", service).
			Str("account", account).
			Msg("failed to delete index row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
