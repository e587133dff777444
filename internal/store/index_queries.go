// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

const credentialsTable = "credentials"

var credentialColumns = []string{"id", "service", "account", "notes", "last_modified"}

// builder renders statements with SQLite's "?" placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func deleteByKeyQuery(namespace, service, account string) (string, []any, error) {
	return builder.
		Delete(credentialsTable).
		Where(sq.Eq{"namespace": namespace}).
		Where(sq.Eq{"service": service}).
		Where(sq.Eq{"account": account}).
		ToSql()
}

func insertQuery(namespace string, c models.Credential) (string, []any, error) {
	return builder.
		Insert(credentialsTable).
		Columns(append([]string{"namespace"}, credentialColumns...)...).
		Values(namespace, c.ID, c.Service, c.Account, c.Notes, c.LastModified.UTC()).
		ToSql()
}

func selectAllQuery(namespace string) (string, []any, error) {
	return builder.
		Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"namespace": namespace}).
		OrderBy("service", "account").
		ToSql()
}
