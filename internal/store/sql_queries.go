// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	sessionsTable = "sessions"

	// the table holds a single row pinned to this id
	sessionRowID = 1
)

var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func saveSessionQuery(token, email string, expiresAt *int64) (string, []any, error) {
	return builder.
		Insert(sessionsTable).
		Columns("id", "token", "email", "expires_at").
		Values(sessionRowID, token, email, expiresAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET token = excluded.token, email = excluded.email, expires_at = excluded.expires_at").
		ToSql()
}

func loadSessionQuery() (string, []any, error) {
	return builder.
		Select("token", "email", "expires_at").
		From(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func deleteSessionQuery() (string, []any, error) {
	return builder.
		Delete(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}
