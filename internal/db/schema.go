package db

import (
	"context"
	"fmt"
)

// schemaDDL creates the tables on first run. Statements are idempotent so
// startup against an already-provisioned database is a no-op.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		password_hash TEXT,
		password_set BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS cvs (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		document JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cvs_user_id ON cvs(user_id)`,
	`CREATE TABLE IF NOT EXISTS cv_versions (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		cv_id UUID NOT NULL REFERENCES cvs(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		label TEXT NOT NULL DEFAULT '',
		snapshot JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cv_versions_cv_id ON cv_versions(cv_id)`,
}

// ensureSchema applies the DDL. Requires pgcrypto or Postgres 13+ for
// gen_random_uuid.
func (db *DB) ensureSchema(ctx context.Context) error {
	for _, stmt := range schemaDDL {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
