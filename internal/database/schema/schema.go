package schema

import (
	"context"

	"techcareer/internal/database"
)

// Ensure creates the job-record table and its lookup indexes when they are
// missing. Idempotent; safe to run on every seed invocation.
func Ensure(ctx context.Context, db database.DB) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id                  UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title               TEXT NOT NULL,
			company             TEXT,
			location            TEXT,
			description         TEXT,
			required_skills     TEXT[] NOT NULL DEFAULT '{}',
			experience_required REAL NOT NULL DEFAULT 0,
			salary              DOUBLE PRECISION,
			posted_at           TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			source              TEXT,
			created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_title ON jobs (lower(title))`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_posted_at ON jobs (posted_at)`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_required_skills ON jobs USING GIN (required_skills)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
