package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(Up0005, Down0005)
}

// Scores are append-only, the latest row per registration is the current verdict
func Up0005(ctx context.Context, tx *sql.Tx) error {
	return execStatements(ctx, tx,
		statement{query: `
CREATE TABLE score (
    id BIGSERIAL PRIMARY KEY,
    registration_id BIGINT NOT NULL REFERENCES registration(id) ON DELETE CASCADE,
    judge_id BIGINT NOT NULL REFERENCES account(id),
    scores JSONB NOT NULL DEFAULT '{}'::jsonb,
    total_score NUMERIC,
    comment TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT current_timestamp
);
`},
		statement{query: `
CREATE INDEX score_registration_latest_idx ON score (registration_id, created_at DESC, id DESC);
`},
	)
}

func Down0005(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE score;`)
	return err
}
