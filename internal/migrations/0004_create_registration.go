package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(Up0004, Down0004)
}

func Up0004(ctx context.Context, tx *sql.Tx) error {
	return execStatements(ctx, tx,
		statement{query: `
CREATE TABLE registration (
    id BIGSERIAL PRIMARY KEY,
    competition_id BIGINT NOT NULL REFERENCES competition(id) ON DELETE CASCADE,
    participant_id BIGINT NOT NULL REFERENCES account(id),
    answers JSONB NOT NULL DEFAULT '{}'::jsonb,
    status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'approved', 'rejected')),
    ranking INTEGER CHECK (ranking > 0),
    final_position TEXT,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT current_timestamp,
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT current_timestamp,
    CONSTRAINT registration_competition_participant_key UNIQUE (competition_id, participant_id)
);
`},
		statement{query: `
CREATE INDEX registration_competition_created_idx ON registration (competition_id, created_at DESC, id DESC);
`},
		statement{query: `
CREATE INDEX registration_participant_created_idx ON registration (participant_id, created_at DESC, id DESC);
`},
	)
}

func Down0004(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE registration;`)
	return err
}
