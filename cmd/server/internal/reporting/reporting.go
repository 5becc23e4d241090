// Package reporting assembles read-only views of registrations for administrators and participants.
package reporting

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	srverr "github.com/aquaria-id/contest-api/cmd/server/internal/error"
	"github.com/aquaria-id/contest-api/cmd/server/internal/models"
	"github.com/aquaria-id/contest-api/internal/types"
)

const name = "github.com/aquaria-id/contest-api/cmd/server/internal/reporting"

var tracer = otel.Tracer(name)

// Latest score per registration, global across judges
const currentScoreJoin = `
LEFT JOIN LATERAL (
    SELECT s.id, s.scores, s.total_score, s.comment, s.judge_id, s.created_at
    FROM score s
    WHERE s.registration_id = r.id
    ORDER BY s.created_at DESC, s.id DESC
    LIMIT 1
) cs ON TRUE`

const scoreColumns = `
    cs.id AS score_id,
    cs.scores AS score_scores,
    cs.total_score AS score_total_score,
    cs.comment AS score_comment,
    cs.judge_id AS score_judge_id,
    cs.created_at AS score_created_at`

type registrationRow struct {
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Answers       datatypes.JSONMap
	Ranking       datatypes.Null[int]
	FinalPosition datatypes.Null[string]
	Status        types.RegistrationStatus
	ID            int64
	CompetitionID int64
	ParticipantID int64

	ScoreCreatedAt  datatypes.Null[time.Time]
	ScoreScores     datatypes.JSONMap
	ScoreTotalScore datatypes.Null[float64]
	ScoreComment    datatypes.Null[string]
	ScoreID         datatypes.Null[int64]
	ScoreJudgeID    datatypes.Null[int64]
}

func (r *registrationRow) registration() types.RegistrationResponse {
	registration := models.Registration{
		Answers:       r.Answers,
		Ranking:       r.Ranking,
		FinalPosition: r.FinalPosition,
		Status:        r.Status,
		CompetitionID: r.CompetitionID,
		ParticipantID: r.ParticipantID,
		Model: models.Model{
			ID:        r.ID,
			CreatedAt: r.CreatedAt,
			UpdatedAt: r.UpdatedAt,
		},
	}

	return registration.Response()
}

func (r *registrationRow) currentScore() *types.ScoreResponse {
	if !r.ScoreID.Valid {
		return nil
	}

	score := models.Score{
		ID:             r.ScoreID.V,
		RegistrationID: r.ID,
		JudgeID:        r.ScoreJudgeID.V,
		Scores:         r.ScoreScores,
		TotalScore:     r.ScoreTotalScore,
		Comment:        r.ScoreComment.V,
		CreatedAt:      r.ScoreCreatedAt.V,
	}
	response := score.Response()

	return &response
}

type Client struct {
	db *gorm.DB
}

func Create(db *gorm.DB) *Client {
	return &Client{db: db}
}

// Registrations of a competition with participant identity and current score, newest first
func (q *Client) ListRegistrations(
	ctx context.Context,
	competitionID int64,
) ([]types.RegistrationEntry, error) {
	ctx, span := tracer.Start(ctx, "ListRegistrations")
	defer span.End()

	span.SetAttributes(attribute.Int64("competition.id", competitionID))

	exists, err := models.Exists[models.Competition](ctx, q.db, "id = ?", competitionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to look up competition")
		return nil, err
	}
	if !exists {
		span.RecordError(srverr.ErrNotFound)
		span.SetStatus(codes.Ok, "competition not found")
		return nil, fmt.Errorf("competition %d: %w", competitionID, srverr.ErrNotFound)
	}

	type row struct {
		ParticipantName  string
		ParticipantEmail string
		Registration     registrationRow `gorm:"embedded"`
	}

	rows := []row{}
	err = q.db.WithContext(ctx).Raw(`
SELECT
    r.id, r.competition_id, r.participant_id, r.answers, r.status, r.ranking, r.final_position,
    r.created_at, r.updated_at,
    a.name AS participant_name,
    a.email AS participant_email,`+scoreColumns+`
FROM registration r
JOIN account a ON a.id = r.participant_id`+currentScoreJoin+`
WHERE r.competition_id = ?
ORDER BY r.created_at DESC, r.id DESC`, competitionID).Scan(&rows).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list registrations")
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}

	entries := make([]types.RegistrationEntry, 0, len(rows))
	for i := range rows {
		entries = append(entries, types.RegistrationEntry{
			RegistrationResponse: rows[i].Registration.registration(),
			Participant: types.Participant{
				ID:    rows[i].Registration.ParticipantID,
				Name:  rows[i].ParticipantName,
				Email: rows[i].ParticipantEmail,
			},
			CurrentScore: rows[i].Registration.currentScore(),
		})
	}

	span.SetAttributes(attribute.Int("registrations.count", len(entries)))
	span.RecordError(nil)
	span.SetStatus(codes.Ok, "listed registrations")
	return entries, nil
}

// A participant's registrations across competitions, newest first
func (q *Client) MyRegistrations(
	ctx context.Context,
	participantID int64,
) ([]types.MyRegistrationEntry, error) {
	ctx, span := tracer.Start(ctx, "MyRegistrations")
	defer span.End()

	span.SetAttributes(attribute.Int64("participant.id", participantID))

	type row struct {
		CompetitionStartAt     datatypes.Null[time.Time]
		CompetitionEndAt       datatypes.Null[time.Time]
		CompetitionPosterImage datatypes.Null[string]
		CompetitionTitle       string
		CompetitionStatus      types.CompetitionStatus
		Registration           registrationRow `gorm:"embedded"`
	}

	rows := []row{}
	err := q.db.WithContext(ctx).Raw(`
SELECT
    r.id, r.competition_id, r.participant_id, r.answers, r.status, r.ranking, r.final_position,
    r.created_at, r.updated_at,
    c.title AS competition_title,
    c.status AS competition_status,
    c.start_at AS competition_start_at,
    c.end_at AS competition_end_at,
    c.poster_image AS competition_poster_image,`+scoreColumns+`
FROM registration r
JOIN competition c ON c.id = r.competition_id`+currentScoreJoin+`
WHERE r.participant_id = ?
ORDER BY r.created_at DESC, r.id DESC`, participantID).Scan(&rows).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list participant registrations")
		return nil, fmt.Errorf("failed to list participant registrations: %w", err)
	}

	entries := make([]types.MyRegistrationEntry, 0, len(rows))
	for i := range rows {
		competition := models.Competition{
			Title:       rows[i].CompetitionTitle,
			Status:      rows[i].CompetitionStatus,
			StartAt:     rows[i].CompetitionStartAt,
			EndAt:       rows[i].CompetitionEndAt,
			PosterImage: rows[i].CompetitionPosterImage,
			Model:       models.Model{ID: rows[i].Registration.CompetitionID},
		}

		entries = append(entries, types.MyRegistrationEntry{
			RegistrationResponse: rows[i].Registration.registration(),
			Competition:          competition.Summary(),
			CurrentScore:         rows[i].Registration.currentScore(),
		})
	}

	span.SetAttributes(attribute.Int("registrations.count", len(entries)))
	span.RecordError(nil)
	span.SetStatus(codes.Ok, "listed participant registrations")
	return entries, nil
}
