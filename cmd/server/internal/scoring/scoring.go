// Package scoring keeps the append-only ledger of judge scores.
package scoring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"gorm.io/gorm"

	srverr "github.com/aquaria-id/contest-api/cmd/server/internal/error"
	"github.com/aquaria-id/contest-api/cmd/server/internal/models"
	"github.com/aquaria-id/contest-api/internal/logger"
	"github.com/aquaria-id/contest-api/internal/scoresheet"
	"github.com/aquaria-id/contest-api/internal/types"
)

const name = "github.com/aquaria-id/contest-api/cmd/server/internal/scoring"

var (
	tracer = otel.Tracer(name)
	meter  = otel.Meter(name)
)

type Client struct {
	db          *gorm.DB
	submissions metric.Int64Counter
}

func Create(db *gorm.DB) *Client {
	submissions, err := meter.Int64Counter(
		"scoring.submissions",
		metric.WithDescription("score sheets appended to the ledger"),
	)
	if err != nil {
		logger.Logger.Warn("failed to create scoring counter", "error", err)
	}

	return &Client{db: db, submissions: submissions}
}

func (l *Client) registrationExists(ctx context.Context, competitionID, registrationID int64) error {
	exists, err := models.Exists[models.Registration](
		ctx,
		l.db,
		"id = ? AND competition_id = ?",
		registrationID,
		competitionID,
	)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("registration %d: %w", registrationID, srverr.ErrNotFound)
	}

	return nil
}

// Appends a score for a registration. Earlier scores are never touched.
func (l *Client) Submit(
	ctx context.Context,
	competitionID int64,
	registrationID int64,
	judgeID int64,
	submission types.ScoreSubmission,
	at time.Time,
) (*models.Score, error) {
	ctx, span := tracer.Start(ctx, "Submit")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("competition.id", competitionID),
		attribute.Int64("registration.id", registrationID),
		attribute.Int64("judge.id", judgeID),
	)

	if _, err := scoresheet.Validate(submission.Scores); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Ok, "score sheet failed schema validation")
		return nil, fmt.Errorf("%w: %s", srverr.ErrInvalidInput, err.Error())
	}

	if err := l.registrationExists(ctx, competitionID, registrationID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Ok, "registration lookup failed")
		return nil, err
	}

	scores := submission.Scores
	if scores == nil {
		scores = map[string]any{}
	}

	score := &models.Score{
		RegistrationID: registrationID,
		JudgeID:        judgeID,
		Scores:         scores,
		TotalScore:     models.NewNull(submission.TotalScore),
		Comment:        submission.Comment,
		CreatedAt:      at,
	}

	span.AddEvent("appending score")
	err := l.db.WithContext(ctx).Create(score).Error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		span.RecordError(err)
		span.SetStatus(codes.Ok, "registration or judge vanished")
		return nil, fmt.Errorf("%w: %s", srverr.ErrConflict, err.Error())
	} else if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to append score")
		return nil, fmt.Errorf("failed to append score: %w", err)
	}

	if l.submissions != nil {
		l.submissions.Add(ctx, 1)
	}

	span.SetAttributes(attribute.Int64("score.id", score.ID))
	span.RecordError(nil)
	span.SetStatus(codes.Ok, "appended score")
	return score, nil
}

// Most recent score for a registration, or nil when it has not been scored
func (l *Client) Current(ctx context.Context, registrationID int64) (*models.Score, error) {
	ctx, span := tracer.Start(ctx, "Current")
	defer span.End()

	span.SetAttributes(attribute.Int64("registration.id", registrationID))

	var score models.Score
	result := l.db.WithContext(ctx).
		Where("registration_id = ?", registrationID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(1).
		Find(&score)
	if result.Error != nil {
		span.RecordError(result.Error)
		span.SetStatus(codes.Error, "failed to fetch current score")
		return nil, fmt.Errorf("failed to fetch current score: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		span.RecordError(nil)
		span.SetStatus(codes.Ok, "registration has not been scored")
		return nil, nil
	}

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "fetched current score")
	return &score, nil
}

// Every score for a registration, newest first
func (l *Client) History(
	ctx context.Context,
	competitionID int64,
	registrationID int64,
) ([]models.Score, error) {
	ctx, span := tracer.Start(ctx, "History")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("competition.id", competitionID),
		attribute.Int64("registration.id", registrationID),
	)

	if err := l.registrationExists(ctx, competitionID, registrationID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Ok, "registration lookup failed")
		return nil, err
	}

	scores := []models.Score{}
	err := l.db.WithContext(ctx).
		Where("registration_id = ?", registrationID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&scores).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch score history")
		return nil, fmt.Errorf("failed to fetch score history: %w", err)
	}

	span.SetAttributes(attribute.Int("scores.count", len(scores)))
	span.RecordError(nil)
	span.SetStatus(codes.Ok, "fetched score history")
	return scores, nil
}
