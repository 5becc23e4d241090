// Package admission decides whether a participant may register for a competition.
package admission

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	srverr "github.com/aquaria-id/contest-api/cmd/server/internal/error"
	"github.com/aquaria-id/contest-api/cmd/server/internal/models"
	"github.com/aquaria-id/contest-api/internal/formschema"
	"github.com/aquaria-id/contest-api/internal/logger"
	"github.com/aquaria-id/contest-api/internal/types"
)

const name = "github.com/aquaria-id/contest-api/cmd/server/internal/admission"

var (
	tracer = otel.Tracer(name)
	meter  = otel.Meter(name)
)

const (
	outcomeCreated    = "created"
	outcomeUpdated    = "updated"
	outcomeNotFound   = "not_found"
	outcomeClosed     = "invalid_state"
	outcomeFull       = "capacity_exceeded"
	outcomeIncomplete = "validation_error"
	outcomeConflict   = "conflict"
	outcomeError      = "error"
)

type Client struct {
	db       *gorm.DB
	attempts metric.Int64Counter
}

func Create(db *gorm.DB) *Client {
	attempts, err := meter.Int64Counter(
		"admission.attempts",
		metric.WithDescription("registration attempts by outcome"),
	)
	if err != nil {
		logger.Logger.Warn("failed to create admission counter", "error", err)
	}

	return &Client{db: db, attempts: attempts}
}

// Outcome of a successful admission
type Result struct {
	Registration *models.Registration
	Created      bool
}

func (a *Client) record(ctx context.Context, outcome string) {
	if a.attempts == nil {
		return
	}

	a.attempts.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func outcomeFor(err error) string {
	var validationErr *srverr.ValidationError
	switch {
	case errors.Is(err, srverr.ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, srverr.ErrInvalidState):
		return outcomeClosed
	case errors.Is(err, srverr.ErrCapacityExceeded):
		return outcomeFull
	case errors.As(err, &validationErr):
		return outcomeIncomplete
	case errors.Is(err, srverr.ErrConflict):
		return outcomeConflict
	default:
		return outcomeError
	}
}

// Registers participantID for competitionID, or replaces the answers of an existing registration.
//
// Checks run in order: the competition exists, it is open, it has room (new registrations only)
// and every required form field is answered. The competition row stays locked for the whole
// transaction so concurrent admissions to one competition are serialized.
func (a *Client) Register(
	ctx context.Context,
	competitionID int64,
	participantID int64,
	answers map[string]any,
) (*Result, error) {
	ctx, span := tracer.Start(ctx, "Register")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("competition.id", competitionID),
		attribute.Int64("participant.id", participantID),
	)

	if err := formschema.CheckValues(answers); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Ok, "answers had unsupported values")
		return nil, fmt.Errorf("%w: %s", srverr.ErrInvalidInput, err.Error())
	}

	var result *Result
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = admit(ctx, tx, competitionID, participantID, answers)
		return err
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		err = fmt.Errorf("%w: %s", srverr.ErrConflict, err.Error())
	}

	if err != nil {
		outcome := outcomeFor(err)
		a.record(ctx, outcome)

		span.RecordError(err)
		if outcome == outcomeError {
			span.SetStatus(codes.Error, "failed to register")
		} else {
			span.SetStatus(codes.Ok, "registration denied")
		}
		span.SetAttributes(attribute.String("admission.outcome", outcome))
		return nil, err
	}

	outcome := outcomeUpdated
	if result.Created {
		outcome = outcomeCreated
	}
	a.record(ctx, outcome)

	span.SetAttributes(
		attribute.String("admission.outcome", outcome),
		attribute.Int64("registration.id", result.Registration.ID),
	)
	span.RecordError(nil)
	span.SetStatus(codes.Ok, "registered")
	return result, nil
}

func admit(
	ctx context.Context,
	tx *gorm.DB,
	competitionID int64,
	participantID int64,
	answers map[string]any,
) (*Result, error) {
	span := trace.SpanFromContext(ctx)

	span.AddEvent("locking competition")
	var competition models.Competition
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&competition, competitionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("competition %d: %w", competitionID, srverr.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to lock competition: %w", err)
	}

	if competition.Status != types.CompetitionStatusOpen {
		return nil, fmt.Errorf("competition is %s: %w", competition.Status, srverr.ErrInvalidState)
	}

	span.AddEvent("looking up existing registration")
	var existing models.Registration
	lookup := tx.
		Where("competition_id = ? AND participant_id = ?", competitionID, participantID).
		Limit(1).
		Find(&existing)
	if lookup.Error != nil {
		return nil, fmt.Errorf("failed to look up registration: %w", lookup.Error)
	}
	found := lookup.RowsAffected > 0

	if !found && competition.MaxParticipants.Valid {
		var count int64
		err = tx.Model(&models.Registration{}).
			Where("competition_id = ?", competitionID).
			Count(&count).Error
		if err != nil {
			return nil, fmt.Errorf("failed to count registrations: %w", err)
		}

		span.AddEvent("checked capacity", trace.WithAttributes(
			attribute.Int64("registrations.count", count),
			attribute.Int("competition.max_participants", competition.MaxParticipants.V),
		))
		if count >= int64(competition.MaxParticipants.V) {
			return nil, srverr.ErrCapacityExceeded
		}
	}

	if missing := formschema.Missing(competition.FormFields, answers); len(missing) > 0 {
		return nil, &srverr.ValidationError{Fields: missing}
	}

	if answers == nil {
		answers = map[string]any{}
	}

	if found {
		span.AddEvent("updating answers")
		err = tx.Model(&existing).Update("answers", datatypes.JSONMap(answers)).Error
		if err != nil {
			return nil, fmt.Errorf("failed to update registration: %w", err)
		}
		existing.Answers = answers

		return &Result{Registration: &existing}, nil
	}

	span.AddEvent("inserting registration")
	registration := &models.Registration{
		CompetitionID: competitionID,
		ParticipantID: participantID,
		Answers:       answers,
		Status:        types.RegistrationStatusPending,
	}
	if err = tx.Create(registration).Error; err != nil {
		return nil, fmt.Errorf("failed to insert registration: %w", err)
	}

	return &Result{Registration: registration, Created: true}, nil
}
