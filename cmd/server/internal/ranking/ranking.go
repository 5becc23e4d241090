// Package ranking records the outcome administrators assign to registrations.
package ranking

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	srverr "github.com/aquaria-id/contest-api/cmd/server/internal/error"
	"github.com/aquaria-id/contest-api/cmd/server/internal/models"
	"github.com/aquaria-id/contest-api/internal/types"
)

const name = "github.com/aquaria-id/contest-api/cmd/server/internal/ranking"

var tracer = otel.Tracer(name)

type Client struct {
	db *gorm.DB
}

func Create(db *gorm.DB) *Client {
	return &Client{db: db}
}

func (r *Client) find(ctx context.Context, competitionID, registrationID int64) (*models.Registration, error) {
	var registration models.Registration
	err := r.db.WithContext(ctx).
		Where("id = ? AND competition_id = ?", registrationID, competitionID).
		First(&registration).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("registration %d: %w", registrationID, srverr.ErrNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to fetch registration: %w", err)
	}

	return &registration, nil
}

// Sets or clears the ranking and final position. Scores play no part in this.
func (r *Client) SetRank(
	ctx context.Context,
	competitionID int64,
	registrationID int64,
	update types.RankUpdate,
) (*models.Registration, error) {
	ctx, span := tracer.Start(ctx, "SetRank")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("competition.id", competitionID),
		attribute.Int64("registration.id", registrationID),
	)

	if update.Ranking.IsSet() && *update.Ranking.Value <= 0 {
		err := fmt.Errorf("%w: ranking must be a positive integer", srverr.ErrInvalidInput)
		span.RecordError(err)
		span.SetStatus(codes.Ok, "rejected ranking")
		return nil, err
	}

	registration, err := r.find(ctx, competitionID, registrationID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Ok, "registration lookup failed")
		return nil, err
	}

	updates := map[string]any{}
	if update.Ranking.Defined {
		registration.Ranking = models.NewNull(update.Ranking.Value)
		updates["ranking"] = registration.Ranking
	}
	if update.FinalPosition.Defined {
		registration.FinalPosition = models.NewNull(update.FinalPosition.Value)
		updates["final_position"] = registration.FinalPosition
	}

	if len(updates) == 0 {
		span.RecordError(nil)
		span.SetStatus(codes.Ok, "nothing to update")
		return registration, nil
	}

	span.AddEvent("writing rank")
	if err = r.db.WithContext(ctx).Model(registration).Updates(updates).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write rank")
		return nil, fmt.Errorf("failed to write rank: %w", err)
	}

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "set rank")
	return registration, nil
}

// Moves a registration to any status. There are no terminal states.
// Returns the registration along with its previous status.
func (r *Client) SetStatus(
	ctx context.Context,
	competitionID int64,
	registrationID int64,
	status types.RegistrationStatus,
) (*models.Registration, types.RegistrationStatus, error) {
	ctx, span := tracer.Start(ctx, "SetStatus")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("competition.id", competitionID),
		attribute.Int64("registration.id", registrationID),
		attribute.String("registration.status", string(status)),
	)

	if !status.Valid() {
		err := fmt.Errorf("%w: unknown status %q", srverr.ErrInvalidInput, status)
		span.RecordError(err)
		span.SetStatus(codes.Ok, "rejected status")
		return nil, "", err
	}

	registration, err := r.find(ctx, competitionID, registrationID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Ok, "registration lookup failed")
		return nil, "", err
	}

	previous := registration.Status
	span.AddEvent("writing status")
	if err = r.db.WithContext(ctx).Model(registration).Update("status", status).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write status")
		return nil, "", fmt.Errorf("failed to write status: %w", err)
	}
	registration.Status = status

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "set status")
	return registration, previous, nil
}
