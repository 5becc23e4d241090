// Package registry owns competition definitions.
package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	srverr "github.com/aquaria-id/contest-api/cmd/server/internal/error"
	"github.com/aquaria-id/contest-api/cmd/server/internal/models"
	"github.com/aquaria-id/contest-api/internal/formschema"
	"github.com/aquaria-id/contest-api/internal/types"
)

const name = "github.com/aquaria-id/contest-api/cmd/server/internal/registry"

var tracer = otel.Tracer(name)

type Client struct {
	db *gorm.DB
}

func Create(db *gorm.DB) *Client {
	return &Client{db: db}
}

func checkSchedule(startAt, endAt datatypes.Null[time.Time]) error {
	if startAt.Valid && endAt.Valid && endAt.V.Before(startAt.V) {
		return fmt.Errorf("%w: endAt must not be before startAt", srverr.ErrInvalidInput)
	}

	return nil
}

func checkCompetition(c *models.Competition) error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: title must not be blank", srverr.ErrInvalidInput)
	}

	if !c.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", srverr.ErrInvalidInput, c.Status)
	}

	if c.MaxParticipants.Valid && c.MaxParticipants.V < 0 {
		return fmt.Errorf("%w: maxParticipants must not be negative", srverr.ErrInvalidInput)
	}

	if err := formschema.CheckFields(c.FormFields); err != nil {
		return fmt.Errorf("%w: %s", srverr.ErrInvalidInput, err.Error())
	}

	return checkSchedule(c.StartAt, c.EndAt)
}

// Creates a competition, defaulting to draft
func (r *Client) Create(ctx context.Context, spec types.CompetitionCreate) (*models.Competition, error) {
	ctx, span := tracer.Start(ctx, "Create")
	defer span.End()

	status := spec.Status
	if status == "" {
		status = types.CompetitionStatusDraft
	}

	requirements := spec.Requirements
	if requirements == nil {
		requirements = []string{}
	}

	competition := &models.Competition{
		Title:           strings.TrimSpace(spec.Title),
		Description:     spec.Description,
		Requirements:    requirements,
		FormFields:      formschema.Normalize(spec.FormFields),
		Status:          status,
		StartAt:         models.NewNull(spec.StartAt),
		EndAt:           models.NewNull(spec.EndAt),
		MaxParticipants: models.NewNull(spec.MaxParticipants),
		PosterImage:     models.NewNull(spec.PosterImage),
	}

	if err := checkCompetition(competition); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Ok, "rejected competition")
		return nil, err
	}

	span.AddEvent("creating competition")
	if err := r.db.WithContext(ctx).Create(competition).Error; err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create competition")
		return nil, fmt.Errorf("failed to create competition: %w", err)
	}

	span.SetAttributes(attribute.Int64("competition.id", competition.ID))
	span.RecordError(nil)
	span.SetStatus(codes.Ok, "created competition")
	return competition, nil
}

// json name -> column for every patchable field
var patchColumns = map[string]string{
	"title":           "title",
	"description":     "description",
	"requirements":    "requirements",
	"formFields":      "form_fields",
	"status":          "status",
	"startAt":         "start_at",
	"endAt":           "end_at",
	"maxParticipants": "max_participants",
	"posterImage":     "poster_image",
}

// Copies the fields present in the patch onto the competition. Returns their json names.
func applyPatch(competition *models.Competition, patch types.CompetitionPatch) []string {
	changed := []string{}
	if patch.Title.Defined {
		changed = append(changed, "title")
		competition.Title = ""
		if patch.Title.Value != nil {
			competition.Title = strings.TrimSpace(*patch.Title.Value)
		}
	}
	if patch.Description.Defined {
		changed = append(changed, "description")
		competition.Description = ""
		if patch.Description.Value != nil {
			competition.Description = *patch.Description.Value
		}
	}
	if patch.Requirements.Defined {
		changed = append(changed, "requirements")
		competition.Requirements = []string{}
		if patch.Requirements.Value != nil {
			competition.Requirements = *patch.Requirements.Value
		}
	}
	if patch.FormFields.Defined {
		changed = append(changed, "formFields")
		competition.FormFields = []types.FormField{}
		if patch.FormFields.Value != nil {
			competition.FormFields = formschema.Normalize(*patch.FormFields.Value)
		}
	}
	if patch.Status.Defined {
		changed = append(changed, "status")
		competition.Status = ""
		if patch.Status.Value != nil {
			competition.Status = *patch.Status.Value
		}
	}
	if patch.StartAt.Defined {
		changed = append(changed, "startAt")
		competition.StartAt = models.NewNull(patch.StartAt.Value)
	}
	if patch.EndAt.Defined {
		changed = append(changed, "endAt")
		competition.EndAt = models.NewNull(patch.EndAt.Value)
	}
	if patch.MaxParticipants.Defined {
		changed = append(changed, "maxParticipants")
		competition.MaxParticipants = models.NewNull(patch.MaxParticipants.Value)
	}
	if patch.PosterImage.Defined {
		changed = append(changed, "posterImage")
		competition.PosterImage = models.NewNull(patch.PosterImage.Value)
	}

	return changed
}

// Applies only the fields present in the patch. Returns the json names of the applied fields.
//
// The row is locked for the read-modify-write and only the patched columns are written,
// so concurrent patches of different fields both survive.
func (r *Client) Update(
	ctx context.Context,
	id int64,
	patch types.CompetitionPatch,
) (*models.Competition, []string, error) {
	ctx, span := tracer.Start(ctx, "Update")
	defer span.End()

	span.SetAttributes(attribute.Int64("competition.id", id))

	var competition models.Competition
	var changed []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		span.AddEvent("locking competition")
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&competition, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("competition %d: %w", id, srverr.ErrNotFound)
		} else if err != nil {
			return fmt.Errorf("failed to lock competition: %w", err)
		}

		changed = applyPatch(&competition, patch)
		if err := checkCompetition(&competition); err != nil {
			return err
		}

		if len(changed) == 0 {
			return nil
		}

		columns := make([]string, 0, len(changed))
		for _, field := range changed {
			columns = append(columns, patchColumns[field])
		}

		span.AddEvent("saving competition", trace.WithAttributes(
			attribute.StringSlice("columns", columns),
		))
		if err := tx.Model(&competition).Select(columns).Updates(&competition).Error; err != nil {
			return fmt.Errorf("failed to save competition: %w", err)
		}

		// picks up updated_at from the trigger
		if err := tx.First(&competition, id).Error; err != nil {
			return fmt.Errorf("failed to reload competition: %w", err)
		}

		return nil
	})
	if errors.Is(err, srverr.ErrNotFound) || errors.Is(err, srverr.ErrInvalidInput) {
		span.RecordError(err)
		span.SetStatus(codes.Ok, "rejected competition update")
		return nil, nil, err
	} else if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to update competition")
		return nil, nil, err
	}

	span.SetAttributes(attribute.StringSlice("competition.changed", changed))
	span.RecordError(nil)
	span.SetStatus(codes.Ok, "updated competition")
	return &competition, changed, nil
}

// Deletes a competition along with its registrations and scores
func (r *Client) Delete(ctx context.Context, id int64) error {
	ctx, span := tracer.Start(ctx, "Delete")
	defer span.End()

	span.SetAttributes(attribute.Int64("competition.id", id))

	result := r.db.WithContext(ctx).Delete(&models.Competition{}, id)
	if result.Error != nil {
		span.RecordError(result.Error)
		span.SetStatus(codes.Error, "failed to delete competition")
		return fmt.Errorf("failed to delete competition: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		span.RecordError(srverr.ErrNotFound)
		span.SetStatus(codes.Ok, "competition did not exist")
		return fmt.Errorf("competition %d: %w", id, srverr.ErrNotFound)
	}

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "deleted competition")
	return nil
}

func (r *Client) Get(ctx context.Context, id int64) (*models.Competition, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()

	competition, err := models.ByID[models.Competition](ctx, r.db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Ok, "competition not found")
		return nil, fmt.Errorf("competition %d: %w", id, srverr.ErrNotFound)
	} else if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch competition")
		return nil, fmt.Errorf("failed to fetch competition: %w", err)
	}

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "fetched competition")
	return competition, nil
}

// Open competitions, soonest start first with unscheduled ones last
func (r *Client) ListOpen(ctx context.Context) ([]models.Competition, error) {
	ctx, span := tracer.Start(ctx, "ListOpen")
	defer span.End()

	competitions := []models.Competition{}
	err := r.db.WithContext(ctx).
		Where("status = ?", types.CompetitionStatusOpen).
		Order("start_at ASC NULLS LAST").
		Order("created_at DESC").
		Order("id DESC").
		Find(&competitions).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list open competitions")
		return nil, fmt.Errorf("failed to list open competitions: %w", err)
	}

	span.SetAttributes(attribute.Int("competitions.count", len(competitions)))
	span.RecordError(nil)
	span.SetStatus(codes.Ok, "listed open competitions")
	return competitions, nil
}

func (r *Client) List(ctx context.Context) ([]models.Competition, error) {
	ctx, span := tracer.Start(ctx, "List")
	defer span.End()

	competitions := []models.Competition{}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&competitions).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list competitions")
		return nil, fmt.Errorf("failed to list competitions: %w", err)
	}

	span.SetAttributes(attribute.Int("competitions.count", len(competitions)))
	span.RecordError(nil)
	span.SetStatus(codes.Ok, "listed competitions")
	return competitions, nil
}

// Competition along with registration counts and the highest assigned rank
func (r *Client) Detail(ctx context.Context, id int64) (*models.Competition, *types.CompetitionStats, error) {
	ctx, span := tracer.Start(ctx, "Detail")
	defer span.End()

	competition, err := r.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Ok, "failed to find competition")
		return nil, nil, err
	}

	var stats types.CompetitionStats
	err = r.db.WithContext(ctx).Raw(`
SELECT
    COUNT(*) AS total,
    MAX(ranking) AS max_rank,
    COUNT(*) FILTER (WHERE status = ?) AS pending,
    COUNT(*) FILTER (WHERE status = ?) AS approved,
    COUNT(*) FILTER (WHERE status = ?) AS rejected
FROM registration
WHERE competition_id = ?`,
		types.RegistrationStatusPending,
		types.RegistrationStatusApproved,
		types.RegistrationStatusRejected,
		id,
	).Scan(&stats).Error
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to compute competition stats")
		return nil, nil, fmt.Errorf("failed to compute competition stats: %w", err)
	}

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "fetched competition detail")
	return competition, &stats, nil
}
