package competitions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	srverr "github.com/aquaria-id/contest-api/cmd/server/internal/error"
	servermiddleware "github.com/aquaria-id/contest-api/cmd/server/internal/middleware"
	"github.com/aquaria-id/contest-api/cmd/server/internal/models"
	"github.com/aquaria-id/contest-api/cmd/server/internal/response"
	"github.com/aquaria-id/contest-api/internal/archive"
	"github.com/aquaria-id/contest-api/internal/audit"
	"github.com/aquaria-id/contest-api/internal/logger"
	"github.com/aquaria-id/contest-api/internal/types"
)

// SubmitScore appends a judge's score sheet to a registration
//
//	@Summary		Submit score
//	@Description	scores are append only, the newest one is the current score
//	@Tags			scores
//	@Accept			json
//	@Produce		json
//
//	@Security		BearerAuth
//
//	@Param			competition_id	path		int						true	"Competition ID"
//	@Param			registration_id	path		int						true	"Registration ID"
//	@Param			payload			body		types.ScoreSubmission	true	"Score sheet"
//
//	@Success		201				{object}	types.ScoreResponse
//	@Failure		400				{object}	types.Error
//	@Failure		401				{object}	types.Error
//	@Failure		403				{object}	types.Error
//	@Failure		404				{object}	types.Error
//	@Failure		429				{object}	types.Error
//	@Failure		500				{object}	types.Error
//
//	@Router			/competitions/{competition_id}/registrations/{registration_id}/scores/ [post]
func (h *Handler) SubmitScore(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "SubmitScore")
	defer span.End()

	caller, ok := servermiddleware.IdentityFrom(c, identityKey)
	if !ok {
		span.RecordError(srverr.ErrTypeAssertMismatch)
		span.SetStatus(codes.Error, fmt.Sprintf("identity: %s", srverr.ErrTypeAssertMismatch))
		return response.InternalServerError
	}

	competition, ok := c.Get(competitionKey).(*models.Competition)
	if !ok {
		span.RecordError(srverr.ErrTypeAssertMismatch)
		span.SetStatus(codes.Error, fmt.Sprintf("competition: %s", srverr.ErrTypeAssertMismatch))
		return response.InternalServerError
	}

	requestTime, ok := c.Get(timeKey).(time.Time)
	if !ok {
		span.RecordError(srverr.ErrTypeAssertMismatch)
		span.SetStatus(codes.Error, fmt.Sprintf("time: %s", srverr.ErrTypeAssertMismatch))
		return response.InternalServerError
	}

	type requestData struct {
		RegistrationID int64 `param:"registration_id" json:"-" validate:"required,gte=1"`
		types.ScoreSubmission
	}

	var rdata requestData
	if err := c.Bind(&rdata); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Ok, "failed to parse request data")
		return badRequest("failed to parse request data")
	}
	if err := c.Validate(rdata); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Ok, "failed to validate request")
		return echo.NewHTTPError(http.StatusBadRequest, types.ValidationError(err))
	}

	span.SetAttributes(
		attribute.Int64("competition.id", competition.ID),
		attribute.Int64("registration.id", rdata.RegistrationID),
		attribute.Int64("judge.id", caller.ID),
		attribute.Int64("request.timestamp_ms", requestTime.UnixMilli()),
	)

	score, err := h.scoring.Submit(
		ctx,
		competition.ID,
		rdata.RegistrationID,
		caller.ID,
		rdata.ScoreSubmission,
		requestTime,
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to submit score")
		return errorResponse(err)
	}

	auditContext := audit.Context{CompetitionID: int64Ptr(competition.ID), ActorID: int64Ptr(caller.ID)}
	audit.LogScoreSubmitted(auditContext, score.RegistrationID, score.ID, models.PtrFromNull(score.TotalScore))

	body := score.Response()
	h.archiveScoreSheet(ctx, auditContext, body)

	span.SetAttributes(attribute.Int64("score.id", score.ID))
	span.RecordError(nil)
	span.SetStatus(codes.Ok, "submitted score")
	return c.JSON(http.StatusCreated, body)
}

// Hands the score sheet to the task runner. The response does not wait for storage.
func (h *Handler) archiveScoreSheet(ctx context.Context, auditContext audit.Context, sheet types.ScoreResponse) {
	if h.archiver == nil || h.taskRunner == nil {
		return
	}

	buffer, err := json.Marshal(sheet)
	if err != nil {
		logger.Logger.ErrorContext(ctx, "failed to serialize score sheet", "error", err, "scoreID", sheet.ID)
		return
	}

	h.taskRunner.Run(ctx, "archive score sheet", func(ctx context.Context) {
		_, err := archive.ArchiveBuffer(ctx, auditContext, h.archiver, buffer, archive.Metadata{
			ArchivedFile: types.FileScoreSheet,
			Entity:       audit.EntityScore,
			EntityID:     strconv.FormatInt(sheet.ID, 10),
		})
		if err != nil {
			logger.Logger.ErrorContext(ctx, "failed to archive score sheet", "error", err, "scoreID", sheet.ID)
		}
	})
}

// ScoreHistory lists every score of a registration
//
//	@Summary		Score history
//	@Tags			scores
//	@Produce		json
//
//	@Security		BearerAuth
//
//	@Param			competition_id	path		int	true	"Competition ID"
//	@Param			registration_id	path		int	true	"Registration ID"
//
//	@Success		200				{array}		types.ScoreResponse
//	@Failure		400				{object}	types.Error
//	@Failure		401				{object}	types.Error
//	@Failure		403				{object}	types.Error
//	@Failure		404				{object}	types.Error
//	@Failure		500				{object}	types.Error
//
//	@Router			/competitions/{competition_id}/registrations/{registration_id}/scores/ [get]
func (h *Handler) ScoreHistory(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "ScoreHistory")
	defer span.End()

	competition, ok := c.Get(competitionKey).(*models.Competition)
	if !ok {
		span.RecordError(srverr.ErrTypeAssertMismatch)
		span.SetStatus(codes.Error, fmt.Sprintf("competition: %s", srverr.ErrTypeAssertMismatch))
		return response.InternalServerError
	}

	type requestData struct {
		RegistrationID int64 `param:"registration_id" validate:"required,gte=1"`
	}

	var rdata requestData
	if err := c.Bind(&rdata); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Ok, "failed to parse request data")
		return badRequest("failed to parse request data")
	}
	if err := c.Validate(rdata); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Ok, "failed to validate request")
		return echo.NewHTTPError(http.StatusBadRequest, types.ValidationError(err))
	}

	span.SetAttributes(
		attribute.Int64("competition.id", competition.ID),
		attribute.Int64("registration.id", rdata.RegistrationID),
	)

	scores, err := h.scoring.History(ctx, competition.ID, rdata.RegistrationID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to get score history")
		return errorResponse(err)
	}

	out := make([]types.ScoreResponse, 0, len(scores))
	for i := range scores {
		out = append(out, scores[i].Response())
	}

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "got score history")
	return c.JSON(http.StatusOK, out)
}
