package competitions

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	srverr "github.com/aquaria-id/contest-api/cmd/server/internal/error"
	servermiddleware "github.com/aquaria-id/contest-api/cmd/server/internal/middleware"
	"github.com/aquaria-id/contest-api/cmd/server/internal/models"
	"github.com/aquaria-id/contest-api/cmd/server/internal/response"
	"github.com/aquaria-id/contest-api/internal/audit"
	"github.com/aquaria-id/contest-api/internal/types"
)

type competitionParam struct {
	CompetitionID int64 `param:"competition_id" json:"-" validate:"required,gte=1"`
}

func competitionResponses(competitions []models.Competition) []types.CompetitionResponse {
	out := make([]types.CompetitionResponse, 0, len(competitions))
	for i := range competitions {
		out = append(out, competitions[i].Response())
	}

	return out
}

// List returns every competition
//
//	@Summary		List competitions
//	@Description	all competitions, newest first
//	@Tags			competitions
//	@Produce		json
//
//	@Success		200	{array}		types.CompetitionResponse
//	@Failure		500	{object}	types.Error
//
//	@Router			/competitions/ [get]
func (h *Handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "List")
	defer span.End()

	competitions, err := h.registry.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list competitions")
		return errorResponse(err)
	}

	span.SetAttributes(attribute.Int("competitions.count", len(competitions)))
	span.RecordError(nil)
	span.SetStatus(codes.Ok, "listed competitions")
	return c.JSON(http.StatusOK, competitionResponses(competitions))
}

// ListOpen returns competitions accepting registrations
//
//	@Summary		List open competitions
//	@Description	open competitions, soonest start first, unscheduled last
//	@Tags			competitions
//	@Produce		json
//
//	@Success		200	{array}		types.CompetitionResponse
//	@Failure		500	{object}	types.Error
//
//	@Router			/competitions/open/ [get]
func (h *Handler) ListOpen(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "ListOpen")
	defer span.End()

	competitions, err := h.registry.ListOpen(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list open competitions")
		return errorResponse(err)
	}

	span.SetAttributes(attribute.Int("competitions.count", len(competitions)))
	span.RecordError(nil)
	span.SetStatus(codes.Ok, "listed open competitions")
	return c.JSON(http.StatusOK, competitionResponses(competitions))
}

// Detail returns a competition with its registration stats
//
//	@Summary		Competition detail
//	@Tags			competitions
//	@Produce		json
//
//	@Param			competition_id	path		int	true	"Competition ID"
//
//	@Success		200				{object}	types.CompetitionDetailResponse
//	@Failure		400				{object}	types.Error
//	@Failure		404				{object}	types.Error
//	@Failure		500				{object}	types.Error
//
//	@Router			/competitions/{competition_id}/ [get]
func (h *Handler) Detail(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Detail")
	defer span.End()

	var rdata competitionParam
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

	span.SetAttributes(attribute.Int64("competition.id", rdata.CompetitionID))

	competition, stats, err := h.registry.Detail(ctx, rdata.CompetitionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to get competition detail")
		return errorResponse(err)
	}

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "got competition detail")
	return c.JSON(http.StatusOK, types.CompetitionDetailResponse{
		CompetitionResponse: competition.Response(),
		Stats:               *stats,
	})
}

// CreateCompetition creates a competition
//
//	@Summary		Create competition
//	@Description	status defaults to draft
//	@Tags			competitions
//	@Accept			json
//	@Produce		json
//
//	@Security		BearerAuth
//
//	@Param			payload	body		types.CompetitionCreate	true	"Competition"
//
//	@Success		201		{object}	types.CompetitionResponse
//	@Failure		400		{object}	types.Error
//	@Failure		401		{object}	types.Error
//	@Failure		403		{object}	types.Error
//	@Failure		500		{object}	types.Error
//
//	@Router			/competitions/ [post]
func (h *Handler) CreateCompetition(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "CreateCompetition")
	defer span.End()

	caller, ok := servermiddleware.IdentityFrom(c, identityKey)
	if !ok {
		span.RecordError(srverr.ErrTypeAssertMismatch)
		span.SetStatus(codes.Error, fmt.Sprintf("identity: %s", srverr.ErrTypeAssertMismatch))
		return response.InternalServerError
	}

	var rdata types.CompetitionCreate
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

	competition, err := h.registry.Create(ctx, rdata)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to create competition")
		return errorResponse(err)
	}

	span.SetAttributes(attribute.Int64("competition.id", competition.ID))
	audit.LogCompetitionCreated(
		audit.Context{CompetitionID: int64Ptr(competition.ID), ActorID: int64Ptr(caller.ID)},
		competition.Title,
		competition.Status,
	)

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "created competition")
	return c.JSON(http.StatusCreated, competition.Response())
}

// UpdateCompetition applies a partial update
//
//	@Summary		Update competition
//	@Description	only fields present in the body change, null clears startAt, endAt, maxParticipants and posterImage
//	@Tags			competitions
//	@Accept			json
//	@Produce		json
//
//	@Security		BearerAuth
//
//	@Param			competition_id	path		int						true	"Competition ID"
//	@Param			payload			body		types.CompetitionPatch	true	"Fields to change"
//
//	@Success		200				{object}	types.CompetitionResponse
//	@Failure		400				{object}	types.Error
//	@Failure		401				{object}	types.Error
//	@Failure		403				{object}	types.Error
//	@Failure		404				{object}	types.Error
//	@Failure		500				{object}	types.Error
//
//	@Router			/competitions/{competition_id}/ [put]
func (h *Handler) UpdateCompetition(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "UpdateCompetition")
	defer span.End()

	caller, ok := servermiddleware.IdentityFrom(c, identityKey)
	if !ok {
		span.RecordError(srverr.ErrTypeAssertMismatch)
		span.SetStatus(codes.Error, fmt.Sprintf("identity: %s", srverr.ErrTypeAssertMismatch))
		return response.InternalServerError
	}

	type requestData struct {
		CompetitionID int64 `param:"competition_id" json:"-" validate:"required,gte=1"`
		types.CompetitionPatch
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

	span.SetAttributes(attribute.Int64("competition.id", rdata.CompetitionID))

	competition, changed, err := h.registry.Update(ctx, rdata.CompetitionID, rdata.CompetitionPatch)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to update competition")
		return errorResponse(err)
	}

	audit.LogCompetitionUpdated(
		audit.Context{CompetitionID: int64Ptr(competition.ID), ActorID: int64Ptr(caller.ID)},
		changed,
		competition.Status,
	)

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "updated competition")
	return c.JSON(http.StatusOK, competition.Response())
}

// DeleteCompetition deletes a competition with its registrations and scores
//
//	@Summary		Delete competition
//	@Tags			competitions
//
//	@Security		BearerAuth
//
//	@Param			competition_id	path	int	true	"Competition ID"
//
//	@Success		204
//	@Failure		400	{object}	types.Error
//	@Failure		401	{object}	types.Error
//	@Failure		403	{object}	types.Error
//	@Failure		404	{object}	types.Error
//	@Failure		500	{object}	types.Error
//
//	@Router			/competitions/{competition_id}/ [delete]
func (h *Handler) DeleteCompetition(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "DeleteCompetition")
	defer span.End()

	caller, ok := servermiddleware.IdentityFrom(c, identityKey)
	if !ok {
		span.RecordError(srverr.ErrTypeAssertMismatch)
		span.SetStatus(codes.Error, fmt.Sprintf("identity: %s", srverr.ErrTypeAssertMismatch))
		return response.InternalServerError
	}

	var rdata competitionParam
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

	span.SetAttributes(attribute.Int64("competition.id", rdata.CompetitionID))

	if err := h.registry.Delete(ctx, rdata.CompetitionID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to delete competition")
		return errorResponse(err)
	}

	audit.LogCompetitionDeleted(audit.Context{
		CompetitionID: int64Ptr(rdata.CompetitionID),
		ActorID:       int64Ptr(caller.ID),
	})

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "deleted competition")
	return c.NoContent(http.StatusNoContent)
}
