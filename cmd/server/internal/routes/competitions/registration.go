package competitions

import (
	"errors"
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

// denial reasons worth an audit event, everything else is an ordinary failure
func denialReason(err error) (string, bool) {
	var validationErr *srverr.ValidationError
	switch {
	case errors.Is(err, srverr.ErrInvalidState):
		return "competition not open", true
	case errors.Is(err, srverr.ErrCapacityExceeded):
		return "competition full", true
	case errors.As(err, &validationErr):
		return validationErr.Error(), true
	default:
		return "", false
	}
}

// Register enrolls the caller or replaces the answers of their existing registration
//
//	@Summary		Register for a competition
//	@Description	201 when a registration is created, 200 when the answers of an existing one are replaced
//	@Tags			registrations
//	@Accept			json
//	@Produce		json
//
//	@Security		BearerAuth
//
//	@Param			competition_id	path		int								true	"Competition ID"
//	@Param			payload			body		types.RegistrationSubmission	true	"Form answers"
//
//	@Success		200				{object}	types.RegistrationResponse
//	@Success		201				{object}	types.RegistrationResponse
//	@Failure		400				{object}	types.Error
//	@Failure		401				{object}	types.Error
//	@Failure		404				{object}	types.Error
//	@Failure		409				{object}	types.Error
//	@Failure		429				{object}	types.Error
//	@Failure		500				{object}	types.Error
//
//	@Router			/competitions/{competition_id}/register/ [post]
func (h *Handler) Register(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Register")
	defer span.End()

	caller, ok := servermiddleware.IdentityFrom(c, identityKey)
	if !ok {
		span.RecordError(srverr.ErrTypeAssertMismatch)
		span.SetStatus(codes.Error, fmt.Sprintf("identity: %s", srverr.ErrTypeAssertMismatch))
		return response.InternalServerError
	}

	type requestData struct {
		CompetitionID int64 `param:"competition_id" json:"-" validate:"required,gte=1"`
		types.RegistrationSubmission
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
		attribute.Int64("competition.id", rdata.CompetitionID),
		attribute.Int64("participant.id", caller.ID),
	)

	auditContext := audit.Context{
		CompetitionID: int64Ptr(rdata.CompetitionID),
		ActorID:       int64Ptr(caller.ID),
	}

	result, err := h.admission.Register(ctx, rdata.CompetitionID, caller.ID, rdata.Answers)
	if err != nil {
		if reason, denied := denialReason(err); denied {
			audit.LogRegistrationDenied(auditContext, reason)
		}

		span.RecordError(err)
		span.SetStatus(codes.Ok, "registration refused")
		return errorResponse(err)
	}

	audit.LogRegistrationSubmitted(
		auditContext,
		result.Registration.ID,
		result.Registration.Status,
		result.Created,
	)

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}

	span.SetAttributes(
		attribute.Int64("registration.id", result.Registration.ID),
		attribute.Bool("registration.created", result.Created),
	)
	span.RecordError(nil)
	span.SetStatus(codes.Ok, "registered")
	return c.JSON(status, result.Registration.Response())
}

// MyRegistrations lists the caller's registrations across competitions
//
//	@Summary		My registrations
//	@Tags			registrations
//	@Produce		json
//
//	@Security		BearerAuth
//
//	@Success		200	{array}		types.MyRegistrationEntry
//	@Failure		401	{object}	types.Error
//	@Failure		500	{object}	types.Error
//
//	@Router			/competitions/me/ [get]
func (h *Handler) MyRegistrations(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "MyRegistrations")
	defer span.End()

	caller, ok := servermiddleware.IdentityFrom(c, identityKey)
	if !ok {
		span.RecordError(srverr.ErrTypeAssertMismatch)
		span.SetStatus(codes.Error, fmt.Sprintf("identity: %s", srverr.ErrTypeAssertMismatch))
		return response.InternalServerError
	}

	span.SetAttributes(attribute.Int64("participant.id", caller.ID))

	entries, err := h.reporting.MyRegistrations(ctx, caller.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list registrations")
		return errorResponse(err)
	}

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "listed registrations")
	return c.JSON(http.StatusOK, entries)
}

// ListRegistrations lists every registration of a competition
//
//	@Summary		List registrations
//	@Description	with participant name and email and the current score
//	@Tags			registrations
//	@Produce		json
//
//	@Security		BearerAuth
//
//	@Param			competition_id	path		int	true	"Competition ID"
//
//	@Success		200				{array}		types.RegistrationEntry
//	@Failure		401				{object}	types.Error
//	@Failure		403				{object}	types.Error
//	@Failure		404				{object}	types.Error
//	@Failure		500				{object}	types.Error
//
//	@Router			/competitions/{competition_id}/registrations/ [get]
func (h *Handler) ListRegistrations(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "ListRegistrations")
	defer span.End()

	competition, ok := c.Get(competitionKey).(*models.Competition)
	if !ok {
		span.RecordError(srverr.ErrTypeAssertMismatch)
		span.SetStatus(codes.Error, fmt.Sprintf("competition: %s", srverr.ErrTypeAssertMismatch))
		return response.InternalServerError
	}

	span.SetAttributes(attribute.Int64("competition.id", competition.ID))

	entries, err := h.reporting.ListRegistrations(ctx, competition.ID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to list registrations")
		return errorResponse(err)
	}

	span.SetAttributes(attribute.Int("registrations.count", len(entries)))
	span.RecordError(nil)
	span.SetStatus(codes.Ok, "listed registrations")
	return c.JSON(http.StatusOK, entries)
}

// SetStatus moves a registration to another status
//
//	@Summary		Set registration status
//	@Description	any status may follow any other
//	@Tags			registrations
//	@Accept			json
//	@Produce		json
//
//	@Security		BearerAuth
//
//	@Param			competition_id	path		int								true	"Competition ID"
//	@Param			registration_id	path		int								true	"Registration ID"
//	@Param			payload			body		types.RegistrationStatusUpdate	true	"New status"
//
//	@Success		200				{object}	types.RegistrationResponse
//	@Failure		400				{object}	types.Error
//	@Failure		401				{object}	types.Error
//	@Failure		403				{object}	types.Error
//	@Failure		404				{object}	types.Error
//	@Failure		500				{object}	types.Error
//
//	@Router			/competitions/{competition_id}/registrations/{registration_id}/status/ [put]
func (h *Handler) SetStatus(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "SetStatus")
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

	type requestData struct {
		RegistrationID int64 `param:"registration_id" json:"-" validate:"required,gte=1"`
		types.RegistrationStatusUpdate
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

	registration, previous, err := h.ranking.SetStatus(ctx, competition.ID, rdata.RegistrationID, rdata.Status)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to set status")
		return errorResponse(err)
	}

	audit.LogRegistrationStatusChanged(
		audit.Context{CompetitionID: int64Ptr(competition.ID), ActorID: int64Ptr(caller.ID)},
		registration.ID,
		previous,
		registration.Status,
	)

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "set status")
	return c.JSON(http.StatusOK, registration.Response())
}

// SetRank records the administrator assigned ranking and final position
//
//	@Summary		Set registration rank
//	@Description	omitted fields stay as they are, null clears them
//	@Tags			registrations
//	@Accept			json
//	@Produce		json
//
//	@Security		BearerAuth
//
//	@Param			competition_id	path		int					true	"Competition ID"
//	@Param			registration_id	path		int					true	"Registration ID"
//	@Param			payload			body		types.RankUpdate	true	"Ranking"
//
//	@Success		200				{object}	types.RegistrationResponse
//	@Failure		400				{object}	types.Error
//	@Failure		401				{object}	types.Error
//	@Failure		403				{object}	types.Error
//	@Failure		404				{object}	types.Error
//	@Failure		500				{object}	types.Error
//
//	@Router			/competitions/{competition_id}/registrations/{registration_id}/rank/ [put]
func (h *Handler) SetRank(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "SetRank")
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

	type requestData struct {
		RegistrationID int64 `param:"registration_id" json:"-" validate:"required,gte=1"`
		types.RankUpdate
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

	registration, err := h.ranking.SetRank(ctx, competition.ID, rdata.RegistrationID, rdata.RankUpdate)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to set rank")
		return errorResponse(err)
	}

	audit.LogRankAssigned(
		audit.Context{CompetitionID: int64Ptr(competition.ID), ActorID: int64Ptr(caller.ID)},
		registration.ID,
		models.PtrFromNull(registration.Ranking),
		models.PtrFromNull(registration.FinalPosition),
	)

	span.RecordError(nil)
	span.SetStatus(codes.Ok, "set rank")
	return c.JSON(http.StatusOK, registration.Response())
}
