package middleware

import (
	"errors"
	"reflect"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/gorm"

	"github.com/aquaria-id/contest-api/cmd/server/internal/models"
	"github.com/aquaria-id/contest-api/cmd/server/internal/response"
)

// Parses a positive integer id out of a path parameter
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

// Retrieves object from the db based on the id in the `paramName`
func PopulateFromIDParam[T models.ContestModel](
	h *Handler,
	paramName string,
	contextName string,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), "PopulateFromIDParam")
			defer span.End()

			span.SetAttributes(
				attribute.String("paramName", paramName),
				attribute.String("contextName", contextName),
				attribute.String("type", reflect.TypeOf((*T)(nil)).Elem().String()),
			)

			db := h.DB.WithContext(ctx)

			rawID := c.Param(paramName)

			span.SetAttributes(
				attribute.String("id.raw", rawID),
			)

			span.AddEvent("parsing rawID into an id")
			id, ok := ParseID(rawID)
			if !ok {
				span.RecordError(nil)
				span.SetStatus(codes.Ok, "rawID was not a positive integer")
				return response.NotFoundError
			}

			span.SetAttributes(
				attribute.Int64("id.parsed", id),
			)

			span.AddEvent("fetching object by id")
			data, err := models.ByID[T](ctx, db, id)
			if err != nil {
				span.RecordError(err)

				if errors.Is(err, gorm.ErrRecordNotFound) {
					span.SetStatus(codes.Ok, "object not found")
					return response.NotFoundError
				}

				span.SetStatus(codes.Error, "failed to fetch object from db by id")
				return response.InternalServerError
			}

			c.Set(contextName, data)

			span.RecordError(nil)
			span.SetStatus(codes.Ok, "fetched object by id")
			return next(c)
		}
	}
}
