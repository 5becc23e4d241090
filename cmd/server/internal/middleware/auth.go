package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/aquaria-id/contest-api/cmd/server/internal/models"
	"github.com/aquaria-id/contest-api/cmd/server/internal/response"
	"github.com/aquaria-id/contest-api/internal/identity"
)

// Verifies a bearer token and records the caller in the account directory
func (h *Handler) BearerValidator(identityKey string) echomiddleware.KeyAuthValidator {
	return func(token string, c echo.Context) (bool, error) {
		ctx, span := tracer.Start(c.Request().Context(), "BearerValidator")
		defer span.End()

		span.AddEvent("verifying token")
		caller, err := h.Identity.Verify(token)
		if err != nil {
			span.RecordError(err)
			// ok because a bad token is the client's problem
			span.SetStatus(codes.Ok, "rejected token")
			return false, nil
		}

		span.SetAttributes(
			attribute.Int64("identity.id", caller.ID),
			attribute.String("identity.role", string(caller.Role)),
		)

		span.AddEvent("recording account")
		err = models.UpsertAccount(ctx, h.DB, &models.Account{
			ID:    caller.ID,
			Name:  caller.Name,
			Email: caller.Email,
			Role:  caller.Role,
		})
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to record account")
			return false, response.InternalServerError
		}

		c.Set(identityKey, caller)

		span.RecordError(nil)
		span.SetStatus(codes.Ok, "authenticated")
		return true, nil
	}
}

// Requires a valid `Authorization: Bearer <token>` header, placing the [identity.Identity] at `identityKey`
func (h *Handler) BearerAuth(identityKey string) echo.MiddlewareFunc {
	return echomiddleware.KeyAuthWithConfig(echomiddleware.KeyAuthConfig{
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator:  h.BearerValidator(identityKey),
		ErrorHandler: func(err error, _ echo.Context) error {
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				return httpErr
			}

			return response.UnauthorizedError
		},
	})
}

// Identity placed in the context by [Handler.BearerAuth]
func IdentityFrom(c echo.Context, identityKey string) (*identity.Identity, bool) {
	caller, ok := c.Get(identityKey).(*identity.Identity)
	return caller, ok
}

