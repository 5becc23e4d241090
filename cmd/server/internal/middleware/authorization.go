package middleware

import (
	"context"
	"log/slog"
	"slices"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/aquaria-id/contest-api/cmd/server/internal/response"
	"github.com/aquaria-id/contest-api/internal/identity"
	"github.com/aquaria-id/contest-api/internal/logger"
)

// Checks that `has` is one of the `allowed` roles
func hasRole(
	ctx context.Context,
	allowed []identity.Role,
	has identity.Role,
	l *slog.Logger,
) bool {
	ctx, span := tracer.Start(ctx, "hasRole")
	defer span.End()

	l.DebugContext(ctx, "comparing roles", "allowed", allowed, "has", has)

	if !has.Valid() {
		l.WarnContext(ctx, "unknown role on identity")
		span.RecordError(nil)
		span.SetStatus(codes.Ok, "unknown role")
		return false
	}

	if !slices.Contains(allowed, has) {
		l.DebugContext(ctx, "missing role")
		span.RecordError(nil)
		span.SetStatus(codes.Ok, "missing role")
		return false
	}

	l.DebugContext(ctx, "granting access")
	span.RecordError(nil)
	span.SetStatus(codes.Ok, "granting access")
	return true
}

// Identity at `identityKey` must hold one of `roles`
func RequireRole(identityKey string, roles ...identity.Role) echo.MiddlewareFunc {
	l := logger.Logger.With("identityKey", identityKey, "roles", roles)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, span := tracer.Start(c.Request().Context(), "RequireRole", trace.WithAttributes(
				attribute.String("identityKey", identityKey),
			))
			defer span.End()

			l.DebugContext(ctx, "getting identity")
			caller, ok := IdentityFrom(c, identityKey)
			if !ok {
				l.WarnContext(ctx, "failed to get identity")
				span.RecordError(nil)
				span.SetStatus(codes.Error, "failed to get identity")
				return response.UnauthorizedError
			}

			if !hasRole(ctx, roles, caller.Role, l) {
				span.RecordError(nil)
				span.SetStatus(codes.Ok, "forbidden")
				return response.ForbiddenError
			}

			span.RecordError(nil)
			span.SetStatus(codes.Ok, "checked role")
			return next(c)
		}
	}
}
