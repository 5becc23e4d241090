// Package response holds the canned error bodies returned by the contest routes.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aquaria-id/contest-api/internal/types"
)

var (
	InternalServerError = echo.NewHTTPError(
		http.StatusInternalServerError,
		types.StringError("something went wrong"),
	)
	// Unknown competition, or a registration that does not belong to the competition in the path
	NotFoundError = echo.NewHTTPError(http.StatusNotFound, types.StringError("not found"))
	// Missing, malformed or expired bearer token
	UnauthorizedError = echo.NewHTTPError(http.StatusUnauthorized, types.StringError("unauthorized"))
	// Authenticated, but the role may not perform the operation
	ForbiddenError = echo.NewHTTPError(http.StatusForbidden, types.StringError("forbidden"))
	// Register or score submissions over the per-minute limit
	TooManyRequestsError = echo.NewHTTPError(
		http.StatusTooManyRequests,
		types.StringError("too many requests"),
	)
)
