package competitions

import (
	"errors"
	"net/http"
	"slices"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"github.com/aquaria-id/contest-api/cmd/server/internal/admission"
	srverr "github.com/aquaria-id/contest-api/cmd/server/internal/error"
	servermiddleware "github.com/aquaria-id/contest-api/cmd/server/internal/middleware"
	"github.com/aquaria-id/contest-api/cmd/server/internal/models"
	"github.com/aquaria-id/contest-api/cmd/server/internal/ranking"
	"github.com/aquaria-id/contest-api/cmd/server/internal/ratelimit"
	"github.com/aquaria-id/contest-api/cmd/server/internal/registry"
	"github.com/aquaria-id/contest-api/cmd/server/internal/reporting"
	"github.com/aquaria-id/contest-api/cmd/server/internal/response"
	"github.com/aquaria-id/contest-api/cmd/server/internal/scoring"
	"github.com/aquaria-id/contest-api/cmd/server/internal/taskrunner"
	"github.com/aquaria-id/contest-api/internal/config"
	"github.com/aquaria-id/contest-api/internal/identity"
	"github.com/aquaria-id/contest-api/internal/logger"
	"github.com/aquaria-id/contest-api/internal/types"
	"github.com/aquaria-id/contest-api/internal/upload"
)

const name = "github.com/aquaria-id/contest-api/cmd/server/internal/routes/competitions"

var tracer = otel.Tracer(name)

const (
	identityKey    = "identity"
	competitionKey = "competition"
	timeKey        = "time"
)

type Handler struct {
	registry   *registry.Client
	admission  *admission.Client
	scoring    *scoring.Client
	ranking    *ranking.Client
	reporting  *reporting.Client
	taskRunner *taskrunner.Client
	// nil disables score sheet archiving
	archiver upload.Uploader
	// nil disables rate limiting
	rdb    redis.Cmdable
	limits *config.RateLimitConfig
}

func Create(
	db *gorm.DB,
	taskRunner *taskrunner.Client,
	archiver upload.Uploader,
	rdb redis.Cmdable,
	limits *config.RateLimitConfig,
) *Handler {
	return &Handler{
		registry:   registry.Create(db),
		admission:  admission.Create(db),
		scoring:    scoring.Create(db),
		ranking:    ranking.Create(db),
		reporting:  reporting.Create(db),
		taskRunner: taskRunner,
		archiver:   archiver,
		rdb:        rdb,
		limits:     limits,
	}
}

// Fixed window limiter keyed by the authenticated identity
func NewRedisLimiter(rdb redis.Cmdable, limiterKey string, perMinute int64, failOpen bool) middleware.RateLimiterConfig {
	store := ratelimit.NewRedisLimitStore(ratelimit.RedisLimiterConfig{
		RedisClient: rdb,
		LimiterKey:  limiterKey,
		PerMinute:   perMinute,
		FailOpen:    failOpen,
	})

	return middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			caller, ok := servermiddleware.IdentityFrom(c, identityKey)
			if !ok {
				return "", srverr.ErrTypeAssertMismatch
			}
			return strconv.FormatInt(caller.ID, 10), nil
		},
		// only reached when no identity was established
		ErrorHandler: func(_ echo.Context, _ error) error {
			return response.UnauthorizedError
		},
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			return response.TooManyRequestsError
		},
	}
}

func (h *Handler) limiter(limiterKey string, perMinute int64) []echo.MiddlewareFunc {
	if h.rdb == nil || h.limits == nil || perMinute <= 0 {
		return nil
	}

	return []echo.MiddlewareFunc{
		middleware.RateLimiterWithConfig(NewRedisLimiter(h.rdb, limiterKey, perMinute, h.limits.FailOpen)),
	}
}

func (h *Handler) AddRoutes(e *echo.Echo, middlewareHandler *servermiddleware.Handler) {
	l := logger.Logger

	var globalPerMinute, submitPerMinute int64
	if h.limits != nil {
		globalPerMinute = h.limits.GlobalPerMinute
		submitPerMinute = h.limits.SubmitPerMinute
	}
	if h.rdb == nil || globalPerMinute <= 0 {
		l.Warn("not configured to have a global rate limit")
	}

	authenticated := slices.Concat(
		[]echo.MiddlewareFunc{middlewareHandler.BearerAuth(identityKey)},
		h.limiter("global", globalPerMinute),
	)
	participant := slices.Concat(
		authenticated,
		[]echo.MiddlewareFunc{
			servermiddleware.RequireRole(identityKey, identity.RoleParticipant, identity.RoleAdmin),
		},
	)
	admin := slices.Concat(
		authenticated,
		[]echo.MiddlewareFunc{servermiddleware.RequireRole(identityKey, identity.RoleAdmin)},
	)
	withCompetition := slices.Concat(
		admin,
		[]echo.MiddlewareFunc{
			servermiddleware.PopulateFromIDParam[models.Competition](
				middlewareHandler,
				"competition_id",
				competitionKey,
			),
		},
	)

	competitions := e.Group("/competitions")

	competitions.GET("/", h.List)
	competitions.GET("/open/", h.ListOpen)
	competitions.GET("/me/", h.MyRegistrations, participant...)
	competitions.GET("/:competition_id/", h.Detail)

	competitions.POST("/", h.CreateCompetition, admin...)
	competitions.PUT("/:competition_id/", h.UpdateCompetition, admin...)
	competitions.DELETE("/:competition_id/", h.DeleteCompetition, admin...)

	competitions.POST(
		"/:competition_id/register/",
		h.Register,
		slices.Concat(participant, h.limiter("register", submitPerMinute))...,
	)

	registrations := competitions.Group("/:competition_id/registrations")
	registrations.GET("/", h.ListRegistrations, withCompetition...)
	registrations.PUT("/:registration_id/status/", h.SetStatus, withCompetition...)
	registrations.PUT("/:registration_id/rank/", h.SetRank, withCompetition...)
	registrations.GET("/:registration_id/scores/", h.ScoreHistory, withCompetition...)
	registrations.POST(
		"/:registration_id/scores/",
		h.SubmitScore,
		slices.Concat(
			withCompetition,
			h.limiter("score", submitPerMinute),
			[]echo.MiddlewareFunc{servermiddleware.Time(timeKey)},
		)...,
	)
}

// Translates service errors into API responses. Anything unrecognised is a 500.
func errorResponse(err error) error {
	var validationErr *srverr.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return echo.NewHTTPError(
			http.StatusBadRequest,
			types.FieldsError("missing required fields", validationErr.FieldMap()),
		)
	case errors.Is(err, srverr.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, types.StringError(err.Error()))
	case errors.Is(err, srverr.ErrInvalidState):
		return echo.NewHTTPError(http.StatusBadRequest, types.StringError(srverr.ErrInvalidState.Error()))
	case errors.Is(err, srverr.ErrCapacityExceeded):
		return echo.NewHTTPError(http.StatusBadRequest, types.StringError(srverr.ErrCapacityExceeded.Error()))
	case errors.Is(err, srverr.ErrNotFound):
		return response.NotFoundError
	case errors.Is(err, srverr.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, types.StringError(srverr.ErrConflict.Error()))
	default:
		return response.InternalServerError
	}
}

func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, types.StringError(message))
}

func int64Ptr(v int64) *int64 {
	return &v
}
