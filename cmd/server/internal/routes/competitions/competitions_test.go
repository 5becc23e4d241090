package competitions

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquaria-id/contest-api/internal/identity"
)

func TestRedisLimiter(t *testing.T) {
	// the store is never consulted in these cases
	cfg := NewRedisLimiter(nil, "register", 5, false)

	t.Run("MissingIdentityIsUnauthorized", func(t *testing.T) {
		e := echo.New()
		e.POST("/register/", func(c echo.Context) error {
			return c.NoContent(http.StatusCreated)
		}, middleware.RateLimiterWithConfig(cfg))

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/register/", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"message":"unauthorized"}`, rec.Body.String())
	})

	t.Run("IdentifierIsIdentityID", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())
		c.Set(identityKey, &identity.Identity{ID: 4242, Role: identity.RoleParticipant})

		id, err := cfg.IdentifierExtractor(c)
		require.NoError(t, err)
		assert.Equal(t, "4242", id)
	})

	t.Run("DenyIsTooManyRequests", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), httptest.NewRecorder())

		err := cfg.DenyHandler(c, "4242", nil)

		var he *echo.HTTPError
		require.True(t, errors.As(err, &he))
		assert.Equal(t, http.StatusTooManyRequests, he.Code)
	})
}
