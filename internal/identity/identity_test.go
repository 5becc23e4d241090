package identity

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestIssueVerify(t *testing.T) {
	s := NewService(secret, "contest-api", time.Hour)

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := s.Issue(Identity{ID: 42, Role: RoleAdmin, Name: "Juri", Email: "juri@example.com"})
		require.NoError(t, err)

		id, err := s.Verify(token)
		require.NoError(t, err)

		assert.Equal(t, int64(42), id.ID)
		assert.Equal(t, RoleAdmin, id.Role)
		assert.Equal(t, "Juri", id.Name)
		assert.True(t, id.IsAdmin())
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := s.IssueAt(Identity{ID: 1, Role: RoleParticipant}, time.Now().Add(-2*time.Hour))
		require.NoError(t, err)

		_, err = s.Verify(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewService("ffffffffffffffffffffffffffffffff", "contest-api", time.Hour)
		token, err := other.Issue(Identity{ID: 1, Role: RoleParticipant})
		require.NoError(t, err)

		_, err = s.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidSignature)
	})

	t.Run("WrongIssuer", func(t *testing.T) {
		other := NewService(secret, "someone-else", time.Hour)
		token, err := other.Issue(Identity{ID: 1, Role: RoleParticipant})
		require.NoError(t, err)

		_, err = s.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := s.Verify("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("NonNumericSubject", func(t *testing.T) {
		claims := &Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "alice",
				Issuer:    "contest-api",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			Role: RoleParticipant,
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = s.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidSubject)
	})

	t.Run("UnknownRole", func(t *testing.T) {
		_, err := s.Issue(Identity{ID: 1, Role: "judge"})
		assert.ErrorIs(t, err, ErrInvalidRole)
	})
}
