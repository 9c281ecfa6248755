package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/wevote/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/wevote/internal/core/domain"
)

func TestAuthService(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	users := memory.NewUserRepository(memory.NewStore())
	svc := NewAuthService(users, "test-secret", time.Hour, WithClock(clock), WithLogger(quietLogger()))

	t.Run("session round trip", func(t *testing.T) {
		token, err := svc.StartSession(ctx, " Ann@Example.com ", "Ann")
		require.NoError(t, err)

		userID, err := svc.ParseAccessToken(token)
		require.NoError(t, err)

		user, err := users.GetByID(ctx, userID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "ann@example.com", user.Email)
		assert.Equal(t, "Ann", user.Name)
	})

	t.Run("same email maps to same user", func(t *testing.T) {
		first, err := svc.StartSession(ctx, "bob@example.com", "Bob")
		require.NoError(t, err)
		second, err := svc.StartSession(ctx, "BOB@example.com", "")
		require.NoError(t, err)

		a, err := svc.ParseAccessToken(first)
		require.NoError(t, err)
		b, err := svc.ParseAccessToken(second)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := svc.StartSession(ctx, "not-an-email", "x")
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := svc.StartSession(ctx, "carol@example.com", "Carol")
		require.NoError(t, err)

		clock.Set(testNow.Add(2 * time.Hour))
		defer clock.Set(testNow)
		_, err = svc.ParseAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewAuthService(users, "other-secret", time.Hour, WithClock(clock), WithLogger(quietLogger()))
		token, err := other.StartSession(ctx, "dave@example.com", "Dave")
		require.NoError(t, err)

		_, err = svc.ParseAccessToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("non uuid subject", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "someone",
			"exp": testNow.Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		id, err := svc.ParseAccessToken(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Equal(t, uuid.Nil, id)
	})
}
