package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crewlink/infras/otel/mocks"
	"crewlink/infras/session"
	"crewlink/internal/apitest"
	"crewlink/shared/constant"
	"crewlink/shared/failure"
)

func signedToken(t *testing.T, claims session.Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func TestStore_SaveAndToken(t *testing.T) {
	store := session.New(apitest.StateDB(t), mocks.NewOtel())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "first-token"))

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first-token", token)

	// Saving again replaces the single session row.
	require.NoError(t, store.Save(ctx, "second-token"))

	token, err = store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second-token", token)
}

func TestStore_TokenWithoutSession(t *testing.T) {
	store := session.New(apitest.StateDB(t), mocks.NewOtel())

	_, err := store.Token(context.Background())
	assert.True(t, errors.Is(err, failure.ErrNoSession))
}

func TestStore_SaveEmptyToken(t *testing.T) {
	store := session.New(apitest.StateDB(t), mocks.NewOtel())

	err := store.Save(context.Background(), "")
	assert.Error(t, err)
}

func TestStore_Claims(t *testing.T) {
	store := session.New(apitest.StateDB(t), mocks.NewOtel())
	ctx := context.Background()

	token := signedToken(t, session.Claims{
		UserID: "user-1",
		Email:  "user@example.com",
		Role:   constant.RoleUser,
	})

	require.NoError(t, store.Save(ctx, token))

	claims, err := store.Claims(ctx)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, constant.RoleUser, claims.Role)
}

func TestStore_ClaimsWithOpaqueToken(t *testing.T) {
	store := session.New(apitest.StateDB(t), mocks.NewOtel())
	ctx := context.Background()

	// An opaque token is stored fine but yields no claims.
	require.NoError(t, store.Save(ctx, "not-a-jwt"))

	_, err := store.Claims(ctx)
	assert.Error(t, err)

	token, err := store.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "not-a-jwt", token)
}

func TestStore_Clear(t *testing.T) {
	store := session.New(apitest.StateDB(t), mocks.NewOtel())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "some-token"))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Token(ctx)
	assert.True(t, errors.Is(err, failure.ErrNoSession))

	// Clearing an already-empty store is not an error.
	assert.NoError(t, store.Clear(ctx))
}
