package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"crewlink/infras/otel"
	"crewlink/shared/constant"
	"crewlink/shared/failure"
	"crewlink/shared/timezone"
)

// Claims is the client-visible subset of the bearer token payload. The token
// is never verified here; signature checks belong to the server.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Store persists the authenticated session between runs.
type Store interface {
	Save(ctx context.Context, token string) error
	Token(ctx context.Context) (string, error)
	Claims(ctx context.Context) (*Claims, error)
	Clear(ctx context.Context) error
}

type storeImpl struct {
	db   *sqlx.DB
	otel otel.Otel
}

func New(db *sqlx.DB, ot otel.Otel) Store {
	return &storeImpl{
		db:   db,
		otel: ot,
	}
}

// Save implements Store.
func (s *storeImpl) Save(ctx context.Context, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	if token == "" {
		return failure.BadRequestFromString("token must not be empty") //nolint:wrapcheck
	}

	if claims, parseErr := parse(token); parseErr != nil {
		log.Warn().Err(parseErr).Msg("Token is not a parsable JWT, storing it as-is")
	} else if expired(claims) {
		log.Warn().Msg("Stored token is already expired, the server will reject it")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, token, saved_at) VALUES (1, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET token = excluded.token, saved_at = excluded.saved_at`,
		token, timezone.Now(),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to persist session")

		return fmt.Errorf("failed to persist session: %w", err)
	}

	return nil
}

// Token implements Store.
func (s *storeImpl) Token(ctx context.Context) (token string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Token")
	defer scope.End()

	err = s.db.GetContext(ctx, &token, `SELECT token FROM sessions WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return "", failure.ErrNoSession //nolint:wrapcheck
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read session")

		return "", fmt.Errorf("failed to read session: %w", err)
	}

	return token, nil
}

// Claims implements Store.
func (s *storeImpl) Claims(ctx context.Context) (*Claims, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return nil, err
	}

	claims, err := parse(token)
	if err != nil {
		return nil, failure.BadRequest(fmt.Errorf("stored token is not a JWT: %w", err)) //nolint:wrapcheck
	}

	return claims, nil
}

// Clear implements Store. Removing the row is how a 401 response logs the
// client out.
func (s *storeImpl) Clear(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Clear")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = 1`)
	if err != nil {
		log.Error().Err(err).Msg("failed to clear session")

		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

func parse(token string) (*Claims, error) {
	claims := &Claims{}

	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	return claims, nil
}

func expired(claims *Claims) bool {
	if claims.ExpiresAt == nil {
		return false
	}

	return claims.ExpiresAt.Before(timezone.Now())
}
