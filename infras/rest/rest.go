package rest

//go:generate go run go.uber.org/mock/mockgen -source=./rest.go -destination=./mocks/rest_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"crewlink/config"
	"crewlink/infras/otel"
	"crewlink/infras/session"
	"crewlink/shared/constant"
	"crewlink/shared/failure"
)

// Client issues authenticated JSON calls against the marketplace API. Every
// request shares one global timeout; there are no per-operation overrides and
// no automatic retries.
type Client interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Put(ctx context.Context, path string, body any, out any) error
}

type clientImpl struct {
	cfg     *config.Config
	session session.Store
	otel    otel.Otel
	http    *http.Client
}

func New(cfg *config.Config, sessionStore session.Store, ot otel.Otel) Client {
	return &clientImpl{
		cfg:     cfg,
		session: sessionStore,
		otel:    ot,
		http: &http.Client{
			Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		},
	}
}

// errorEnvelope covers both error body shapes the backend produces.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *clientImpl) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *clientImpl) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *clientImpl) Put(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *clientImpl) do(ctx context.Context, method, path string, query url.Values, body, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelRestScopeName, constant.OtelRestScopeName+"."+method)
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		constant.OtelHTTPMethodAttribute: method,
		constant.OtelHTTPPathAttribute:   path,
	})

	endpoint := strings.TrimSuffix(c.cfg.API.BaseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		payload, marshalErr := json.Marshal(body)
		if marshalErr != nil {
			return fmt.Errorf("failed to marshal request body: %w", marshalErr)
		}

		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderRequestID, uuid.NewString())
	req.Header.Set(constant.RequestHeaderUserAgent, c.cfg.API.UserAgent)

	if body != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	// Unauthenticated calls are allowed through; the server decides which
	// endpoints require a session.
	token, err := c.session.Token(ctx)
	if err != nil && !errors.Is(err, failure.ErrNoSession) {
		return err
	}

	if token != "" {
		req.Header.Set(constant.RequestHeaderAuthorization, constant.AuthSchemeBearer+" "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")

		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	scope.SetAttribute(constant.OtelHTTPStatusAttribute, resp.StatusCode)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if clearErr := c.session.Clear(ctx); clearErr != nil {
			log.Error().Err(clearErr).Msg("failed to clear session after unauthorized response")
		}

		return failure.Unauthorized(serverMessage(respBody, "session expired, run login again")) //nolint:wrapcheck
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return failure.FromStatus(resp.StatusCode, serverMessage(respBody, "")) //nolint:wrapcheck
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err = json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}

	return nil
}

// serverMessage extracts the server-provided error text, falling back to the
// given generic string.
func serverMessage(body []byte, fallback string) string {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}

		if envelope.Message != "" {
			return envelope.Message
		}
	}

	return fallback
}
