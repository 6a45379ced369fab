// Package supabase implements the backend gateway against a Supabase
// project: token queries through PostgREST RPC and dispatch through the
// send-test-notification edge function.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"pushcheck/internal/domain/entity"
	"pushcheck/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	allTokensPath  = "/rest/v1/rpc/get_all_active_fcm_tokens"
	userTokensPath = "/rest/v1/rpc/get_user_fcm_tokens"
	dispatchPath   = "/functions/v1/send-test-notification"
)

type client struct {
	baseURL    string
	anonKey    string
	requestID  string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a backend gateway for the given Supabase project. Every call
// carries the anon key as both apikey and bearer token, plus a stable
// X-Request-Id so one invocation's calls can be correlated in backend logs.
func New(baseURL, anonKey string, timeout time.Duration, logger *slog.Logger) service.BackendGateway {
	return &client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		anonKey:   anonKey,
		requestID: uuid.New().String(),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *client) ListActiveTokens(ctx context.Context) ([]entity.DeviceToken, error) {
	return c.queryTokens(ctx, allTokensPath, nil)
}

func (c *client) ListUserTokens(ctx context.Context, userID string) ([]entity.DeviceToken, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("user ID must not be empty")
	}

	return c.queryTokens(ctx, userTokensPath, map[string]string{"p_user_id": userID})
}

func (c *client) queryTokens(ctx context.Context, path string, body any) ([]entity.DeviceToken, error) {
	status, respBody, err := c.post(ctx, path, body)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, &service.BackendError{StatusCode: status, Body: string(respBody)}
	}

	var tokens []entity.DeviceToken
	if err := json.Unmarshal(respBody, &tokens); err != nil {
		return nil, errors.Wrap(err, "decode token query response")
	}

	return tokens, nil
}

func (c *client) SendNotification(ctx context.Context, req *entity.NotificationRequest) (*entity.DispatchResult, error) {
	status, respBody, err := c.post(ctx, dispatchPath, req)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, &service.BackendError{StatusCode: status, Body: string(respBody)}
	}

	var result entity.DispatchResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, errors.Wrap(err, "decode dispatch response")
	}

	// A dispatch success must at least echo a message and a summary block.
	if result.Message == "" {
		return nil, &service.ShapeError{Missing: "message"}
	}
	if result.Summary == nil {
		return nil, &service.ShapeError{Missing: "summary"}
	}

	return &result, nil
}

func (c *client) ProbeDispatch(ctx context.Context) (int, string, error) {
	// Deliberately malformed: no target, no payload. A live edge function
	// rejects this with a missing-field validation error.
	status, body, err := c.post(ctx, dispatchPath, map[string]string{"test": "health_check"})
	if err != nil {
		return 0, "", err
	}

	return status, string(body), nil
}

func (c *client) post(ctx context.Context, path string, payload any) (int, []byte, error) {
	url := c.baseURL + path

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, errors.WithStack(err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reqBody)
	if err != nil {
		return 0, nil, errors.WithStack(err)
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Authorization", "Bearer "+c.anonKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", c.requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "request to %s failed", path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errors.Wrap(err, "read response body")
	}

	c.logger.Debug("backend call completed",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	return resp.StatusCode, respBody, nil
}
