package service

import (
	"context"
	"fmt"

	"pushcheck/internal/domain/entity"
)

// BackendGateway defines the two backend surfaces the harness exercises:
// the token query interface and the dispatch-trigger interface.
type BackendGateway interface {
	// ListActiveTokens returns every currently active device token record.
	ListActiveTokens(ctx context.Context) ([]entity.DeviceToken, error)

	// ListUserTokens returns the token records registered for one user.
	ListUserTokens(ctx context.Context, userID string) ([]entity.DeviceToken, error)

	// SendNotification submits a notification request to the dispatch
	// endpoint and returns the parsed dispatch result.
	SendNotification(ctx context.Context, req *entity.NotificationRequest) (*entity.DispatchResult, error)

	// ProbeDispatch sends an intentionally minimal request to the dispatch
	// endpoint and returns the raw HTTP status code and response body. The
	// caller decides which statuses count as healthy.
	ProbeDispatch(ctx context.Context) (int, string, error)
}

// BackendError is a non-success backend response: the HTTP status and the
// raw body, reported to the operator verbatim.
type BackendError struct {
	StatusCode int
	Body       string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend returned status %d: %s", e.StatusCode, e.Body)
}

// ShapeError marks a success response whose body is missing expected
// fields. It fails the operation without crashing the harness.
type ShapeError struct {
	Missing string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("response missing expected field: %s", e.Missing)
}
