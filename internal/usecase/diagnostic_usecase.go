package usecase

import (
	"context"
)

// NotificationDefaults is the fixed payload used by the send-test check.
type NotificationDefaults struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Type  string `json:"type"`
}

// DiagnosticUsecase defines the interface for the verification checks run
// against the push notification backend. Each check writes a
// human-readable report and returns whether it passed; transport faults,
// backend rejections and malformed responses are caught and reported,
// never propagated.
type DiagnosticUsecase interface {
	// CheckDispatchHealth verifies the dispatch edge function is deployed
	// and validating input.
	CheckDispatchHealth(ctx context.Context) bool

	// CheckTokenRegistration verifies device tokens have been registered,
	// listing a sample of the active records.
	CheckTokenRegistration(ctx context.Context) bool

	// SendTestNotification sends a test notification to one user or to all
	// users. Exactly one target must be given.
	SendTestNotification(ctx context.Context, userID string, allUsers bool) bool

	// GetUserTokens lists the token records registered for one user.
	GetUserTokens(ctx context.Context, userID string) bool
}
