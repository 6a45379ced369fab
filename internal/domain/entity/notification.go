package entity

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	// ErrNoTarget is returned when a notification request names neither a
	// user nor the all-users broadcast flag.
	ErrNoTarget = errors.New("either a user ID or the all-users flag must be specified")

	// ErrAmbiguousTarget is returned when a notification request names both
	// a user and the all-users broadcast flag.
	ErrAmbiguousTarget = errors.New("a user ID and the all-users flag are mutually exclusive")
)

var validate = validator.New()

// NotificationRequest is the payload submitted to the dispatch edge
// function. Exactly one of UserID or TestAllUsers selects the target.
type NotificationRequest struct {
	Title        string            `json:"title" validate:"required"`
	Body         string            `json:"body" validate:"required"`
	Type         string            `json:"type" validate:"required"`
	Data         map[string]string `json:"data,omitempty"`
	UserID       string            `json:"user_id,omitempty"`
	TestAllUsers bool              `json:"test_all_users,omitempty"`
}

// Validate checks the payload fields and the target selector. It must pass
// before any network call is made.
func (r *NotificationRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return errors.Wrap(err, "invalid notification payload")
	}

	if r.UserID == "" && !r.TestAllUsers {
		return ErrNoTarget
	}
	if r.UserID != "" && r.TestAllUsers {
		return ErrAmbiguousTarget
	}

	return nil
}

// DeviceResult is one per-device delivery outcome echoed by the dispatch
// endpoint. Tokens here are test-scoped and reported in full.
type DeviceResult struct {
	DeviceID string `json:"device_id"`
	Platform string `json:"platform"`
	Token    string `json:"token"`
}

// DispatchSummary is the aggregate block of a dispatch response.
type DispatchSummary struct {
	TotalTokens      int    `json:"total_tokens"`
	NotificationType string `json:"notification_type"`
	Title            string `json:"title"`
	Body             string `json:"body"`
}

// DispatchResult is the dispatch endpoint's response to an accepted
// notification request. Used only for reporting; never stored.
type DispatchResult struct {
	Message string           `json:"message"`
	Results []DeviceResult   `json:"results"`
	Summary *DispatchSummary `json:"summary"`
}
