package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *NotificationRequest {
	return &NotificationRequest{
		Title: "🧪 Test Notification",
		Body:  "test body",
		Type:  "test",
		Data:  map[string]string{"test_id": "test_1700000000"},
	}
}

func TestNotificationRequest_Validate_UserTarget(t *testing.T) {
	req := validRequest()
	req.UserID = "user-123"

	require.NoError(t, req.Validate())
}

func TestNotificationRequest_Validate_AllUsersTarget(t *testing.T) {
	req := validRequest()
	req.TestAllUsers = true

	require.NoError(t, req.Validate())
}

func TestNotificationRequest_Validate_NoTarget(t *testing.T) {
	req := validRequest()

	err := req.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoTarget)
}

func TestNotificationRequest_Validate_BothTargets(t *testing.T) {
	req := validRequest()
	req.UserID = "user-123"
	req.TestAllUsers = true

	err := req.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmbiguousTarget)
}

func TestNotificationRequest_Validate_MissingPayloadFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NotificationRequest)
	}{
		{name: "missing title", mutate: func(r *NotificationRequest) { r.Title = "" }},
		{name: "missing body", mutate: func(r *NotificationRequest) { r.Body = "" }},
		{name: "missing type", mutate: func(r *NotificationRequest) { r.Type = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.TestAllUsers = true
			tt.mutate(req)

			assert.Error(t, req.Validate())
		})
	}
}
