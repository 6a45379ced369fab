package supabase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pushcheck/internal/domain/entity"
	"pushcheck/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) service.BackendGateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	// Trailing slash must be tolerated like the operator would type it.
	return New(server.URL+"/", "anon-key", 5*time.Second, testLogger())
}

func TestClient_ListActiveTokens(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/rpc/get_all_active_fcm_tokens", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"user_id":"user-1","token":"tok-1","device_id":"dev-1","platform":"ios","updated_at":"2026-08-30T10:00:00Z"},
			{"user_id":"user-2","token":"tok-2","device_id":"dev-2","platform":"android","updated_at":"2026-08-30T11:00:00Z"}
		]`))
	})

	tokens, err := client.ListActiveTokens(context.Background())
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "user-1", tokens[0].UserID)
	assert.Equal(t, "android", tokens[1].Platform)
}

func TestClient_ListActiveTokens_EmptyResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	tokens, err := client.ListActiveTokens(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestClient_ListActiveTokens_BackendRejection(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid api key"}`))
	})

	_, err := client.ListActiveTokens(context.Background())
	require.Error(t, err)

	var backendErr *service.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusUnauthorized, backendErr.StatusCode)
	assert.Contains(t, backendErr.Body, "invalid api key")
}

func TestClient_ListActiveTokens_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	})

	_, err := client.ListActiveTokens(context.Background())
	assert.Error(t, err)
}

func TestClient_ListUserTokens(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/rpc/get_user_fcm_tokens", r.URL.Path)

		var params map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, "user-9", params["p_user_id"])

		_, _ = w.Write([]byte(`[
			{"user_id":"user-9","token":"tok-9","device_id":"dev-9","platform":"ios","app_version":"1.4.2","updated_at":"2026-08-29T08:00:00Z"}
		]`))
	})

	tokens, err := client.ListUserTokens(context.Background(), "user-9")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "1.4.2", tokens[0].AppVersion)
}

func TestClient_ListUserTokens_EmptyID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for an empty user ID")
	})

	_, err := client.ListUserTokens(context.Background(), "  ")
	assert.Error(t, err)
}

func TestClient_SendNotification(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/functions/v1/send-test-notification", r.URL.Path)

		var req entity.NotificationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.TestAllUsers)
		assert.Equal(t, "test", req.Type)

		_, _ = w.Write([]byte(`{
			"message":"Sent 1 notification",
			"results":[{"device_id":"dev-1","platform":"ios","token":"full-token-1"}],
			"summary":{"total_tokens":1,"notification_type":"test","title":"t","body":"b"}
		}`))
	})

	result, err := client.SendNotification(context.Background(), &entity.NotificationRequest{
		Title:        "t",
		Body:         "b",
		Type:         "test",
		TestAllUsers: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sent 1 notification", result.Message)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "full-token-1", result.Results[0].Token)
	assert.Equal(t, 1, result.Summary.TotalTokens)
}

func TestClient_SendNotification_MissingSummaryIsShapeFault(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	})

	_, err := client.SendNotification(context.Background(), &entity.NotificationRequest{
		Title: "t", Body: "b", Type: "test", TestAllUsers: true,
	})
	require.Error(t, err)

	var shapeErr *service.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "summary", shapeErr.Missing)
}

func TestClient_SendNotification_MissingMessageIsShapeFault(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"summary":{"total_tokens":0}}`))
	})

	_, err := client.SendNotification(context.Background(), &entity.NotificationRequest{
		Title: "t", Body: "b", Type: "test", TestAllUsers: true,
	})
	require.Error(t, err)

	var shapeErr *service.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, "message", shapeErr.Missing)
}

func TestClient_SendNotification_ValidationError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"user_id or test_all_users is required"}`))
	})

	_, err := client.SendNotification(context.Background(), &entity.NotificationRequest{
		Title: "t", Body: "b", Type: "test", TestAllUsers: true,
	})
	require.Error(t, err)

	var backendErr *service.BackendError
	require.ErrorAs(t, err, &backendErr)
	assert.Equal(t, http.StatusBadRequest, backendErr.StatusCode)
}

func TestClient_ProbeDispatch(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "success", status: http.StatusOK},
		{name: "validation rejection", status: http.StatusBadRequest},
		{name: "server error", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/functions/v1/send-test-notification", r.URL.Path)

				var probe map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&probe))
				assert.Equal(t, "health_check", probe["test"])

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"status":"response"}`))
			})

			status, body, err := client.ProbeDispatch(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.status, status)
			assert.Contains(t, body, "response")
		})
	}
}

func TestClient_TransportFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := New(server.URL, "anon-key", time.Second, testLogger())

	_, err := client.ListActiveTokens(context.Background())
	assert.Error(t, err)

	_, _, err = client.ProbeDispatch(context.Background())
	assert.Error(t, err)
}
