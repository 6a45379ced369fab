package impl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"pushcheck/internal/domain/entity"
	"pushcheck/internal/domain/service"
	"pushcheck/internal/usecase"
	"pushcheck/internal/util"
)

const (
	// Display limits for the human-readable reports.
	maxListedTokens  = 5
	maxListedResults = 3
)

type diagnosticService struct {
	gateway service.BackendGateway
	payload usecase.NotificationDefaults
	out     io.Writer
}

// NewDiagnosticService creates a diagnostic service instance writing its
// reports to out.
func NewDiagnosticService(
	gateway service.BackendGateway,
	payload usecase.NotificationDefaults,
	out io.Writer,
) usecase.DiagnosticUsecase {
	return &diagnosticService{
		gateway: gateway,
		payload: payload,
		out:     out,
	}
}

// CheckDispatchHealth probes the dispatch edge function with a request
// that carries no target and no payload. A missing-required-field
// rejection proves the function is deployed and validating input, so both
// 200 and 400 count as healthy.
func (s *diagnosticService) CheckDispatchHealth(ctx context.Context) bool {
	fmt.Fprintln(s.out, "🔍 Testing edge function health...")

	status, body, err := s.gateway.ProbeDispatch(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "❌ Error testing edge function: %v\n", err)

		return false
	}

	if status != http.StatusOK && status != http.StatusBadRequest {
		fmt.Fprintf(s.out, "❌ Edge function returned unexpected status: %d\n", status)
		fmt.Fprintf(s.out, "Response: %s\n", body)

		return false
	}

	fmt.Fprintln(s.out, "✅ Edge function is accessible")

	return true
}

// CheckTokenRegistration queries every active device token and lists a
// sample. An empty result is still a pass; it only means no client has
// registered yet.
func (s *diagnosticService) CheckTokenRegistration(ctx context.Context) bool {
	fmt.Fprintln(s.out, "🔍 Testing FCM token registration...")

	tokens, err := s.gateway.ListActiveTokens(ctx)
	if err != nil {
		s.reportFailure("Failed to get FCM tokens", err)

		return false
	}

	fmt.Fprintf(s.out, "✅ Found %d active FCM tokens in database\n", len(tokens))

	if len(tokens) == 0 {
		fmt.Fprintln(s.out, "⚠️  No active FCM tokens found. Make sure to register tokens from the client app first.")

		return true
	}

	fmt.Fprintln(s.out, "\n📱 Active FCM tokens:")
	for i, token := range tokens {
		if i >= maxListedTokens {
			break
		}
		fmt.Fprintf(s.out, "  %d. User: %s\n", i+1, token.UserID)
		fmt.Fprintf(s.out, "     Token: %s\n", util.TruncateToken(token.Token))
		fmt.Fprintf(s.out, "     Device: %s\n", token.DeviceID)
		fmt.Fprintf(s.out, "     Platform: %s\n", token.Platform)
		fmt.Fprintf(s.out, "     Updated: %s\n\n", token.UpdatedAt)
	}

	return true
}

// SendTestNotification builds a test notification for exactly one target
// and submits it to the dispatch endpoint. An invalid target selector is
// rejected locally before any network call.
func (s *diagnosticService) SendTestNotification(ctx context.Context, userID string, allUsers bool) bool {
	fmt.Fprintln(s.out, "📤 Sending test notification...")

	switch {
	case userID != "" && !allUsers:
		fmt.Fprintf(s.out, "   Target: User %s\n", userID)
	case allUsers && userID == "":
		fmt.Fprintln(s.out, "   Target: All users")
	}

	req := &entity.NotificationRequest{
		Title: s.payload.Title,
		Body:  s.payload.Body,
		Type:  s.payload.Type,
		Data: map[string]string{
			// Time-derived ID so repeated runs can be told apart in logs.
			"test_id": fmt.Sprintf("test_%d", time.Now().Unix()),
			"source":  "pushcheck",
		},
		UserID:       userID,
		TestAllUsers: allUsers,
	}

	if err := req.Validate(); err != nil {
		fmt.Fprintf(s.out, "❌ %v\n", err)

		return false
	}

	result, err := s.gateway.SendNotification(ctx, req)
	if err != nil {
		s.reportFailure("Failed to send test notification", err)

		return false
	}

	fmt.Fprintln(s.out, "✅ Test notification sent successfully!")
	fmt.Fprintf(s.out, "   Message: %s\n", result.Message)

	if len(result.Results) > 0 {
		fmt.Fprintf(s.out, "   Sent to %d device(s)\n", len(result.Results))
		for i, res := range result.Results {
			if i >= maxListedResults {
				break
			}
			fmt.Fprintf(s.out, "     %d. Device: %s (%s)\n", i+1, res.DeviceID, res.Platform)
			fmt.Fprintf(s.out, "        Token: %s\n", res.Token)
		}
	}

	summary := result.Summary
	if summary == nil {
		s.reportFailure("Failed to send test notification", &service.ShapeError{Missing: "summary"})

		return false
	}

	fmt.Fprintln(s.out, "\n📊 Summary:")
	fmt.Fprintf(s.out, "   Total tokens: %d\n", summary.TotalTokens)
	fmt.Fprintf(s.out, "   Type: %s\n", summary.NotificationType)
	fmt.Fprintf(s.out, "   Title: %s\n", summary.Title)
	fmt.Fprintf(s.out, "   Body: %s\n", summary.Body)

	return true
}

// GetUserTokens lists every token record registered for one user.
func (s *diagnosticService) GetUserTokens(ctx context.Context, userID string) bool {
	fmt.Fprintf(s.out, "🔍 Getting FCM tokens for user: %s\n", userID)

	if userID == "" {
		fmt.Fprintln(s.out, "❌ A user ID is required")

		return false
	}

	tokens, err := s.gateway.ListUserTokens(ctx, userID)
	if err != nil {
		s.reportFailure("Failed to get user FCM tokens", err)

		return false
	}

	fmt.Fprintf(s.out, "✅ Found %d FCM tokens for user %s\n", len(tokens), userID)

	for i, token := range tokens {
		fmt.Fprintf(s.out, "  %d. Token: %s\n", i+1, util.TruncateToken(token.Token))
		fmt.Fprintf(s.out, "     Device: %s\n", token.DeviceID)
		fmt.Fprintf(s.out, "     Platform: %s\n", token.Platform)
		fmt.Fprintf(s.out, "     App Version: %s\n", token.AppVersion)
		fmt.Fprintf(s.out, "     Updated: %s\n\n", token.UpdatedAt)
	}

	return true
}

// reportFailure prints a backend rejection with its status and raw body,
// or any other fault verbatim.
func (s *diagnosticService) reportFailure(prefix string, err error) {
	var backendErr *service.BackendError
	if errors.As(err, &backendErr) {
		fmt.Fprintf(s.out, "❌ %s: %d\n", prefix, backendErr.StatusCode)
		fmt.Fprintf(s.out, "Response: %s\n", backendErr.Body)

		return
	}

	fmt.Fprintf(s.out, "❌ %s: %v\n", prefix, err)
}
