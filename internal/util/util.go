package util

const tokenDisplayLength = 20

// TruncateToken shortens a push token for display: the first 20 characters
// followed by an ellipsis marker. Full tokens only appear in the
// send-test-notification per-device report.
func TruncateToken(token string) string {
	if len(token) > tokenDisplayLength {
		token = token[:tokenDisplayLength]
	}

	return token + "..."
}
