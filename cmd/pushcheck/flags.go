package main

import (
	"flag"
)

// options holds the parsed command-line surface of the harness.
type options struct {
	supabaseURL string
	supabaseKey string

	testEdgeFunction      bool
	testTokenRegistration bool
	sendTestNotification  bool
	userID                string
	testAllUsers          bool
	getUserTokens         string
	runAllTests           bool
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("pushcheck", flag.ContinueOnError)
	fs.StringVar(&opts.supabaseURL, "supabase-url", "", "Supabase project URL")
	fs.StringVar(&opts.supabaseKey, "supabase-key", "", "Supabase anon key")
	fs.BoolVar(&opts.testEdgeFunction, "test-edge-function", false, "Test edge function health")
	fs.BoolVar(&opts.testTokenRegistration, "test-token-registration", false, "Test FCM token registration")
	fs.BoolVar(&opts.sendTestNotification, "send-test-notification", false, "Send a test notification (requires --user-id or --test-all-users)")
	fs.StringVar(&opts.userID, "user-id", "", "User ID for targeted notification")
	fs.BoolVar(&opts.testAllUsers, "test-all-users", false, "Send test notification to all users")
	fs.StringVar(&opts.getUserTokens, "get-user-tokens", "", "Get FCM tokens for specific user ID")
	fs.BoolVar(&opts.runAllTests, "run-all-tests", false, "Run all available tests")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return opts, nil
}

// anySelected reports whether at least one check was requested.
func (o *options) anySelected() bool {
	return o.runAllTests ||
		o.testEdgeFunction ||
		o.testTokenRegistration ||
		o.sendTestNotification ||
		o.getUserTokens != ""
}
