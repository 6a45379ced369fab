// Command pushcheck smoke-tests a Supabase-backed push notification
// pipeline: device token registration, dispatch edge-function health and
// end-to-end test delivery. Exit status is 0 only when every selected
// check passed.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"pushcheck/config"
	logs "pushcheck/internal/infra/log"
	"pushcheck/internal/infra/supabase"
	"pushcheck/internal/usecase"
	"pushcheck/internal/usecase/impl"
)

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		// flag.Parse already printed the problem and the defaults.
		os.Exit(1)
	}

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load config: %v\n", err)
		os.Exit(1)
	}

	// Flags win over config/env values.
	if opts.supabaseURL == "" {
		opts.supabaseURL = cfg.Supabase.URL
	}
	if opts.supabaseKey == "" {
		opts.supabaseKey = cfg.Supabase.Key
	}
	if opts.supabaseURL == "" || opts.supabaseKey == "" {
		fmt.Fprintln(os.Stderr, "Error: --supabase-url and --supabase-key are required (or set SUPABASE_URL / SUPABASE_KEY)")
		os.Exit(1)
	}

	if !opts.anySelected() {
		// A run that performs no checks must not report success.
		fmt.Fprintln(os.Stderr, "Error: no checks selected; pass --run-all-tests or one of the --test-* flags")
		os.Exit(1)
	}

	logger, err := logs.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gateway := supabase.New(opts.supabaseURL, opts.supabaseKey, cfg.HTTP.Timeout, logger)
	diagnostics := impl.NewDiagnosticService(gateway, usecase.NotificationDefaults(cfg.Notification), os.Stdout)

	result := runChecks(context.Background(), diagnostics, opts, os.Stdout)

	fmt.Printf("\n📊 Test Results: %d/%d tests passed\n", result.passed, result.total)

	if !result.allPassed() {
		fmt.Println("❌ Some tests failed. Check the output above for details.")
		os.Exit(1)
	}

	fmt.Println("🎉 All tests passed!")
}

// tally accumulates check outcomes. It is threaded through runChecks and
// returned by value; there is no process-global counter.
type tally struct {
	passed int
	total  int
}

func (t *tally) record(ok bool) {
	t.total++
	if ok {
		t.passed++
	}
}

func (t tally) allPassed() bool {
	return t.total > 0 && t.passed == t.total
}

// runChecks executes the selected checks in their fixed order and returns
// the outcome tally. Later checks still run when earlier ones fail, to
// maximize diagnostic information per run.
func runChecks(ctx context.Context, diagnostics usecase.DiagnosticUsecase, opts *options, out io.Writer) tally {
	var result tally

	if opts.runAllTests {
		fmt.Fprintln(out, "🚀 Running all FCM tests...")
		fmt.Fprintln(out)

		result.record(diagnostics.CheckDispatchHealth(ctx))
		fmt.Fprintln(out)

		result.record(diagnostics.CheckTokenRegistration(ctx))
		fmt.Fprintln(out)

		result.record(diagnostics.SendTestNotification(ctx, "", true))
		fmt.Fprintln(out)

		return result
	}

	if opts.testEdgeFunction {
		result.record(diagnostics.CheckDispatchHealth(ctx))
	}
	if opts.testTokenRegistration {
		result.record(diagnostics.CheckTokenRegistration(ctx))
	}
	if opts.sendTestNotification {
		result.record(diagnostics.SendTestNotification(ctx, opts.userID, opts.testAllUsers))
	}
	if opts.getUserTokens != "" {
		result.record(diagnostics.GetUserTokens(ctx, opts.getUserTokens))
	}

	return result
}
