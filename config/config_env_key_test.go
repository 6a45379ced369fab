package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"supabase": map[string]any{
			"url": "",
			"key": "",
		},
		"notification": map[string]any{
			"title": "",
		},
		"env": map[string]any{
			"serviceName": "pushcheck",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SUPABASE_URL", want: "supabase.url"},
		{envKey: "SUPABASE_KEY", want: "supabase.key"},
		{envKey: "NOTIFICATION_TITLE", want: "notification.title"},
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.HTTP.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout %v, got %v", defaultHTTPTimeout, cfg.HTTP.Timeout)
	}
	if cfg.Env.Log.Level != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.Env.Log.Level)
	}
	if cfg.Notification.Type != "test" {
		t.Fatalf("expected default notification type test, got %q", cfg.Notification.Type)
	}
}
