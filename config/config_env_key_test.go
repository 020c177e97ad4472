package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"notification": map[string]any{
			"linkBaseUrl": "",
		},
		"scheduler": map[string]any{
			"cleanupHour": 4,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NOTIFICATION_LINKBASEURL", want: "notification.linkBaseUrl"},
		{envKey: "SCHEDULER_CLEANUPHOUR", want: "scheduler.cleanupHour"},
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

	applyDefaults(cfg)

	if cfg.Party.MaxCapacity != defaultMaxPartyCapacity {
		t.Fatalf("Party.MaxCapacity = %d, want %d", cfg.Party.MaxCapacity, defaultMaxPartyCapacity)
	}
	if cfg.Scheduler.AuditRetentionDays != defaultAuditRetentionDays {
		t.Fatalf("Scheduler.AuditRetentionDays = %d, want %d", cfg.Scheduler.AuditRetentionDays, defaultAuditRetentionDays)
	}
	if cfg.Scheduler.CleanupHour != defaultCleanupHour {
		t.Fatalf("Scheduler.CleanupHour = %d, want %d", cfg.Scheduler.CleanupHour, defaultCleanupHour)
	}
	if cfg.Scheduler.DefaultReminderLeadMinutes != defaultReminderLeadMinutes {
		t.Fatalf("Scheduler.DefaultReminderLeadMinutes = %d, want %d", cfg.Scheduler.DefaultReminderLeadMinutes, defaultReminderLeadMinutes)
	}
	if cfg.QRCode.Size != defaultQRCodeSize {
		t.Fatalf("QRCode.Size = %d, want %d", cfg.QRCode.Size, defaultQRCodeSize)
	}
	if cfg.Notification.DeepLinkScheme != "gametable" {
		t.Fatalf("Notification.DeepLinkScheme = %q, want %q", cfg.Notification.DeepLinkScheme, "gametable")
	}
}

func TestApplyDefaults_KeepsExplicitMidnightCleanupHour(t *testing.T) {
	cfg := &Config{Scheduler: &SchedulerConfig{CleanupHour: 0}}

	applyDefaults(cfg)

	if cfg.Scheduler.CleanupHour != 0 {
		t.Fatalf("Scheduler.CleanupHour = %d, want 0", cfg.Scheduler.CleanupHour)
	}
}

func TestApplyDefaults_ReplacesOutOfRangeCleanupHour(t *testing.T) {
	cfg := &Config{Scheduler: &SchedulerConfig{CleanupHour: 24}}

	applyDefaults(cfg)

	if cfg.Scheduler.CleanupHour != defaultCleanupHour {
		t.Fatalf("Scheduler.CleanupHour = %d, want %d", cfg.Scheduler.CleanupHour, defaultCleanupHour)
	}
}
