package config

import (
	"strings"
	"testing"
)

func TestNormalizeDefaultsToLongpoll(t *testing.T) {
	cfg := &Config{Telegram: TelegramConfig{Token: "t"}}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Errorf("run mode: got %q", cfg.Telegram.RunMode)
	}
}

func TestNormalizeAcceptsPollingAlias(t *testing.T) {
	cfg := &Config{Telegram: TelegramConfig{Token: "t", RunMode: "polling"}}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Errorf("run mode: got %q", cfg.Telegram.RunMode)
	}
}

func TestNormalizeRequiresToken(t *testing.T) {
	if err := Normalize(&Config{}); err == nil || !strings.Contains(err.Error(), "token") {
		t.Fatalf("want token error, got %v", err)
	}
}

func TestNormalizeWebhookRequirements(t *testing.T) {
	cfg := &Config{Telegram: TelegramConfig{Token: "t", RunMode: RunModeWebhook}}
	if err := Normalize(cfg); err == nil {
		t.Fatal("webhook mode without url must fail")
	}
	cfg.Webhook = WebhookConfig{URL: "https://example.org/hook", Listen: "0.0.0.0", Port: 8443}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("valid webhook config rejected: %v", err)
	}
}

func TestNormalizeRejectsUnknownExcludeUpdates(t *testing.T) {
	cfg := &Config{
		Telegram:  TelegramConfig{Token: "t"},
		RateLimit: RateLimitConfig{ExcludeUpdates: []string{"inline"}},
	}
	if err := Normalize(cfg); err == nil {
		t.Fatal("unknown exclude_updates value must fail")
	}
	cfg.RateLimit.ExcludeUpdates = []string{" Callback "}
	if err := Normalize(cfg); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.RateLimit.ExcludeUpdates[0] != UpdateCallback {
		t.Errorf("exclude value not normalized: %q", cfg.RateLimit.ExcludeUpdates[0])
	}
}
