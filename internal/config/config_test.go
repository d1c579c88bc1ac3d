// Configuration unit tests

package config

import (
	"os"
	"testing"
	"time"
)

func clearEnv() {
	os.Unsetenv("CHATGPT_MCP_APP_NAME")
	os.Unsetenv("CHATGPT_MCP_REQUEST_TIMEOUT")
	os.Unsetenv("CHATGPT_MCP_DEFAULT_WAIT")
	os.Unsetenv("CHATGPT_MCP_TAIL_FALLBACK")
	os.Unsetenv("CHATGPT_MCP_MIN_NODE_TEXT_LEN")
	os.Unsetenv("CHATGPT_MCP_COMPLETENESS_MIN_LEN")
	os.Unsetenv("CHATGPT_MCP_MAX_CONVERSATIONS")
	os.Unsetenv("CHATGPT_MCP_LAUNCH_SETTLE_DELAY")
	os.Unsetenv("CHATGPT_MCP_STEP_DELAY")
	os.Unsetenv("CHATGPT_MCP_DEBUG")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppName != "ChatGPT" {
		t.Errorf("AppName = %s, want ChatGPT", cfg.AppName)
	}
	if cfg.RequestTimeout != 90 {
		t.Errorf("RequestTimeout = %d, want 90", cfg.RequestTimeout)
	}
	if cfg.DefaultWait != 12 {
		t.Errorf("DefaultWait = %d, want 12", cfg.DefaultWait)
	}
	if cfg.MinWait != 1 || cfg.MaxWait != 30 {
		t.Errorf("wait clamp = [%d, %d], want [1, 30]", cfg.MinWait, cfg.MaxWait)
	}
	if cfg.TailFallback != 5 {
		t.Errorf("TailFallback = %d, want 5", cfg.TailFallback)
	}
	if cfg.MinNodeTextLen != 3 {
		t.Errorf("MinNodeTextLen = %d, want 3", cfg.MinNodeTextLen)
	}
	if cfg.CompletenessMinLen != 50 {
		t.Errorf("CompletenessMinLen = %d, want 50", cfg.CompletenessMinLen)
	}
	if cfg.LaunchSettleDelay != 2*time.Second {
		t.Errorf("LaunchSettleDelay = %v, want 2s", cfg.LaunchSettleDelay)
	}
	if cfg.Debug {
		t.Error("Debug = true, want false")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv()
	os.Setenv("CHATGPT_MCP_APP_NAME", "ChatGPT Beta")
	os.Setenv("CHATGPT_MCP_DEFAULT_WAIT", "20")
	os.Setenv("CHATGPT_MCP_TAIL_FALLBACK", "3")
	os.Setenv("CHATGPT_MCP_MIN_NODE_TEXT_LEN", "5")
	os.Setenv("CHATGPT_MCP_COMPLETENESS_MIN_LEN", "80")
	os.Setenv("CHATGPT_MCP_STEP_DELAY", "150ms")
	os.Setenv("CHATGPT_MCP_DEBUG", "1")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.AppName != "ChatGPT Beta" {
		t.Errorf("AppName = %s, want ChatGPT Beta", cfg.AppName)
	}
	if cfg.DefaultWait != 20 {
		t.Errorf("DefaultWait = %d, want 20", cfg.DefaultWait)
	}
	if cfg.TailFallback != 3 {
		t.Errorf("TailFallback = %d, want 3", cfg.TailFallback)
	}
	if cfg.MinNodeTextLen != 5 {
		t.Errorf("MinNodeTextLen = %d, want 5", cfg.MinNodeTextLen)
	}
	if cfg.CompletenessMinLen != 80 {
		t.Errorf("CompletenessMinLen = %d, want 80", cfg.CompletenessMinLen)
	}
	if cfg.StepDelay != 150*time.Millisecond {
		t.Errorf("StepDelay = %v, want 150ms", cfg.StepDelay)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric timeout", "CHATGPT_MCP_REQUEST_TIMEOUT", "soon"},
		{"non-duration settle delay", "CHATGPT_MCP_LAUNCH_SETTLE_DELAY", "fast"},
		{"default wait above clamp", "CHATGPT_MCP_DEFAULT_WAIT", "31"},
		{"default wait below clamp", "CHATGPT_MCP_DEFAULT_WAIT", "0"},
		{"zero tail fallback", "CHATGPT_MCP_TAIL_FALLBACK", "0"},
		{"negative node text floor", "CHATGPT_MCP_MIN_NODE_TEXT_LEN", "-1"},
		{"zero completeness threshold", "CHATGPT_MCP_COMPLETENESS_MIN_LEN", "0"},
		{"zero max conversations", "CHATGPT_MCP_MAX_CONVERSATIONS", "0"},
		{"timeout below max wait", "CHATGPT_MCP_REQUEST_TIMEOUT", "30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv()
			os.Setenv(tt.key, tt.value)
			defer clearEnv()

			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q succeeded, want error", tt.key, tt.value)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.AppName != "ChatGPT" {
		t.Errorf("AppName = %s, want ChatGPT", cfg.AppName)
	}
	if cfg.DefaultWait != 12 || cfg.MinWait != 1 || cfg.MaxWait != 30 {
		t.Errorf("wait defaults = %d [%d, %d], want 12 [1, 30]", cfg.DefaultWait, cfg.MinWait, cfg.MaxWait)
	}
}
