// Configuration package for the ChatGPT MCP tool

package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds the configuration for the ChatGPT MCP tool.
//
// The numeric thresholds (wait clamp bounds, tail fallback size, text length
// floors) are empirically chosen; they are surfaced here rather than inlined
// so deployments can tune them without a rebuild.
type Config struct {
	// AppName is the name the target application registers with the system,
	// used for process checks, activation, and accessibility queries.
	AppName string

	// RequestTimeout bounds a single tool invocation, in seconds. It must
	// comfortably exceed MaxWait plus injection overhead.
	RequestTimeout int

	// DefaultWait is the pause after submitting a prompt when the caller
	// does not supply wait_time, in seconds.
	DefaultWait int

	// MinWait and MaxWait are the closed clamp range for wait_time.
	MinWait int
	MaxWait int

	// TailFallback is the number of trailing transcript nodes returned when
	// the sent prompt cannot be located in the transcript.
	TailFallback int

	// MinNodeTextLen is the length floor (in runes) at or below which scraped
	// static-text nodes are discarded.
	MinNodeTextLen int

	// CompletenessMinLen is the length (in runes) above which a cleaned
	// response is considered complete regardless of its shape.
	CompletenessMinLen int

	// MaxConversations caps the number of sidebar conversation labels
	// returned by get_conversations.
	MaxConversations int

	// LaunchSettleDelay is how long to wait after activating the target
	// application before confirming it is running.
	LaunchSettleDelay time.Duration

	// StepDelay is the pause between the clear, type, and submit stages of
	// prompt injection.
	StepDelay time.Duration

	Debug bool
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	requestTimeout, err := getEnvAsInt("CHATGPT_MCP_REQUEST_TIMEOUT", 90)
	if err != nil {
		return nil, err
	}

	defaultWait, err := getEnvAsInt("CHATGPT_MCP_DEFAULT_WAIT", 12)
	if err != nil {
		return nil, err
	}

	tailFallback, err := getEnvAsInt("CHATGPT_MCP_TAIL_FALLBACK", 5)
	if err != nil {
		return nil, err
	}

	minNodeTextLen, err := getEnvAsInt("CHATGPT_MCP_MIN_NODE_TEXT_LEN", 3)
	if err != nil {
		return nil, err
	}

	completenessMinLen, err := getEnvAsInt("CHATGPT_MCP_COMPLETENESS_MIN_LEN", 50)
	if err != nil {
		return nil, err
	}

	maxConversations, err := getEnvAsInt("CHATGPT_MCP_MAX_CONVERSATIONS", 10)
	if err != nil {
		return nil, err
	}

	launchSettleDelay, err := getEnvAsDuration("CHATGPT_MCP_LAUNCH_SETTLE_DELAY", 2*time.Second)
	if err != nil {
		return nil, err
	}

	stepDelay, err := getEnvAsDuration("CHATGPT_MCP_STEP_DELAY", 300*time.Millisecond)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AppName:            getEnv("CHATGPT_MCP_APP_NAME", "ChatGPT"),
		RequestTimeout:     requestTimeout,
		DefaultWait:        defaultWait,
		MinWait:            1,
		MaxWait:            30,
		TailFallback:       tailFallback,
		MinNodeTextLen:     minNodeTextLen,
		CompletenessMinLen: completenessMinLen,
		MaxConversations:   maxConversations,
		LaunchSettleDelay:  launchSettleDelay,
		StepDelay:          stepDelay,
		Debug:              getEnvAsBool("CHATGPT_MCP_DEBUG", false),
	}

	if cfg.AppName == "" {
		return nil, fmt.Errorf("application name cannot be empty")
	}
	if cfg.DefaultWait < cfg.MinWait || cfg.DefaultWait > cfg.MaxWait {
		return nil, fmt.Errorf("default wait %d outside clamp range [%d, %d]", cfg.DefaultWait, cfg.MinWait, cfg.MaxWait)
	}
	if cfg.TailFallback < 1 {
		return nil, fmt.Errorf("tail fallback must be at least 1, got %d", cfg.TailFallback)
	}
	if cfg.MinNodeTextLen < 0 {
		return nil, fmt.Errorf("min node text length cannot be negative, got %d", cfg.MinNodeTextLen)
	}
	if cfg.CompletenessMinLen < 1 {
		return nil, fmt.Errorf("completeness length threshold must be at least 1, got %d", cfg.CompletenessMinLen)
	}
	if cfg.MaxConversations < 1 {
		return nil, fmt.Errorf("max conversations must be at least 1, got %d", cfg.MaxConversations)
	}
	if cfg.RequestTimeout <= cfg.MaxWait {
		return nil, fmt.Errorf("request timeout %ds must exceed the maximum wait of %ds", cfg.RequestTimeout, cfg.MaxWait)
	}

	return cfg, nil
}

// Default returns the built-in configuration without consulting the
// environment. Intended primarily for tests.
func Default() *Config {
	return &Config{
		AppName:            "ChatGPT",
		RequestTimeout:     90,
		DefaultWait:        12,
		MinWait:            1,
		MaxWait:            30,
		TailFallback:       5,
		MinNodeTextLen:     3,
		CompletenessMinLen: 50,
		MaxConversations:   10,
		LaunchSettleDelay:  2 * time.Second,
		StepDelay:          300 * time.Millisecond,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	var result int
	_, err := fmt.Sscanf(value, "%d", &result)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q (expected integer)", key, value)
	}
	return result, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q (expected duration, e.g., '30s', '5m')", key, value)
	}
	return d, nil
}
