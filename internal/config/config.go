package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates every tunable of the service.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Chat   ChatConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	chat, err := loadChatConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, Chat: chat}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "3000"
	}

	if strings.Contains(port, ":") {
		// Accepts ":3000" or "127.0.0.1:3000" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the language-model collaborator.
type AIConfig struct {
	APIKey         string
	AccessKey      string
	SecretKey      string
	Model          string
	BaseURL        string
	Region         string
	Temperature    *float64
	TopP           *float64
	MaxTokens      *int
	RequestTimeout time.Duration
	MaxAttempts    int
}

// Enabled reports whether the required model credentials are present.
// When disabled the response generator serves fallback responses only.
func (c AIConfig) Enabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// NewChatModel builds a chat model instance from the configuration.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("model credentials missing: provide ARK_API_KEY + ARK_MODEL or an AK/SK pair")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("ARK_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	topP, err := parseOptionalFloatEnv("ARK_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("ARK_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	timeout, err := parseDurationEnv("AI_REQUEST_TIMEOUT", 10*time.Second)
	if err != nil {
		return AIConfig{}, err
	}

	attempts := 3
	if attemptsOverride, err := parseOptionalIntEnv("AI_MAX_ATTEMPTS"); err != nil {
		return AIConfig{}, err
	} else if attemptsOverride != nil && *attemptsOverride >= 1 {
		attempts = *attemptsOverride
	}

	return AIConfig{
		APIKey:         strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:      strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:      strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:          strings.TrimSpace(os.Getenv("ARK_MODEL")),
		BaseURL:        getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:         getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature:    temperature,
		TopP:           topP,
		MaxTokens:      maxTokens,
		RequestTimeout: timeout,
		MaxAttempts:    attempts,
	}, nil
}

// ChatConfig bounds session retention and message intake.
type ChatConfig struct {
	SessionTimeout   time.Duration
	SweepInterval    time.Duration
	MaxSessions      int
	MaxMessages      int
	MaxMessageLength int
	HistoryCap       int
	ActiveWindow     time.Duration
}

func loadChatConfig() (ChatConfig, error) {
	sessionTimeout, err := parseDurationEnv("CHAT_SESSION_TIMEOUT", 24*time.Hour)
	if err != nil {
		return ChatConfig{}, err
	}

	sweepInterval, err := parseDurationEnv("CHAT_SWEEP_INTERVAL", time.Hour)
	if err != nil {
		return ChatConfig{}, err
	}

	activeWindow, err := parseDurationEnv("CHAT_ACTIVE_WINDOW", 5*time.Minute)
	if err != nil {
		return ChatConfig{}, err
	}

	maxSessions, err := parsePositiveIntEnv("CHAT_MAX_SESSIONS", 1000)
	if err != nil {
		return ChatConfig{}, err
	}

	maxMessages, err := parsePositiveIntEnv("CHAT_MAX_MESSAGES", 20)
	if err != nil {
		return ChatConfig{}, err
	}

	maxMessageLength, err := parsePositiveIntEnv("CHAT_MAX_MESSAGE_LENGTH", 1000)
	if err != nil {
		return ChatConfig{}, err
	}

	historyCap, err := parsePositiveIntEnv("CHAT_HISTORY_CAP", 50)
	if err != nil {
		return ChatConfig{}, err
	}

	return ChatConfig{
		SessionTimeout:   sessionTimeout,
		SweepInterval:    sweepInterval,
		MaxSessions:      maxSessions,
		MaxMessages:      maxMessages,
		MaxMessageLength: maxMessageLength,
		HistoryCap:       historyCap,
		ActiveWindow:     activeWindow,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	if val <= 0 {
		return 0, fmt.Errorf("invalid %s value %q: must be positive", key, raw)
	}
	return val, nil
}

func parsePositiveIntEnv(key string, defaultValue int) (int, error) {
	override, err := parseOptionalIntEnv(key)
	if err != nil {
		return 0, err
	}
	if override == nil {
		return defaultValue, nil
	}
	if *override < 1 {
		return 0, fmt.Errorf("invalid %s value %d: must be positive", key, *override)
	}
	return *override, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
