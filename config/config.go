package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig
	Redis    RedisConfig

	// Access control
	Auth      AuthConfig
	RateLimit RateLimitConfig

	// Assistant
	Assistant AssistantConfig
	LLM       LLMConfig

	// Reminders
	Mailer   MailerConfig
	Reminder ReminderConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN             string
	MaxConns        int32
	MigrateOnStart  bool
	MigrationsPath  string
	ConnectTimeout  time.Duration
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	URL string
}

// AuthConfig configures bearer-token verification. The secret is the
// identity provider's HS256 signing key.
type AuthConfig struct {
	JWTSecret string
	Issuer    string
	Audience  string
	CacheSize int
}

type RateLimitConfig struct {
	RequestsPerMinute int
	Burst             int
}

type AssistantConfig struct {
	MaxContextTasks int
	MaxHistory      int
	DefaultTimezone string
	Temperature     float64
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type MailerConfig struct {
	BaseURL string
	APIKey  string
	From    string
	Timeout time.Duration
}

type ReminderConfig struct {
	Interval  time.Duration
	LockTTL   time.Duration
	BatchSize int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment
	cfg.Environment.Name = viper.GetString("environment.name")

	// HTTP Server
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")

	// Logger
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.DSN = expandEnvVar(viper.GetString("postgres.dsn"))
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxConns = viper.GetInt32("postgres.max_conns")
	cfg.Postgres.MigrateOnStart = viper.GetBool("postgres.migrate_on_start")
	cfg.Postgres.MigrationsPath = viper.GetString("postgres.migrations_path")
	cfg.Postgres.ConnectTimeout = viper.GetDuration("postgres.connect_timeout")
	cfg.Postgres.MaxConnLifetime = viper.GetDuration("postgres.max_conn_lifetime")

	// Redis
	cfg.Redis.URL = expandEnvVar(viper.GetString("redis.url"))

	// Auth
	cfg.Auth.JWTSecret = expandEnvVar(viper.GetString("auth.jwt_secret"))
	if secret := viper.GetString("jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	cfg.Auth.Issuer = viper.GetString("auth.issuer")
	cfg.Auth.Audience = viper.GetString("auth.audience")
	cfg.Auth.CacheSize = viper.GetInt("auth.cache_size")

	// Rate limit
	cfg.RateLimit.RequestsPerMinute = viper.GetInt("rate_limit.requests_per_minute")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	// Assistant
	cfg.Assistant.MaxContextTasks = viper.GetInt("assistant.max_context_tasks")
	cfg.Assistant.MaxHistory = viper.GetInt("assistant.max_history")
	cfg.Assistant.DefaultTimezone = viper.GetString("assistant.default_timezone")
	cfg.Assistant.Temperature = viper.GetFloat64("assistant.temperature")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		if providersList, ok := viper.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	// Mailer
	cfg.Mailer.BaseURL = viper.GetString("mailer.base_url")
	cfg.Mailer.APIKey = expandEnvVar(viper.GetString("mailer.api_key"))
	cfg.Mailer.From = viper.GetString("mailer.from")
	cfg.Mailer.Timeout = viper.GetDuration("mailer.timeout")

	// Reminder
	cfg.Reminder.Interval = viper.GetDuration("reminder.interval")
	cfg.Reminder.LockTTL = viper.GetDuration("reminder.lock_ttl")
	cfg.Reminder.BatchSize = viper.GetInt("reminder.batch_size")

	if cfg.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres.dsn is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.max_conns", 10)
	viper.SetDefault("postgres.migrate_on_start", true)
	viper.SetDefault("postgres.migrations_path", "migrations")
	viper.SetDefault("postgres.connect_timeout", "5s")
	viper.SetDefault("postgres.max_conn_lifetime", "30m")
	viper.SetDefault("redis.url", "redis://localhost:6379/0")

	viper.SetDefault("auth.cache_size", 10000)
	viper.SetDefault("rate_limit.requests_per_minute", 20)
	viper.SetDefault("rate_limit.burst", 5)

	viper.SetDefault("assistant.max_context_tasks", 50)
	viper.SetDefault("assistant.max_history", 20)
	viper.SetDefault("assistant.default_timezone", "UTC")
	viper.SetDefault("assistant.temperature", 0.2)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 2)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")

	viper.SetDefault("mailer.timeout", "10s")
	viper.SetDefault("reminder.interval", "1m")
	viper.SetDefault("reminder.lock_ttl", "50s")
	viper.SetDefault("reminder.batch_size", 200)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Validate checks the LLM configuration. Only the API process needs a model,
// so Load leaves this to the caller.
func (cfg *LLMConfig) Validate() error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	for _, d := range []struct{ key, value string }{
		{"retry_delay", cfg.RetryDelay},
		{"max_total_timeout", cfg.MaxTotalTimeout},
	} {
		if d.value == "" {
			continue
		}
		if _, err := time.ParseDuration(d.value); err != nil {
			return fmt.Errorf("llm.%s: %w", d.key, err)
		}
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
