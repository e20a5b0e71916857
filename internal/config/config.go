package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Progress   ProgressConfig   `yaml:"progress"`
	Evaluation EvaluationConfig `yaml:"evaluation"`
	LLM        LLMConfig        `yaml:"llm"`
	Mail       MailConfig       `yaml:"mail"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustProxy takes the client IP from X-Forwarded-For. Enable only behind
	// a proxy that overwrites the header.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY" env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// AutoMigrate applies pending migrations at startup.
	AutoMigrate bool `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE" env-default:"false"`
}

// AuthConfig holds token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"growth-journal"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl"  env:"AUTH_REFRESH_TOKEN_TTL"  env-default:"720h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits unauthenticated auth endpoints per client IP.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"  env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"20"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// ProgressConfig holds the streak window and milestone trigger settings.
type ProgressConfig struct {
	MilestoneThresholdsRaw string `yaml:"milestone_thresholds" env:"PROGRESS_MILESTONE_THRESHOLDS" env-default:"3,7,14,30,60,90"`
	DefaultWindowDays      int    `yaml:"default_window_days"  env:"PROGRESS_DEFAULT_WINDOW_DAYS"  env-default:"30"`

	// MilestoneThresholds is parsed from MilestoneThresholdsRaw during validation.
	MilestoneThresholds []int `yaml:"-" env:"-"`
}

// EvaluationConfig holds the self-evaluation form. Lists are "|"-separated.
type EvaluationConfig struct {
	QuestionsRaw    string `yaml:"questions"     env:"EVALUATION_QUESTIONS"     env-default:"What are you most grateful for right now?|Which moment lately felt most like you?|Which habit do you want to strengthen next, and why?"`
	TraitsRaw       string `yaml:"traits"        env:"EVALUATION_TRAITS"        env-default:"Patient|Curious|Disciplined|Compassionate|Honest|Resilient|Generous|Humble"`
	FaithOptionsRaw string `yaml:"faith_options" env:"EVALUATION_FAITH_OPTIONS" env-default:"Christianity|Islam|Judaism|Hinduism|Buddhism|Spiritual but not religious|Agnostic|Atheist|Prefer not to say"`
}

// LLMConfig holds settings for the entry summarizer.
type LLMConfig struct {
	APIKey    string        `yaml:"api_key"    env:"LLM_API_KEY"`
	Model     string        `yaml:"model"      env:"LLM_MODEL"      env-default:"claude-haiku-4-5"`
	MaxTokens int           `yaml:"max_tokens" env:"LLM_MAX_TOKENS" env-default:"512"`
	Timeout   time.Duration `yaml:"timeout"    env:"LLM_TIMEOUT"    env-default:"30s"`
}

// Enabled reports whether summaries can be requested.
func (c LLMConfig) Enabled() bool { return c.APIKey != "" }

// MailConfig holds settings for the transactional mail API used for
// milestone notifications.
type MailConfig struct {
	BaseURL string        `yaml:"base_url" env:"MAIL_BASE_URL"`
	APIKey  string        `yaml:"api_key"  env:"MAIL_API_KEY"`
	From    string        `yaml:"from"     env:"MAIL_FROM"     env-default:"Growth Journal <no-reply@growth-journal.app>"`
	Timeout time.Duration `yaml:"timeout"  env:"MAIL_TIMEOUT"  env-default:"10s"`
}

// Enabled reports whether notification mail should be sent.
func (c MailConfig) Enabled() bool { return c.BaseURL != "" && c.APIKey != "" }
