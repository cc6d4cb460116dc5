package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// Runtime
	Env  string `env:"APP_ENV,default=development"`
	Port string `env:"PORT,default=5000"`

	// Database
	DatabaseURL    string `env:"DATABASE_URL,required"`
	DBMaxOpenConns int    `env:"DB_MAX_OPEN_CONNS,default=25"`
	DBMaxIdleConns int    `env:"DB_MAX_IDLE_CONNS,default=10"`

	// Tokens
	JWTSecret          string        `env:"JWT_SECRET,required"`
	JWTAccessExpiry    time.Duration `env:"JWT_EXPIRES_IN,default=15m"`
	RefreshTokenSecret string        `env:"REFRESH_TOKEN_SECRET,required"`
	RefreshTokenExpiry time.Duration `env:"REFRESH_TOKEN_EXPIRES_IN,default=168h"`

	// HTTP
	CORSOrigins            []string `env:"CORS_ORIGIN,default=http://localhost:5173"`
	BaseURL                string   `env:"BASE_URL,default=http://localhost:5173"`
	BodyLimitMB            int      `env:"BODY_LIMIT_MB,default=6"`
	RateLimitPerMinute     int      `env:"RATE_LIMIT_PER_MINUTE,default=120"`
	AuthRateLimitPerMinute int      `env:"AUTH_RATE_LIMIT_PER_MINUTE,default=20"`

	// Mail
	SMTPHost        string `env:"SMTP_HOST"`
	SMTPPort        int    `env:"SMTP_PORT,default=587"`
	SMTPUser        string `env:"SMTP_USER"`
	SMTPPassword    string `env:"SMTP_PASS"`
	SMTPFrom        string `env:"SMTP_FROM,default=Plateforme Stage <no-reply@localhost>"`
	NotifyQueueSize int    `env:"NOTIFY_QUEUE_SIZE,default=100"`
	NotifyWorkers   int    `env:"NOTIFY_WORKERS,default=2"`

	// Uploads
	UploadDir       string `env:"UPLOAD_DIR,default=uploads"`
	UploadURLPrefix string `env:"UPLOAD_URL_PREFIX,default=/uploads"`
	S3Bucket        string `env:"S3_BUCKET"`
	S3Endpoint      string `env:"S3_ENDPOINT"`
	S3Region        string `env:"S3_REGION,default=us-east-1"`
	S3AccessKey     string `env:"S3_ACCESS_KEY"`
	S3SecretKey     string `env:"S3_SECRET_KEY"`
	S3PublicURL     string `env:"S3_PUBLIC_URL"`

	// Observability
	SentryDSN        string `env:"SENTRY_DSN"`
	OTLPEndpoint     string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	LogRetentionDays int    `env:"LOG_RETENTION_DAYS,default=30"`
}

// Load reads an optional .env file, then the process environment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == c.RefreshTokenSecret {
		return errors.New("JWT_SECRET and REFRESH_TOKEN_SECRET must differ")
	}
	if c.JWTAccessExpiry <= 0 || c.RefreshTokenExpiry <= 0 {
		return errors.New("token expiries must be positive")
	}
	if c.S3Bucket != "" && (c.S3AccessKey == "" || c.S3SecretKey == "") {
		return errors.New("S3_ACCESS_KEY and S3_SECRET_KEY are required when S3_BUCKET is set")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != ""
}

func (c *Config) S3Enabled() bool {
	return c.S3Bucket != ""
}

// VerifyURL builds the link sent in verification emails.
func (c *Config) VerifyURL(token string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/verify-email?token=" + token
}
