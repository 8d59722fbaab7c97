package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary   Primary         `koanf:"primary"`
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	P24       P24Config       `koanf:"p24"`
	Retry     RetryConfig     `koanf:"retry"`
	Logger    LoggerConfig    `koanf:"logger"`
	Worker    WorkerConfig    `koanf:"worker"`
	Redis     RedisConfig     `koanf:"redis"`
	AWS       AWSConfig       `koanf:"aws"`
	Auth      AuthConfig      `koanf:"auth"`
	CORS      CORSConfig      `koanf:"cors"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
	// PublicURL is where P24 sends the status callback and the client returns.
	PublicURL string `koanf:"public_url" validate:"required"`
	// ReturnURL is the client-facing page shown after payment; {session} is replaced.
	ReturnURL string `koanf:"return_url" validate:"required"`
}

type WorkerConfig struct {
	Enabled   bool          `koanf:"enabled"`
	Interval  time.Duration `koanf:"interval" validate:"required"`
	BatchSize int           `koanf:"batch_size" validate:"required"`
	Grace     time.Duration `koanf:"grace"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

// P24Config holds the Przelewy24 merchant credentials.
type P24Config struct {
	MerchantID  int           `koanf:"merchant_id" validate:"required"`
	PosID       int           `koanf:"pos_id" validate:"required"`
	CRC         string        `koanf:"crc" validate:"required"`
	APIKey      string        `koanf:"api_key" validate:"required"`
	Sandbox     bool          `koanf:"sandbox"`
	BaseURL     string        `koanf:"base_url"`
	Currency    string        `koanf:"currency"`
	TimeLimit   int           `koanf:"time_limit"`
	Channel     int           `koanf:"channel"`
	ConnTimeout time.Duration `koanf:"conn_timeout" validate:"required"`
}

const (
	P24SandboxURL    = "https://sandbox.przelewy24.pl"
	P24ProductionURL = "https://secure.przelewy24.pl"
)

// Endpoint returns the gateway base URL, preferring an explicit override.
func (c P24Config) Endpoint() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if c.Sandbox {
		return P24SandboxURL
	}
	return P24ProductionURL
}

// PaymentWindow is how long P24 keeps a registered transaction open.
func (c P24Config) PaymentWindow() time.Duration {
	return time.Duration(c.TimeLimit) * time.Minute
}

type RetryConfig struct {
	BaseDelay  int32 `koanf:"base_delay"`
	MaxRetries int32 `koanf:"max_retries"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type RedisConfig struct {
	URL         string        `koanf:"url"`
	AccessTTL   time.Duration `koanf:"access_ttl"`
	DialTimeout time.Duration `koanf:"dial_timeout"`
}

type AWSConfig struct {
	Region           string        `koanf:"region"`
	Endpoint         string        `koanf:"endpoint"`
	AccessKeyID      string        `koanf:"access_key_id"`
	SecretAccessKey  string        `koanf:"secret_access_key"`
	PhotosBucket     string        `koanf:"photos_bucket"`
	DeliveryTopicARN string        `koanf:"delivery_topic_arn"`
	LinkExpiry       time.Duration `koanf:"link_expiry"`
}

type AuthConfig struct {
	JWTSecret string `koanf:"jwt_secret" validate:"required"`
	Issuer    string `koanf:"issuer"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `koanf:"requests_per_minute"`
	Burst             int `koanf:"burst"`
}

func (c *Config) applyDefaults() {
	if c.P24.Currency == "" {
		c.P24.Currency = "PLN"
	}
	if c.P24.TimeLimit == 0 {
		c.P24.TimeLimit = 15
	}
	if c.Worker.Grace == 0 {
		c.Worker.Grace = 10 * time.Minute
	}
	if c.Redis.AccessTTL == 0 {
		c.Redis.AccessTTL = time.Hour
	}
	if c.AWS.LinkExpiry == 0 {
		c.AWS.LinkExpiry = 7 * 24 * time.Hour
	}
	if c.RateLimit.RequestsPerMinute == 0 {
		c.RateLimit.RequestsPerMinute = 120
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 30
	}
	if c.Retry.MaxRetries == 0 {
		c.Retry.MaxRetries = 3
	}
	if c.Retry.BaseDelay == 0 {
		c.Retry.BaseDelay = 1
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	err := k.Load(env.Provider("GALLERY_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "GALLERY_")),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	mainConfig.applyDefaults()

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
