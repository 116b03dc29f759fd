package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	PickupAPI PickupAPI `validate:"required"`
	Polling   Polling   `validate:"required"`
	Auth      Auth      `validate:"required"`
	Cache     Cache     `validate:"required"`
	Drafts    Drafts    `validate:"required"`

	Kafka Kafka

	// STRICT_TRANSITIONS re-reads a pickup after every write and reports a
	// concurrent write when another writer won. Detection is best effort: a rival
	// write landing after the re-read goes unnoticed.
	StrictTransitions bool
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type PickupAPI struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
}

type Polling struct {
	ListInterval   time.Duration `validate:"gt=0"`
	DetailInterval time.Duration `validate:"gt=0"`
}

type Auth struct {
	JWTSecret string `validate:"required,min=16"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Drafts struct {
	Driver string `validate:"required,oneof=sqlite3 postgres"`
	DSN    string `validate:"required"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Kafka struct {
	Enabled bool
	GroupID string   `validate:"required_if=Enabled true"`
	Brokers []string `validate:"required_if=Enabled true,dive,hostname_port"`
	Topic   string   `validate:"required_if=Enabled true"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:8081"), ","),
		},

		PickupAPI: PickupAPI{
			BaseURL: env("PICKUP_API_URL", "http://localhost:3000"),
			Timeout: envDuration("PICKUP_API_TIMEOUT", 5*time.Second),
		},

		Polling: Polling{
			ListInterval:   envDuration("LIST_POLL_INTERVAL", 3*time.Second),
			DetailInterval: envDuration("DETAIL_POLL_INTERVAL", 5*time.Second),
		},

		Auth: Auth{
			JWTSecret: env("JWT_SECRET", ""),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 10*time.Minute),
		},

		Drafts: Drafts{
			Driver: env("DRAFTS_DRIVER", "sqlite3"),
			DSN:    env("DRAFTS_DSN", "file:drafts.db?_busy_timeout=5000"),

			MaxOpenConns:    envInt("DRAFTS_MAX_OPEN_CONNS", 1),
			MaxIdleConns:    envInt("DRAFTS_MAX_IDLE_CONNS", 1),
			ConnMaxLifetime: envDuration("DRAFTS_CONN_MAX_LIFETIME", 0),
		},

		Kafka: Kafka{
			Enabled: envBool("KAFKA_ENABLED", false),
			GroupID: env("KAFKA_GROUP_ID", hostname()),
			Topic:   env("KAFKA_TOPIC", "pickup-events"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 500*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		StrictTransitions: envBool("STRICT_TRANSITIONS", true),
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

// every agent consumes all events, so each gets its own consumer group
func hostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "pickup-agent"
	}
	return "pickup-agent-" + name
}
