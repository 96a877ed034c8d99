package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store selects the profile repository backend.
type Store string

const (
	StoreMemory   Store = "memory"
	StorePostgres Store = "postgres"
	StoreRedis    Store = "redis"
)

// Server captures process-level configuration. Read once at startup.
type Server struct {
	Addr            string
	Store           Store
	ShutdownTimeout time.Duration
	Log             LogConfig
	Database        DatabaseConfig
	Redis           RedisConfig
	Kafka           KafkaConfig
}

type LogConfig struct {
	Level  string
	Format string
}

type DatabaseConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	ConnMaxLife  time.Duration
	Migrate      bool
}

// RedisConfig configures the go-redis client. An empty URL disables Redis.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures event publishing. No brokers disables it.
type KafkaConfig struct {
	Brokers      []string
	ProfileTopic string
	Partitions   int32
	Replication  int16
}

// Enabled reports whether any broker is configured.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// FromEnv builds a Server config from environment variables so main stays lean.
// Malformed numbers and durations fall back to their defaults.
func FromEnv() Server {
	return Server{
		Addr:            getEnvString("PROFILES_ADDR", ":8080"),
		Store:           Store(strings.ToLower(getEnvString("PROFILES_STORE", string(StoreMemory)))),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		Log: LogConfig{
			Level:  getEnvString("LOG_LEVEL", "info"),
			Format: getEnvString("LOG_FORMAT", "json"),
		},
		Database: DatabaseConfig{
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLife:  getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			Migrate:      getEnvString("DB_MIGRATE", "true") == "true",
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     getEnvInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getEnvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getEnvDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getEnvDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:      splitList(os.Getenv("KAFKA_BROKERS")),
			ProfileTopic: getEnvString("KAFKA_PROFILE_TOPIC", "profiles.created"),
			Partitions:   int32(getEnvInt("KAFKA_TOPIC_PARTITIONS", 1)),
			Replication:  int16(getEnvInt("KAFKA_TOPIC_REPLICATION", 1)),
		},
	}
}

// Validate rejects combinations the server cannot start with.
func (s Server) Validate() error {
	var errs []error
	switch s.Store {
	case StoreMemory:
	case StorePostgres:
		if s.Database.URL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when PROFILES_STORE=postgres"))
		}
	case StoreRedis:
		if s.Redis.URL == "" {
			errs = append(errs, errors.New("REDIS_URL is required when PROFILES_STORE=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("PROFILES_STORE must be memory, postgres or redis, got %q", s.Store))
	}
	if s.Kafka.Enabled() && s.Kafka.ProfileTopic == "" {
		errs = append(errs, errors.New("KAFKA_PROFILE_TOPIC is required when KAFKA_BROKERS is set"))
	}
	if s.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

func getEnvString(key, defaultVal string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
