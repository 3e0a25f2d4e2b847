package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Bank     BankConfig     `mapstructure:"bank"`
	Workflow WorkflowConfig `mapstructure:"workflow"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// BankConfig points at the upstream banking backend.
type BankConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RetryCount int           `mapstructure:"retry_count"` // read-only lookups only; submissions are never retried
}

// WorkflowConfig tunes the transfer workflow behavior.
type WorkflowConfig struct {
	RoutingDebounce  time.Duration `mapstructure:"routing_debounce"`
	VerifyDebounce   time.Duration `mapstructure:"verify_debounce"`
	MinAccountNumber int           `mapstructure:"min_account_number"` // minimum account-number length before verification arms
	SessionTTL       time.Duration `mapstructure:"session_ttl"`
	PinHintTTL       time.Duration `mapstructure:"pin_hint_ttl"`
	InternalFeeRate  float64       `mapstructure:"internal_fee_rate"`
	ExternalFeeRate  float64       `mapstructure:"external_fee_rate"`
	InternalTiming   string        `mapstructure:"internal_timing"`
	ExternalTiming   string        `mapstructure:"external_timing"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: TWS_ (Transfer
// Workflow Service). Nested keys use underscore: TWS_BANK_BASE_URL,
// TWS_WORKFLOW_ROUTING_DEBOUNCE, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "transfer_workflow")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("bank.base_url", "http://localhost:9090")
	v.SetDefault("bank.timeout", "15s")
	v.SetDefault("bank.retry_count", 0)
	v.SetDefault("workflow.routing_debounce", "500ms")
	v.SetDefault("workflow.verify_debounce", "400ms")
	v.SetDefault("workflow.min_account_number", 8)
	v.SetDefault("workflow.session_ttl", "30m")
	v.SetDefault("workflow.pin_hint_ttl", "24h")
	v.SetDefault("workflow.internal_fee_rate", 0.0)
	v.SetDefault("workflow.external_fee_rate", 0.015)
	v.SetDefault("workflow.internal_timing", "Instant")
	v.SetDefault("workflow.external_timing", "1-3 business days")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "transfer-workflow-service")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: TWS_BANK_BASE_URL -> bank.base_url
	v.SetEnvPrefix("TWS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
