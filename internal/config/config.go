package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	DBPath         string
	MigrationsPath string

	// JWT
	JWTSecret  string
	JWTIssuer  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Day boundaries for analytics ranges and per-day buckets
	TimezoneName string
	Location     *time.Location

	// Tracing; an empty endpoint disables the exporter
	OTLPEndpoint string
	ServiceName  string

	// Optional X-API-Key required on /metrics
	MetricsAPIKey string

	ShutdownGrace time.Duration
}

// defaults mirrors the documented environment variables.
var defaults = map[string]any{
	"port":                        "8080",
	"env":                         "development",
	"db_driver":                   "postgres",
	"db_host":                     "localhost",
	"db_port":                     "5432",
	"db_user":                     "budgetly",
	"db_password":                 "budgetly",
	"db_name":                     "budgetly",
	"db_sslmode":                  "disable",
	"db_path":                     "data/budgetly.db",
	"migrations_path":             "migrations",
	"jwt_secret":                  "fallback-secret-key-for-dev-only",
	"jwt_access_ttl":              "15m",
	"jwt_refresh_ttl":             "168h",
	"jwt_issuer":                  "budgetly-api",
	"timezone":                    "UTC",
	"otel_exporter_otlp_endpoint": "",
	"otel_service_name":           "budgetly-api",
	"metrics_api_key":             "",
	"shutdown_grace":              "10s",
}

// Load loads configuration from the environment, an optional .env file
// and an optional config.yaml in the working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:           v.GetString("port"),
		Env:            v.GetString("env"),
		DBDriver:       strings.ToLower(v.GetString("db_driver")),
		DBHost:         v.GetString("db_host"),
		DBPort:         v.GetString("db_port"),
		DBUser:         v.GetString("db_user"),
		DBPassword:     v.GetString("db_password"),
		DBName:         v.GetString("db_name"),
		DBSSLMode:      v.GetString("db_sslmode"),
		DBPath:         v.GetString("db_path"),
		MigrationsPath: v.GetString("migrations_path"),
		JWTSecret:      v.GetString("jwt_secret"),
		JWTIssuer:      v.GetString("jwt_issuer"),
		TimezoneName:   v.GetString("timezone"),
		OTLPEndpoint:   v.GetString("otel_exporter_otlp_endpoint"),
		ServiceName:    v.GetString("otel_service_name"),
		MetricsAPIKey:  v.GetString("metrics_api_key"),
	}

	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use postgres or sqlite)", cfg.DBDriver)
	}

	cfg.AccessTTL = parseDuration(v, "jwt_access_ttl", 15*time.Minute)
	cfg.RefreshTTL = parseDuration(v, "jwt_refresh_ttl", 7*24*time.Hour)
	cfg.ShutdownGrace = parseDuration(v, "shutdown_grace", 10*time.Second)

	loc, err := time.LoadLocation(cfg.TimezoneName)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.TimezoneName, err)
	}
	cfg.Location = loc

	return cfg, nil
}

// parseDuration reads a duration, falling back to def on malformed values.
func parseDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", strings.ToUpper(key), raw, def)
		return def
	}
	return d
}

// PostgresDSN returns the key/value connection string used by the gorm driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// PostgresURL returns the URL form used by golang-migrate.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	return u.String()
}
