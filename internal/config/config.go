package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	Path       string
	MaxRetries int
}

type Config struct {
	Env                string
	Port               string
	Database           DatabaseConfig
	RedisAddr          string
	JWTSecret          string
	JWTTTL             time.Duration
	CORSAllowedOrigins []string
	AllowAdminSignup   bool
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads .env when present, then the process environment. Environment
// variables win over .env values.
func Load(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "3000")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "leaveflow")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_PATH", "leaveflow.db")
	v.SetDefault("DB_MAX_RETRIES", 5)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("ALLOW_ADMIN_SIGNUP", false)

	cfg := Config{
		Env:  strings.ToLower(v.GetString("APP_ENV")),
		Port: v.GetString("PORT"),
		Database: DatabaseConfig{
			Driver:     strings.ToLower(v.GetString("DB_DRIVER")),
			Host:       v.GetString("DB_HOST"),
			Port:       v.GetString("DB_PORT"),
			User:       v.GetString("DB_USER"),
			Password:   v.GetString("DB_PASSWORD"),
			Name:       v.GetString("DB_NAME"),
			SSLMode:    v.GetString("DB_SSLMODE"),
			Path:       v.GetString("DB_PATH"),
			MaxRetries: v.GetInt("DB_MAX_RETRIES"),
		},
		RedisAddr:          v.GetString("REDIS_ADDR"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		AllowAdminSignup:   v.GetBool("ALLOW_ADMIN_SIGNUP"),
	}

	ttl, err := time.ParseDuration(v.GetString("JWT_TTL"))
	if err != nil || ttl <= 0 {
		return Config{}, fmt.Errorf("invalid JWT_TTL %q", v.GetString("JWT_TTL"))
	}
	cfg.JWTTTL = ttl

	switch cfg.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return Config{}, errors.New("JWT_SECRET is required in production")
		}
		cfg.JWTSecret = "leaveflow-dev-secret"
	}

	return cfg, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
