package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where Load looks when no -config flag is given.
const DefaultConfigPath = "config.yaml"

const (
	defaultPort     = 3000
	defaultViewSalt = "packet-core-view-salt"
)

// Load reads the YAML config file, merges environment overrides, applies
// defaults, and validates. A missing file is fine as long as the environment
// supplies the required values.
func Load(path string) (*AppConfig, error) {
	// .env is optional; real env vars win over it.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to env-only config
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Port = n
		}
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.DSN = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.RedisURL = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.AdminPassword = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("VIEW_SALT"); v != "" {
		cfg.ViewSalt = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitAndTrim(v)
	}

	if v := os.Getenv("S3_ENDPOINT"); v != "" {
		cfg.S3.Endpoint = v
	}
	if v := os.Getenv("S3_ACCESS_KEY_ID"); v != "" {
		cfg.S3.AccessKeyID = v
	}
	if v := os.Getenv("S3_SECRET_ACCESS_KEY"); v != "" {
		cfg.S3.SecretAccessKey = v
	}
	if v := os.Getenv("S3_BUCKET"); v != "" {
		cfg.S3.Bucket = v
	}
	if v := os.Getenv("S3_REGION"); v != "" {
		cfg.S3.Region = v
	}
	if v := os.Getenv("S3_CUSTOM_DOMAIN"); v != "" {
		cfg.S3.CustomDomain = v
	}
	if v := os.Getenv("S3_PATH_STYLE_ACCESS"); v != "" {
		cfg.S3.PathStyleAccess = v == "1" || strings.EqualFold(v, "true")
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.ViewSalt == "" {
		cfg.ViewSalt = defaultViewSalt
	}
}

func (c *AppConfig) validate() error {
	if strings.TrimSpace(c.DSN) == "" {
		return errors.New("config: dsn is required")
	}
	if strings.TrimSpace(c.AdminPassword) == "" {
		return errors.New("config: admin_password is required")
	}
	if c.IsProd() && strings.TrimSpace(c.JWTSecret) == "" {
		return errors.New("config: jwt_secret is required in production")
	}
	return nil
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
