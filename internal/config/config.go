// Package config loads server settings.
//
// Values are resolved in this order, later sources winning:
//
//  1. built-in defaults
//  2. the YAML file named by CONFIG_FILE
//  3. a .env file in the working directory
//  4. process environment variables
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mmynk/recipelist/internal/validation"
)

// Store drivers.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config holds every server setting.
type Config struct {
	Port       int    `yaml:"port" json:"port" validate:"min=1,max=65535"`
	StaticPath string `yaml:"static_path" json:"static_path"`
	LogLevel   string `yaml:"log_level" json:"log_level"`

	Store StoreConfig `yaml:"store" json:"store"`
	Auth  AuthConfig  `yaml:"auth" json:"auth"`
}

// StoreConfig selects and configures the document store.
type StoreConfig struct {
	Driver      string `yaml:"driver" json:"driver" validate:"oneof=sqlite redis memory"`
	DBPath      string `yaml:"db_path" json:"db_path" validate:"required_if=Driver sqlite"`
	RedisAddr   string `yaml:"redis_addr" json:"redis_addr" validate:"required_if=Driver redis"`
	RedisPrefix string `yaml:"redis_prefix" json:"redis_prefix"`
	// StoreRetries is the number of attempts for each store Get and Set.
	StoreRetries uint `yaml:"store_retries" json:"store_retries" validate:"min=1"`
}

// AuthConfig enables passcode unlock. Auth is off when PasscodeHash is empty.
type AuthConfig struct {
	Secret       string        `yaml:"secret" json:"secret" validate:"required_with=PasscodeHash"`
	PasscodeHash string        `yaml:"passcode_hash" json:"passcode_hash"`
	TokenTTL     time.Duration `yaml:"token_ttl" json:"token_ttl" validate:"gt=0"`
}

// Enabled reports whether clients must unlock before calling the API.
func (a AuthConfig) Enabled() bool {
	return a.PasscodeHash != ""
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Port:       8080,
		StaticPath: "./static",
		LogLevel:   "info",
		Store: StoreConfig{
			Driver:       DriverSQLite,
			DBPath:       "./data/recipelist.db",
			RedisPrefix:  "recipelist:",
			StoreRetries: 3,
		},
		Auth: AuthConfig{
			TokenTTL: 30 * 24 * time.Hour,
		},
	}
}

// Load resolves the configuration from CONFIG_FILE, .env and the environment.
func Load() (Config, error) {
	return load(os.Getenv("CONFIG_FILE"), ".env", os.LookupEnv)
}

func load(configFile, dotenvFile string, lookupEnv func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	dotenv := map[string]string{}
	if dotenvFile != "" {
		vars, err := godotenv.Read(dotenvFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read %s: %w", dotenvFile, err)
		}
		if vars != nil {
			dotenv = vars
		}
	}

	env := func(key string) (string, bool) {
		if v, ok := lookupEnv(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
		v, ok := dotenv[key]
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if err := applyEnv(&cfg, env); err != nil {
		return Config{}, err
	}

	if err := validation.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config, env func(string) (string, bool)) error {
	if v, ok := env("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v, ok := env("STATIC_PATH"); ok {
		cfg.StaticPath = v
	}
	if v, ok := env("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := env("STORE_DRIVER"); ok {
		cfg.Store.Driver = strings.ToLower(v)
	}
	if v, ok := env("DB_PATH"); ok {
		cfg.Store.DBPath = v
	}
	if v, ok := env("REDIS_ADDR"); ok {
		cfg.Store.RedisAddr = v
	}
	if v, ok := env("REDIS_PREFIX"); ok {
		cfg.Store.RedisPrefix = v
	}
	if v, ok := env("STORE_RETRIES"); ok {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid STORE_RETRIES %q: %w", v, err)
		}
		cfg.Store.StoreRetries = uint(n)
	}
	if v, ok := env("AUTH_SECRET"); ok {
		cfg.Auth.Secret = v
	}
	if v, ok := env("PASSCODE_HASH"); ok {
		cfg.Auth.PasscodeHash = v
	}
	if v, ok := env("TOKEN_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TOKEN_TTL %q: %w", v, err)
		}
		cfg.Auth.TokenTTL = d
	}
	return nil
}
