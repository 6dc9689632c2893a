package config

import (
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// ConfigFileEnv names the environment variable pointing at an optional YAML file.
const ConfigFileEnv = "CONFIG_FILE"

const minProductionSecret = 32

type Config struct {
	Port           string        `koanf:"port" validate:"required,numeric"`
	Env            string        `koanf:"env" validate:"required"`
	LogLevel       string        `koanf:"log_level" validate:"oneof=debug info warn error"`
	AuthSecret     string        `koanf:"auth_secret"`
	AuthTokenTTL   time.Duration `koanf:"auth_token_ttl" validate:"gt=0"`
	RateLimitRPS   float64       `koanf:"rate_limit_rps" validate:"gt=0"`
	RateLimitBurst int           `koanf:"rate_limit_burst" validate:"min=1"`
	DefaultLength  int           `koanf:"default_length" validate:"min=1,max=1024"`
	MetricsEnabled bool          `koanf:"metrics_enabled"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Port:           "8080",
		Env:            "development",
		LogLevel:       "info",
		AuthTokenTTL:   24 * time.Hour,
		RateLimitRPS:   10,
		RateLimitBurst: 20,
		DefaultLength:  16,
		MetricsEnabled: true,
	}
}

// IsProduction reports whether the service runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// AuthEnabled reports whether API routes require a bearer token.
func (c Config) AuthEnabled() bool {
	return c.AuthSecret != ""
}

// Load reads dotenv files (".env" when none are given; missing files are
// ignored), then the YAML file named by CONFIG_FILE, then the environment.
// Later sources override earlier ones.
func Load(dotenv ...string) (Config, error) {
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(err, "load dotenv")
	}

	k := koanf.New(".")

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, errors.Wrapf(err, "read config file %s", path)
		}
	}

	known := knownKeys()
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(key)
			if _, ok := known[key]; !ok {
				return "", nil
			}
			return key, value
		},
	}), nil); err != nil {
		return Config{}, errors.Wrap(err, "load env variables")
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field ranges and production-only requirements.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if c.IsProduction() && c.AuthEnabled() && len(c.AuthSecret) < minProductionSecret {
		return errors.Errorf("AUTH_SECRET must be at least %d bytes in production", minProductionSecret)
	}
	return nil
}

func knownKeys() map[string]struct{} {
	return map[string]struct{}{
		"port":             {},
		"env":              {},
		"log_level":        {},
		"auth_secret":      {},
		"auth_token_ttl":   {},
		"rate_limit_rps":   {},
		"rate_limit_burst": {},
		"default_length":   {},
		"metrics_enabled":  {},
	}
}
