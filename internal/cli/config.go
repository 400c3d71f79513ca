package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/shapesmith/shapesmith/pkg/cache"
	"github.com/shapesmith/shapesmith/pkg/canvas"
	"github.com/shapesmith/shapesmith/pkg/errors"
)

// Config holds user settings loaded from ~/.config/shapesmith/config.toml.
// Environment variables override file values.
type Config struct {
	// Token authenticates against the canvas API.
	Token string `toml:"token"`

	// APIURL overrides the canvas API endpoint.
	APIURL string `toml:"api_url"`

	// RedisAddr enables the shared Redis cache in serve mode.
	RedisAddr string `toml:"redis_addr"`

	// MongoURI enables persistent scene storage in serve mode.
	MongoURI string `toml:"mongo_uri"`
}

// loadConfig reads the config file if present and applies environment
// overrides. A missing file is not an error; everything can come from
// the environment.
func loadConfig() (*Config, error) {
	cfg := &Config{}

	if dir, err := configDir(); err == nil {
		path := filepath.Join(dir, "config.toml")
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, err
			}
		}
	}

	if v := os.Getenv("SHAPESMITH_TOKEN"); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv("SHAPESMITH_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("SHAPESMITH_REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("SHAPESMITH_MONGO_URI"); v != "" {
		cfg.MongoURI = v
	}

	if cfg.APIURL != "" {
		if err := errors.ValidateURL(cfg.APIURL); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// canvasClient builds a canvas API client from config, with the
// document cache attached.
func (cfg *Config) canvasClient(store cache.Cache) *canvas.Client {
	opts := []canvas.Option{canvas.WithCache(store)}
	if cfg.APIURL != "" {
		opts = append(opts, canvas.WithBaseURL(cfg.APIURL))
	}
	return canvas.NewClient(cfg.Token, opts...)
}
