package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"
	"versioned-task-api/internal/store"

	"github.com/joho/godotenv"
)

const (
	EnvAPIKey          = "API_PASS_KEY"
	EnvHTTPAddr        = "HTTP_ADDR"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
	EnvSeed            = "TASKS_SEED"
	EnvIDPolicy        = "TASKS_ID_POLICY"
)

var (
	ErrMissingAPIKey = errors.New(EnvAPIKey + " is not set")
	ErrInvalidValue  = errors.New("invalid config value")
)

type Config struct {
	HTTPPort        string
	APIKey          string
	ShutdownTimeout time.Duration
	Seed            bool
	IDPolicy        store.IDPolicy
}

func New() Config {
	return Config{
		HTTPPort:        ":8080",
		ShutdownTimeout: time.Second * 10,
		IDPolicy:        store.IDPolicySize,
	}
}

// Load reads the given .env files, then the process environment, on top of
// the defaults from New. Variables already set in the environment win over
// the files, and a missing file is skipped.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := New()

	cfg.APIKey = os.Getenv(EnvAPIKey)
	if cfg.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	if v := os.Getenv(EnvHTTPAddr); v != "" {
		cfg.HTTPPort = v
	}

	if v := os.Getenv(EnvShutdownTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvShutdownTimeout, v)
		}
		cfg.ShutdownTimeout = d
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, EnvSeed, v)
		}
		cfg.Seed = seed
	}

	policy, err := store.ParseIDPolicy(os.Getenv(EnvIDPolicy))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidValue, EnvIDPolicy, err)
	}
	cfg.IDPolicy = policy

	return cfg, nil
}
