package churchc

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/xiam/churchc/parser"
	"github.com/xiam/churchc/translator"
)

// DefaultEnvPath is the .env file read by LoadConfig when ENV_PATH is not
// set.
const DefaultEnvPath = ".env"

// Config holds the settings of a compilation session and of the programs
// built around it.
type Config struct {
	MaxDepth   int
	MaxNumeral uint64
	LogLevel   slog.Level
	Port       string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		MaxDepth:   parser.DefaultMaxDepth,
		MaxNumeral: translator.DefaultMaxNumeral,
		LogLevel:   slog.LevelInfo,
		Port:       "8080",
	}
}

// LoadConfig reads the configuration from the environment. Variables missing
// from the environment are looked up in the .env file pointed to by ENV_PATH
// (or DefaultEnvPath); a missing .env file is not an error.
func LoadConfig() (*Config, error) {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = DefaultEnvPath
	}

	dotenv, err := godotenv.Read(envPath)
	if err != nil {
		slog.Debug("Skipping .env ...", "path", envPath, "error", err)
		dotenv = map[string]string{}
	}

	return ParseConfig(func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return dotenv[key]
	})
}

// ParseConfig builds a Config out of the values returned by getenv. Empty
// values keep their defaults.
func ParseConfig(getenv func(string) string) (*Config, error) {
	cfg := DefaultConfig()

	if v := getenv("CHURCHC_MAX_DEPTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid CHURCHC_MAX_DEPTH %q: must be a positive integer", v)
		}
		cfg.MaxDepth = n
	}

	if v := getenv("CHURCHC_MAX_NUMERAL"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid CHURCHC_MAX_NUMERAL %q: %w", v, err)
		}
		cfg.MaxNumeral = n
	}

	if v := getenv("CHURCHC_LOG_LEVEL"); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			return nil, fmt.Errorf("invalid CHURCHC_LOG_LEVEL %q: %w", v, err)
		}
		cfg.LogLevel = level
	}

	if v := getenv("CHURCHC_PORT"); v != "" {
		if err := validatePort(v); err != nil {
			return nil, fmt.Errorf("invalid CHURCHC_PORT: %w", err)
		}
		cfg.Port = v
	}

	return &cfg, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
