// Package config loads and validates bot settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Environment variable names read by Load.
const (
	EnvToken      = "DISCORD_BOT_TOKEN"
	EnvPrefix     = "COMMAND_PREFIX"
	EnvLogLevel   = "LOG_LEVEL"
	EnvLogFile    = "LOG_FILE"
	EnvStatusText = "STATUS_TEXT"
	EnvPort       = "PORT"
)

const (
	DefaultPrefix   = "!"
	DefaultLogLevel = "info"
	DefaultLogFile  = "bot.log"
	DefaultPort     = 8080
)

// Configuration error kinds. Every error returned by Load wraps exactly
// one of these and names the offending environment variable.
var (
	ErrMissingRequired = errors.New("missing required value")
	ErrInvalidFormat   = errors.New("invalid value format")
	ErrOutOfRange      = errors.New("value out of range")
)

// Settings holds the full runtime configuration. Built once at startup
// and never mutated afterwards.
type Settings struct {
	Token      string `validate:"required"`
	Prefix     string `validate:"required"`
	LogLevel   string `validate:"oneof=debug info warn error"`
	LogFile    string `validate:"required"`
	StatusText string
	Port       int `validate:"min=1,max=65535"`
}

// Load reads settings from the environment, applies defaults for the
// optional variables, and validates the result. It performs no network
// activity; a non-nil error here means the process must not connect.
func Load() (Settings, error) {
	s := Settings{
		Token:      strings.TrimSpace(os.Getenv(EnvToken)),
		Prefix:     DefaultPrefix,
		LogLevel:   DefaultLogLevel,
		LogFile:    DefaultLogFile,
		StatusText: strings.TrimSpace(os.Getenv(EnvStatusText)),
		Port:       DefaultPort,
	}

	if v, ok := os.LookupEnv(EnvPrefix); ok {
		s.Prefix = strings.TrimSpace(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		s.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		s.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvPort)); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, fmt.Errorf("%w: %s must be a number, got %q", ErrInvalidFormat, EnvPort, v)
		}
		s.Port = p
	}

	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	err := validator.New().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	// Report the first violation; startup stops on the first bad value
	// anyway, and one precise message beats a wall of them.
	fe := verrs[0]
	name := envName(fe.StructField())

	switch fe.Tag() {
	case "required":
		if fe.StructField() == "Token" {
			return fmt.Errorf("%w: %s is not set", ErrMissingRequired, name)
		}
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidFormat, name)
	case "oneof":
		return fmt.Errorf("%w: %s must be one of debug, info, warn, error", ErrInvalidFormat, name)
	case "min", "max":
		return fmt.Errorf("%w: %s must be between 1 and 65535", ErrOutOfRange, name)
	default:
		return fmt.Errorf("%w: %s failed %s validation", ErrInvalidFormat, name, fe.Tag())
	}
}

func envName(field string) string {
	switch field {
	case "Token":
		return EnvToken
	case "Prefix":
		return EnvPrefix
	case "LogLevel":
		return EnvLogLevel
	case "LogFile":
		return EnvLogFile
	case "Port":
		return EnvPort
	default:
		return field
	}
}
