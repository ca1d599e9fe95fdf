package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

type Config struct {
	Primary    Primary      `koanf:"primary"`
	Server     ServerConfig `koanf:"server"`
	BankClient BankConfig   `koanf:"bank_client"`
	Logger     LoggerConfig `koanf:"logger"`
}

type LoggerConfig struct {
	Level  string `koanf:"level" validate:"required"`
	Format string `koanf:"format" validate:"required,oneof=text json"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port           string        `koanf:"port" validate:"required"`
	ReadTimeout    time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout   time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout    time.Duration `koanf:"idle_timeout" validate:"required"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required"`
}

// BankConfig points the gateway at the downstream authorizer.
// A zero Timeout leaves the client without a deadline of its own.
type BankConfig struct {
	BaseURL      string        `koanf:"base_url" validate:"required,url"`
	PaymentsPath string        `koanf:"payments_path" validate:"required"`
	Timeout      time.Duration `koanf:"timeout" validate:"min=0"`
}

// SimulatorConfig configures the stand-alone bank simulator
type SimulatorConfig struct {
	Port   string       `koanf:"port" validate:"required"`
	Logger LoggerConfig `koanf:"logger"`
}

var gatewayDefaults = map[string]any{
	"primary.env":               "development",
	"server.port":               "8090",
	"server.read_timeout":       "10s",
	"server.write_timeout":      "15s",
	"server.idle_timeout":       "60s",
	"server.request_timeout":    "30s",
	"bank_client.base_url":      "http://localhost:8080",
	"bank_client.payments_path": "/payments",
	"bank_client.timeout":       "10s",
	"logger.level":              "info",
	"logger.format":             "text",
}

var simulatorDefaults = map[string]any{
	"port":          "8080",
	"logger.level":  "info",
	"logger.format": "text",
}

// LoadConfig reads the gateway configuration from defaults overlaid with GATEWAY_ variables.
// Nested keys use a double underscore: GATEWAY_BANK_CLIENT__BASE_URL sets bank_client.base_url.
func LoadConfig() (*Config, error) {
	mainConfig := &Config{}
	if err := load("GATEWAY_", gatewayDefaults, mainConfig); err != nil {
		return nil, err
	}
	return mainConfig, nil
}

// LoadSimulatorConfig reads the bank simulator configuration using the SIMULATOR_ prefix
func LoadSimulatorConfig() (*SimulatorConfig, error) {
	simConfig := &SimulatorConfig{}
	if err := load("SIMULATOR_", simulatorDefaults, simConfig); err != nil {
		return nil, err
	}
	return simConfig, nil
}

func load(prefix string, defaults map[string]any, out any) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load default config", "error", err)
		return err
	}

	err := k.Load(env.Provider(prefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, prefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return err
	}

	if err := k.Unmarshal("", out); err != nil {
		logger.Error("could not unmarshal config", "error", err)
		return err
	}

	validate := validator.New()

	if err := validate.Struct(out); err != nil {
		logger.Error("config validation failed", "error", err)
		return err
	}

	return nil
}
