// Package config loads the service configuration. Every knob has a default
// so the binary runs with no config file at all; a YAML file and RADSITE_*
// environment variables override the defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the site.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
	Dose       DoseConfig       `mapstructure:"dose"`
	Calculator CalculatorConfig `mapstructure:"calculator"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Address      string        `mapstructure:"address"`
	AllowOrigins []string      `mapstructure:"allow_origins"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

func (s ServerConfig) Validate() error {
	if s.Address == "" {
		return fmt.Errorf("server.address must not be empty")
	}
	return nil
}

// TelemetryConfig gates the Prometheus endpoint and collectors.
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DoseConfig parameterises the dose-response chart: the sample grid and the
// default threshold of the linear-threshold model.
type DoseConfig struct {
	DefaultThreshold float64 `mapstructure:"default_threshold"`
	GridFrom         float64 `mapstructure:"grid_from"`
	GridTo           float64 `mapstructure:"grid_to"`
	GridPoints       int     `mapstructure:"grid_points"`
}

func (d DoseConfig) Validate() error {
	if d.DefaultThreshold <= 0 {
		return fmt.Errorf("dose.default_threshold must be > 0")
	}
	if d.GridFrom < 0 {
		return fmt.Errorf("dose.grid_from must be >= 0")
	}
	if d.GridTo <= d.GridFrom {
		return fmt.Errorf("dose.grid_to must be above dose.grid_from")
	}
	if d.GridPoints < 2 {
		return fmt.Errorf("dose.grid_points must be >= 2")
	}
	return nil
}

// CalculatorConfig carries the slider maxima shown on the page. They bound
// the UI only; the estimate endpoint accepts any non-negative counts.
type CalculatorConfig struct {
	MaxFlights int `mapstructure:"max_flights"`
	MaxXRays   int `mapstructure:"max_xrays"`
}

func (c CalculatorConfig) Validate() error {
	if c.MaxFlights <= 0 || c.MaxXRays <= 0 {
		return fmt.Errorf("calculator slider maxima must be > 0")
	}
	return nil
}

// LoadConfig reads configuration from the given file, or from config.yaml in
// the usual locations when path is empty. A missing file is fine; defaults
// cover everything. It panics on a malformed file, matching startup-fatal
// semantics.
func LoadConfig(path string) *Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("server.address", ":8050")
	v.SetDefault("server.allow_origins", []string{"*"})
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("telemetry.enabled", true)
	v.SetDefault("dose.default_threshold", 50.0)
	v.SetDefault("dose.grid_from", 0.0)
	v.SetDefault("dose.grid_to", 100.0)
	v.SetDefault("dose.grid_points", 100)
	v.SetDefault("calculator.max_flights", 50)
	v.SetDefault("calculator.max_xrays", 20)

	if path == "" {
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("RADSITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	// The original deployment configured its port through PORT alone.
	if port := os.Getenv("PORT"); port != "" {
		config.Server.Address = ":" + port
	}

	if err := config.Server.Validate(); err != nil {
		panic(err)
	}
	if err := config.Dose.Validate(); err != nil {
		panic(err)
	}
	if err := config.Calculator.Validate(); err != nil {
		panic(err)
	}

	return &config
}
