package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/heightweight/pkg/models/domain"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const EnvPrefix = "HEIGHTWEIGHT"

type Config struct {
	LogLevel string         `mapstructure:"log_level" validate:"oneof=trace debug info warn error"`
	Server   ServerConfig   `mapstructure:"server"`
	Sampling SamplingConfig `mapstructure:"sampling"`
	Chart    ChartConfig    `mapstructure:"chart"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"gt=0,lt=65536"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type SamplingConfig struct {
	Count int `mapstructure:"count" validate:"gte=0"`
	// Seed 0 seeds from the clock.
	Seed            uint64   `mapstructure:"seed"`
	PopulationsFile string   `mapstructure:"populations_file"`
	Populations     []string `mapstructure:"populations" validate:"len=2,dive,required"`
}

type ChartConfig struct {
	Width  int `mapstructure:"width" validate:"gt=0"`
	Height int `mapstructure:"height" validate:"gt=0"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("sampling.count", 100)
	v.SetDefault("sampling.seed", 0)
	v.SetDefault("sampling.populations_file", "")
	v.SetDefault("sampling.populations", []string{domain.PopulationMale, domain.PopulationFemale})
	v.SetDefault("chart.width", 960)
	v.SetDefault("chart.height", 500)
}

// Load reads configuration from defaults, the optional config file and
// HEIGHTWEIGHT_* environment variables, in increasing order of precedence.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration after any caller-side overrides.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ApplyServerEnv lets SERVER_HOST and SERVER_PORT win over the loaded server
// settings, then re-validates.
func (c *Config) ApplyServerEnv() error {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid SERVER_PORT %q: %w", port, err)
		}
		c.Server.Port = p
	}
	return c.Validate()
}

func (c ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
