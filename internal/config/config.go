package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	FormatLabel = "label"
	FormatState = "state"
	FormatJSON  = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

type Config struct {
	LogLevel     string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat    string `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	OutputFormat string `yaml:"output-format" env:"OUTPUT_FORMAT" env-default:"label"`
}

// MustLoad - loads the configuration from the yaml file at path, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("could not stat config: %w", err)
		}

		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read env: %w", err)
		}

		return config, config.Validate()
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return config, config.Validate()
}

func (that *Config) Validate() error {
	return ValidateFormat(that.OutputFormat)
}

func ValidateFormat(format string) error {
	switch format {
	case FormatLabel, FormatState, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
