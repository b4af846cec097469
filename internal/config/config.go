package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	Mode     string `yaml:"mode" env:"TICTACTOE_MODE" env-default:"play"`
	Redis    Redis  `yaml:"redis"`
}

// Redis - settings of the optional results feed.
type Redis struct {
	Enabled bool   `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"TICTACTOE_REDIS_CHANNEL" env-default:"tictactoe:results"`
}

// Load - reads the config file, or only the environment if the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
