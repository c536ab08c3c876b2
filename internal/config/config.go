package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Server   Server `yaml:"server"`
	Redis    Redis  `yaml:"redis"`
	Game     Game   `yaml:"game"`
}

type Server struct {
	Enabled  bool   `yaml:"enabled" env:"SERVER_ENABLED" env-default:"false"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Game struct {
	BoardSize int `yaml:"board-size" env:"BOARD_SIZE" env-default:"3"`
}

// MustLoad - load all configurations in config.yml file.
// When the file is absent the defaults and environment are used instead,
// so the console game runs without any setup.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); err != nil {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment config: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
