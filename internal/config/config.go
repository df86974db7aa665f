package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// MaxBoardSize is the largest board the exhaustive bot search can finish on in request time.
const MaxBoardSize = 3

var (
	ErrInvalidBoardSize = errors.New("invalid board size")
	ErrEmptyRedisHost   = errors.New("redis host is empty")
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis  `yaml:"redis"`
	Game     Game   `yaml:"game"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Game struct {
	BoardSize int           `yaml:"board-size" env:"GAME_BOARD_SIZE" env-default:"3"`
	TTL       time.Duration `yaml:"ttl" env:"GAME_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Game.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Game) validate() error {
	if that.BoardSize < 1 || that.BoardSize > MaxBoardSize {
		return fmt.Errorf("%w: %d, want 1..%d", ErrInvalidBoardSize, that.BoardSize, MaxBoardSize)
	}

	return nil
}

func (that *Redis) GetRedisAddr() (string, error) {
	if that.Host == "" {
		return "", ErrEmptyRedisHost
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port), nil
}
