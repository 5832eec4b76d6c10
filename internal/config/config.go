package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string `yaml:"log-level" env-default:"info"`
	HTTPPort          string `yaml:"http-port" env-default:"9090"`
	SocketPort        string `yaml:"socket-port" env-default:"9091"`
	Redis             Redis  `yaml:"redis"`
	Engine            Engine `yaml:"engine"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path" env-default:"./archive.db"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

type Engine struct {
	// DefaultStrategy is used for bot games that do not ask for one.
	DefaultStrategy string `yaml:"default-strategy" env-default:"minimax-ab"`
	// RandomSeed fixes the random strategy when non-zero; zero seeds from time.
	RandomSeed int64 `yaml:"random-seed" env-default:"0"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
