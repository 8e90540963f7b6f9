package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env-default:"info"`
	PlayerX  string `yaml:"player-x" env-default:"human"`
	PlayerO  string `yaml:"player-o" env-default:"minimax"`
	Bot      Bot    `yaml:"bot"`
	UI       UI     `yaml:"ui"`
}

type Bot struct {
	MoveDelay time.Duration `yaml:"move-delay" env-default:"400ms"`
	Seed      uint64        `yaml:"seed" env-default:"0"`
}

// UI switches are spelled negatively so that the zero value keeps the
// defaults on; cleanenv treats an explicit false as an unset field.
type UI struct {
	NoColor bool `yaml:"no-color" env-default:"false"`
	NoClear bool `yaml:"no-clear" env-default:"false"`
}

// MustLoad - load all configurations in config.yml file. A missing file is
// fine, the defaults make the game playable out of the box.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load default config: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
