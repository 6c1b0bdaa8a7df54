package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	App struct {
		Name      string `envconfig:"NAME" default:"crewlink"`
		Timezone  string `envconfig:"TIMEZONE"`
		StatePath string `envconfig:"STATE_PATH" default:"~/.crewlink/state.db"`
		LogLevel  string `envconfig:"LOG_LEVEL"`
		Role      string `envconfig:"ROLE"`
	} `envconfig:"APP"`

	API struct {
		BaseURL        string `envconfig:"BASE_URL" default:"https://api.crewlink.example/api/v1"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS" default:"110"`
		UserAgent      string `envconfig:"USER_AGENT" default:"crewlink-cli"`
	} `envconfig:"API"`

	Cache struct {
		// TTL is the staleness window in seconds for cached query results.
		TTL int `envconfig:"TTL" default:"30"`
	} `envconfig:"CACHE"`

	External struct {
		Otel struct {
			Enable   bool   `envconfig:"ENABLE"`
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Debug().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
