package config

import (
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "WARRANTY"
)

type Config struct {
	Backend string `yaml:"backend" mapstructure:"backend"` // "memory" or "spanner"

	Spanner struct {
		Database string `yaml:"database" mapstructure:"database"`
	} `yaml:"spanner" mapstructure:"spanner"`

	VINDecoder struct {
		BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	} `yaml:"vin_decoder" mapstructure:"vin_decoder"`

	Outbox struct {
		PollInterval time.Duration `yaml:"poll_interval" mapstructure:"poll_interval"`
		BatchSize    int64         `yaml:"batch_size" mapstructure:"batch_size"`
	} `yaml:"outbox" mapstructure:"outbox"`
}

func Get(logger zerolog.Logger) *Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AddConfigPath("./config/")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetDefault("backend", "memory")
	v.SetDefault("outbox.poll_interval", 5*time.Second)
	v.SetDefault("outbox.batch_size", 100)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			logger.Fatal().Err(err).Msg("Failed to read config")
		}
		logger.Debug().Msg("No config file found, using env and defaults")
	}

	for _, key := range v.AllKeys() {
		val := v.Get(key)
		if val == nil {
			continue
		}
		if reflect.TypeOf(val).Kind() == reflect.String {
			v.Set(key, os.ExpandEnv(val.(string)))
		}
	}

	var cfg *Config
	if err := v.Unmarshal(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("Failed to unmarshal config")
	}
	return cfg
}
