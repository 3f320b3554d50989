package onesignal

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	// Application identifier and REST API key:
	// https://documentation.onesignal.com/docs/keys-and-ids
	AppID  string `mapstructure:"app-id"`
	APIKey string `mapstructure:"api-key"`

	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

func NewConfig(src *viper.Viper) (*Config, error) {

	c := &Config{}
	if err := src.Unmarshal(c); err != nil {
		return nil, err
	}

	if len(c.AppID) == 0 {
		return nil, errors.New("invalid `app-id`")
	}

	if len(c.APIKey) == 0 {
		return nil, errors.New("invalid `api-key`")
	}

	return c, nil
}
