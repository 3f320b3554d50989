package worker

import (
	"github.com/pushgate/onesignal-client/pkg/provider/onesignal"
	"github.com/spf13/viper"
)

type Config struct {
	*onesignal.Config `mapstructure:"-"`
	NopMode           bool `mapstructure:"nop-mode"`
	SendSlots         int  `mapstructure:"send-slots"`
}

func NewConfig(src *viper.Viper) (*Config, error) {

	c := &Config{}
	if err := src.Unmarshal(c); err != nil {
		return nil, err
	}

	clientConfig, err := onesignal.NewConfig(src)
	if err != nil {
		return nil, err
	}

	c.Config = clientConfig

	return c, nil
}
