package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	HttpPort         uint16 `envconfig:"HEALTHFEED_HTTP_SERVER_PORT" default:"8080" required:"true"`
	DefaultFeedLimit int    `envconfig:"HEALTHFEED_DEFAULT_FEED_LIMIT" default:"20"`
	SessionWindow    int    `envconfig:"HEALTHFEED_BODYMAP_SESSION_WINDOW" default:"20"`
	CheckinWindow    int    `envconfig:"HEALTHFEED_CHECKIN_WINDOW" default:"90"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
