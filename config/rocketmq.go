package config

import "time"

type RocketMQConfig struct {
	NameServer []string `yaml:"nameserver"`

	Producer Producer `yaml:"producer"`

	// Topic receives comment moderation events.
	Topic string `yaml:"topic"`
}

type Producer struct {
	Group string `yaml:"group"`
	Retry int    `yaml:"retry"`
	// SendTimeout 毫秒, bounds one publish including retries
	SendTimeout int `yaml:"send_timeout"`
}

func (p *Producer) Timeout() time.Duration {
	return time.Duration(p.SendTimeout) * time.Millisecond
}

func ProvideRocketMQConfig(cfg *Config) *RocketMQConfig {
	return cfg.RocketMQ
}
