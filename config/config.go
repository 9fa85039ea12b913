package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App      *App            `json:"app" yaml:"app"`
	Server   *Server         `json:"server" yaml:"server"`
	Database *Database       `json:"database" yaml:"database"`
	Redis    *Redis          `json:"redis" yaml:"redis"`
	Jwt      *Jwt            `json:"jwt" yaml:"jwt"`
	RocketMQ *RocketMQConfig `json:"rocketmq" yaml:"rocketmq"`
	Comment  *Comment        `json:"comment" yaml:"comment"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("parse %s: %v", filename, err))
	}

	return conf
}

// Parse decodes a yaml document and fills in defaults for omitted sections.
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal(content, &conf); err != nil {
		return nil, err
	}

	if conf.App == nil {
		conf.App = &App{Env: "dev"}
	}
	if conf.Server == nil {
		conf.Server = &Server{}
	}
	if conf.Server.Http == 0 {
		conf.Server.Http = 8080
	}
	if conf.RocketMQ == nil {
		conf.RocketMQ = &RocketMQConfig{}
	}
	if conf.RocketMQ.Topic == "" {
		conf.RocketMQ.Topic = "comment_moderation"
	}
	if conf.RocketMQ.Producer.SendTimeout <= 0 {
		conf.RocketMQ.Producer.SendTimeout = 1500
	}
	if conf.Comment == nil {
		conf.Comment = &Comment{}
	}
	conf.Comment.fill()

	return &conf, nil
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
