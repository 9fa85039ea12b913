//go:build wireinject
// +build wireinject

package main

import (
	"memareh/config"
	"memareh/dao"
	"memareh/dao/cache"
	"memareh/handler"
	"memareh/pkg/client"
	"memareh/pkg/database"
	"memareh/pkg/rocketmq"
	"memareh/pkg/server"
	"memareh/service"

	"github.com/google/wire"
)

var baseSet = wire.NewSet(
	database.NewDB,
	client.NewRedisClient,
	config.ProvideCommentConfig,
	dao.ProviderSet,
	cache.ProviderSet,
	service.ProviderSet,
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		baseSet,
		config.ProvideRocketMQConfig,
		rocketmq.InitProducer,

		wire.Struct(new(handler.Health), "*"),
		wire.Struct(new(handler.ArticleHandler), "*"),
		wire.Struct(new(handler.CommentsHandler), "*"),
		wire.Struct(new(handler.ModerationHandler), "*"),

		wire.Struct(new(server.Handlers), "*"),
		server.NewGinEngine,
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}

func InitMaintenance(cfg *config.Config) *Maintenance {
	wire.Build(
		baseSet,
		wire.Struct(new(Maintenance), "*"),
	)
	return nil
}
