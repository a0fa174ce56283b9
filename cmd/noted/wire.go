//go:build wireinject
// +build wireinject

package main

import (
	"Noted/config"
	"Noted/dao"
	"Noted/dao/cache"
	"Noted/handler"
	"Noted/pkg/client"
	"Noted/pkg/database"
	"Noted/pkg/hashid"
	"Noted/pkg/server"
	"Noted/pkg/session"
	"Noted/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		client.NewRedisClient,
		database.NewDB,
		hashid.NewCodec,
		session.NewManager,
		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Category), "*"),
		wire.Struct(new(handler.Note), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}

func InitInstaller(cfg *config.Config) *service.Installer {
	wire.Build(
		database.NewDB,
		dao.ProviderSet,
		wire.Struct(new(service.Installer), "*"),
	)
	return nil
}

func InitProbe(cfg *config.Config) *server.ProbeProvider {
	wire.Build(
		client.NewRedisClient,
		session.NewManager,
		cache.ProviderSet,

		wire.Struct(new(handler.SessionProbe), "*"),
		server.NewProbeEngine,
		wire.Struct(new(server.ProbeProvider), "*"),
	)
	return nil
}
