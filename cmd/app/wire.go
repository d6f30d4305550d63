//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/ai-sitegen/internal/bootstrap"
	"github.com/yanqian/ai-sitegen/internal/domain/contact"
	"github.com/yanqian/ai-sitegen/internal/domain/sitegen"
	"github.com/yanqian/ai-sitegen/internal/infra/config"
	httpiface "github.com/yanqian/ai-sitegen/internal/interface/http"
	"github.com/yanqian/ai-sitegen/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideSitegenConfig,
		provideObjectStorage,
		provideLimiter,
		sitegen.NewService,
		contact.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
