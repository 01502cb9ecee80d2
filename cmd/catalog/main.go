package main

import (
	"github.com/vetrovegor/catalog-backend/internal/app"
	"github.com/vetrovegor/catalog-backend/internal/config"
	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()

	log := mustSetupLogger(cfg.Env)
	defer log.Sync()

	log.Info("starting server", zap.String("addr", cfg.HTTPServer.Address), zap.String("env", cfg.Env))

	application := app.NewApp(log, cfg)

	application.MustRun()
}

func mustSetupLogger(env string) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)

	if env == "prod" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}

	if err != nil {
		panic("failed to setup logger: " + err.Error())
	}

	return log
}
