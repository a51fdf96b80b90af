package main

import (
	"log"

	"medimeal/config"
	"medimeal/logger"
	"medimeal/routes"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger.Init(cfg.Production())
	defer logger.Log.Sync()

	if err := config.InitDB(cfg); err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	r := routes.SetupRouter(cfg, config.DB)
	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
