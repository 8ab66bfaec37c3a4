package main

import (
	"context"

	"leaveflow/internal/app"
	"leaveflow/internal/config"

	"go.uber.org/zap"
)

// seed creates the schema and the demo admin and employee accounts.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunSeed(context.Background(), cfg); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
}
