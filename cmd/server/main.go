package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/cosmo-mac/cosmos-dungeon/internal/domain"
	"github.com/cosmo-mac/cosmos-dungeon/internal/engine"
	"github.com/cosmo-mac/cosmos-dungeon/internal/server"
	"github.com/cosmo-mac/cosmos-dungeon/internal/version"
	"github.com/cosmo-mac/cosmos-dungeon/pkg/logger"
)

func init() {
	logger.Init()
}

func main() {
	var seed int64
	flag.Int64Var(&seed, "seed", 0, "Master world seed (0 for random)")
	flag.Parse()

	logger.Log.Info("Starting Cosmo's Dungeon server...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit master seed: %d", seed)
	} else {
		logger.Log.Infof("Using random master seed: %d", cfg.Seed)
	}

	port := os.Getenv("COSMO_PORT")
	if port == "" {
		port = "8080"
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	srv := server.New(cfg, domain.DefaultCatalog(), port)
	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.Fatal("Server start error:", err)
		}
	}()

	<-stop
	logger.Log.Info("Shutting down...")
}
