package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	gtfsrtproxy "github.com/theoremus-urban-solutions/gtfsrt-proxy"
	"github.com/theoremus-urban-solutions/gtfsrt-proxy/config"
)

func main() {
	logger := gtfsrtproxy.NewLogger()
	defer func() { _ = logger.Sync() }()

	if err := config.LoadAppConfig(); err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	srv := gtfsrtproxy.NewServer(config.Config, logger)
	go func() {
		if err := srv.Listen(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info("shutdown signal received")
	if err := srv.Shutdown(10 * time.Second); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	} else {
		logger.Info("server shut down successfully")
	}
}
