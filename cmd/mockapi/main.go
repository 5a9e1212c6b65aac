package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jyush98/jason-co-ecom-sub004/internal/config"
	"github.com/jyush98/jason-co-ecom-sub004/internal/mockapi"
	"github.com/jyush98/jason-co-ecom-sub004/internal/pkg/logger"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Logger
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer sysLogger.Sync()

	// 3. Build and run the mock backend
	srv := mockapi.NewServer(cfg, sysLogger)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("Shutting down mock API...")
		if err := srv.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Mock API listening on :%s", cfg.Mock.Port)
	if err := srv.Listen(); err != nil {
		log.Fatalf("Mock API exited: %v", err)
	}
}
