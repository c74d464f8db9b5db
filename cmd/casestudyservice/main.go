package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"casestudy-service/internal/assets"
	"casestudy-service/internal/config"
	"casestudy-service/internal/http"
	"casestudy-service/internal/store"

	"github.com/joho/godotenv"
)

const (
	envFilePath      = ".env"
	serverAddrPrefix = ":"
	signalBufferSize = 1
	logOutputFlags   = log.LstdFlags | log.Lshortfile
)

var shutdownSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}

func main() {
	if err := godotenv.Load(envFilePath); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(logOutputFlags)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Println("Configuration loaded successfully")

	images, err := assets.NewManager(cfg.Storage.UploadsDir)
	if err != nil {
		log.Fatalf("Failed to initialize asset manager: %v", err)
	}

	projects, err := store.New(cfg.Storage.DataDir, images)
	if err != nil {
		log.Fatalf("Failed to initialize project store: %v", err)
	}

	log.Printf("Project store backed by %s", cfg.Storage.DataDir)

	server := http.NewServer(&http.ServerDependencies{
		Config:   cfg,
		Projects: projects,
	})

	go func() {
		log.Printf("Starting HTTP server on port %s", cfg.Server.Port)
		if err := server.Start(serverAddrPrefix + cfg.Server.Port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, signalBufferSize)
	signal.Notify(quit, shutdownSignals...)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
