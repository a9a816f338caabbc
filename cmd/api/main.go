package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"standupdash/internal/config"
	"standupdash/internal/handler"
	"standupdash/internal/repository"
	"standupdash/pkg/llm"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	backend, err := llm.NewBackend(context.Background(), cfg)
	if err != nil {
		log.Fatalf("error creating summary backend: %v", err)
	}
	slog.Info("summary backend ready", "provider", backend.Name())

	standupHandler := handler.NewStandupHandler(func() (handler.StandupStore, error) {
		return repository.Open(cfg.DBPath)
	})
	summaryHandler := handler.NewSummaryHandler(llm.NewSummarizer(backend))

	r := gin.Default()

	slog.Info("AllowOrigins URL:", "urls", cfg.AllowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", handler.RequestIDHeader},
	}))
	r.Use(handler.RequestID())

	handler.RegisterRoutes(r, standupHandler, summaryHandler)

	slog.Info("standup API listening", "addr", cfg.Addr(), "db_path", cfg.DBPath)

	err = r.Run(cfg.Addr())
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
