package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solosphere-server/internal/config"
	market "solosphere-server/internal/marketService"
	"solosphere-server/internal/repository"
	"solosphere-server/internal/server"
	"solosphere-server/internal/token"
	"solosphere-server/utils"
)

func main() {
	cfg := config.Load()

	client, err := repository.ConnectMongo(cfg.MongoURI)
	if err != nil {
		utils.Fatal("failed to connect to MongoDB", map[string]any{"error": err.Error()})
	}
	defer func() {
		if err := repository.DisconnectMongo(client); err != nil {
			utils.Error("failed to disconnect from MongoDB", map[string]any{"error": err.Error()})
		}
	}()

	repo := repository.NewMongoRepo(client, cfg.DBName)
	if err := repo.EnsureIndexes(context.Background()); err != nil {
		utils.Fatal("failed to create indexes", map[string]any{"error": err.Error()})
	}

	tokens := token.NewService(cfg.AccessTokenSecret, cfg.TokenTTL())
	marketSvc := market.NewMarketService(repo)
	router := server.SetupRouter(marketSvc, tokens, cfg.IsProduction())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		utils.Info("starting marketplace server", map[string]any{
			"port": cfg.Port,
			"env":  cfg.AppEnv,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server error", map[string]any{"error": err.Error()})
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	utils.Info("shutdown signal received", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.Error("server shutdown error", map[string]any{"error": err.Error()})
	}

	utils.Info("server stopped", nil)
}
