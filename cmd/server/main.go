package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/stormhq/storm-admin/auth"
	"github.com/stormhq/storm-admin/internal/backend"
	"github.com/stormhq/storm-admin/internal/config"
	"github.com/stormhq/storm-admin/internal/server"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	auth.SetSecureCookies(cfg.App.Production())

	api := backend.New(cfg.API)
	log.Printf("Starting server env=%s port=%s api=%s", cfg.App.Env, cfg.Server.Port, cfg.API.BaseURL)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      server.New(api),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
