// main.go - Entry point for the shop backend server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-shop-backend/config"
	"go-shop-backend/database"
	"go-shop-backend/handlers"
	"go-shop-backend/metrics"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func main() {
	cfg := config.Load()

	var (
		appMetrics    *metrics.AppMetrics
		meterProvider *sdkmetric.MeterProvider
	)
	if cfg.MetricsEnabled {
		var err error
		appMetrics, meterProvider, err = metrics.Init(context.Background(), cfg)
		if err != nil {
			log.Fatal("metrics init error: ", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				log.Printf("error shutting down meter provider: %v", err)
			}
		}()
	} else {
		appMetrics = metrics.Discard()
	}

	if err := database.Connect(cfg.DBPath); err != nil {
		log.Fatal("DB connection error: ", err)
	}

	router := handlers.NewRouter(cfg, database.DB, appMetrics)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("forced shutdown: ", err)
	}
	log.Println("server exited")
}
