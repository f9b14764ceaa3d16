package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"
	"seoscan/internal/api/v1/router"
	"seoscan/internal/config"
	"seoscan/internal/debug"
	"seoscan/internal/log"
	"seoscan/internal/service"
	"seoscan/internal/ui"
)

func init() {
	log.InitLogger()
	config.LoadEnv()
	if !config.AppConfig.Dev() {
		log.UseProduction()
	}
}

func main() {
	defer log.Sync()

	renderer, err := ui.New()
	if err != nil {
		log.Logger.Fatal("Failed to load templates", zap.Error(err))
	}

	scanner := service.NewScanner(service.Options{ChromeTLS: config.AppConfig.ChromeTLS})

	addr := ":" + strconv.Itoa(config.AppConfig.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router.New(scanner, renderer),
		ReadHeaderTimeout: 5 * time.Second,
	}

	metricsAddr := ":" + strconv.Itoa(config.AppConfig.MetricsPort)
	metricsServer := &http.Server{
		Addr:              metricsAddr,
		Handler:           router.NewMetricsRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Channel to listen for interrupt or terminate signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	//SEO scanner server
	go func() {
		log.Logger.Info("Server started", zap.String("addr", addr), zap.Bool("chrome_tls", config.AppConfig.ChromeTLS))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Pprof only enabled in dev env
	if config.AppConfig.Dev() {
		debug.StartPprof(":6060")
	}

	//Prometheus server
	go func() {
		log.Logger.Info("Metrics server started", zap.String("addr", metricsAddr))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Logger.Fatal("Metrics server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt
	<-stop
	log.Logger.Info("Shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := metricsServer.Shutdown(ctx); err != nil {
		log.Logger.Warn("Metrics server forced to shutdown", zap.Error(err))
	}
	log.Logger.Info("Server exited successfully")
}
