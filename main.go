package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Subhashreel/orders/configs"
	"github.com/Subhashreel/orders/middlewares"
	"github.com/Subhashreel/orders/pkg/metrics"
	"github.com/Subhashreel/orders/routes"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stdout)

	cfg, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)
	gin.SetMode(cfg.GinMode)

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		log.Fatalf("connect database failed: %v", err)
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// HTTP
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middlewares.RequestID(),
		middlewares.RequestLogger(),
		middlewares.CORSMiddleware(cfg.CORSOrigins),
		metrics.PrometheusMiddleware("order-service"),
	)
	if err := routes.RegisterRoutes(r, db, cfg); err != nil {
		log.Fatalf("register routes failed: %v", err)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	go func() {
		log.WithFields(log.Fields{
			"port":      cfg.Port,
			"db_driver": cfg.DBDriver,
			"timezone":  cfg.Timezone,
			"auth":      cfg.AuthEnabled,
		}).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info("server stopped")
}
