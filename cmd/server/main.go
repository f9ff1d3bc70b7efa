package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"yatube/internal/config"
	delivery_http "yatube/internal/delivery/http"
	"yatube/internal/delivery/http/middleware"
	"yatube/internal/delivery/http/view"
	metrics_server "yatube/internal/delivery/metrics"
	"yatube/internal/logger"
	prometheus_metrics "yatube/internal/metrics/prometheus"
	group_postgres "yatube/internal/repository/group/postgres"
	post_postgres "yatube/internal/repository/post/postgres"
	user_postgres "yatube/internal/repository/user/postgres"
	group_service "yatube/internal/service/group"
	post_service "yatube/internal/service/post"
	user_service "yatube/internal/service/user"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	migrationsDSN := fmt.Sprintf("pgx5://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	migrator, err := migrate.New("file://"+cfg.Database.MigrationsPath, migrationsDSN)
	if err != nil {
		log.Error("Failed to create migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if srcErr, dbErr := migrator.Close(); srcErr != nil || dbErr != nil {
		log.Error("Failed to close migrator", slog.Any("source_error", srcErr), slog.Any("db_error", dbErr))
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	metrics := prometheus_metrics.NewMetricsProvider()
	metrics.SetServiceHealth(true)

	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	groupRepo := group_postgres.NewGroupRepository(pool, log, metrics)
	userRepo := user_postgres.NewUserRepository(pool, log, metrics)

	postService := post_service.NewPostService(postRepo, groupRepo, userRepo, log, cfg.Pagination.PageSize)
	groupService := group_service.NewGroupService(groupRepo, log)
	userService := user_service.NewUserService(userRepo, log)

	renderer, err := view.LoadTemplates(cfg.Templates.Dir)
	if err != nil {
		log.Error("Failed to load templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	session := middleware.NewSession(cfg.Session.Secret, cfg.Session.Name, cfg.Session.MaxAge)
	validate := validator.New()

	router := delivery_http.NewRouter(postService, groupService, userService, session, renderer, validate, log, metrics)
	httpServer := delivery_http.NewServer(
		router,
		cfg.HTTPServer.Address,
		cfg.HTTPServer.Port,
		time.Duration(cfg.HTTPServer.ReadTimeout)*time.Second,
		time.Duration(cfg.HTTPServer.WriteTimeout)*time.Second,
		log,
	)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}
