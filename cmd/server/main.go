package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/acme/dashboard/internal/auth"
	authStore "github.com/acme/dashboard/internal/auth/store"
	"github.com/acme/dashboard/internal/cache"
	"github.com/acme/dashboard/internal/config"
	"github.com/acme/dashboard/internal/database"
	dashHttp "github.com/acme/dashboard/internal/http"
	dashboardHandler "github.com/acme/dashboard/internal/http/dashboard"
	invoicesHandler "github.com/acme/dashboard/internal/http/invoices"
	loginHandler "github.com/acme/dashboard/internal/http/login"
	"github.com/acme/dashboard/internal/http/views"
	"github.com/acme/dashboard/internal/invoice"
	invoiceStore "github.com/acme/dashboard/internal/invoice/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	renderer, err := views.New()
	if err != nil {
		slog.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	var (
		viewCache      = cache.New(rdb, cfg.Redis.ViewTTL)
		invoiceService = invoice.NewService(invoiceStore.New(db), viewCache)
		authService    = auth.NewService(authStore.New(db), cfg.Session.Secret, cfg.Session.TTL)
	)

	var (
		loginH     = loginHandler.NewHandler(authService, renderer)
		dashboardH = dashboardHandler.NewHandler(renderer)
		invoicesH  = invoicesHandler.NewHandler(invoiceService, viewCache, renderer)
	)

	router := dashHttp.New(authService, loginH, dashboardH, invoicesH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
