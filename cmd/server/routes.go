package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/newdev/autoflow/internal/config"
	"github.com/newdev/autoflow/internal/features/contact"
	"github.com/newdev/autoflow/internal/features/landing"
	"github.com/newdev/autoflow/internal/webhook"
)

func newRouter(cfg config.Config, loc *time.Location) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.AssetsDir))
	r.Handle("/assets/*", http.StripPrefix("/assets/", fileServer))

	// Initialize handlers
	landingHandler := landing.NewHandler(cfg.SiteURL)
	contactService := contact.NewService(webhook.NewClient(cfg.WebhookTimeout), contact.Options{
		WebhookURL: cfg.SlackWebhookURL,
		LandingURL: cfg.LandingURL,
		Location:   loc,
	})
	contactHandler := contact.NewHandler(contactService, log.Default())

	// =====================
	// PUBLIC ROUTES (Marketing)
	// =====================
	r.Get("/", landingHandler.HandleIndex)
	r.Get("/sitemap.xml", landingHandler.HandleSitemap)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})

	// =====================
	// API ROUTES
	// =====================
	r.Post("/api/contact", contactHandler.HandleSubmit)

	return r
}
