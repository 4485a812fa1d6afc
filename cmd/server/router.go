package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/spectrum-api/internal/api"
	apiMiddleware "github.com/phrazzld/spectrum-api/internal/api/middleware"
)

// setupRouter creates the router with all middleware and routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodPost, http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         app.config.CORS.MaxAgeSeconds,
	}))
	r.Use(middleware.RequestSize(app.config.Server.MaxRequestBodyBytes))
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	spectrumHandler := api.NewSpectrumHandler(app.generator)

	r.Route("/api", func(r chi.Router) {
		r.Post("/generateSpectrums", spectrumHandler.GenerateSpectrums)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
