package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/riandyrn/otelchi"
	"github.com/rs/cors"
)

type Option func(*config)

type config struct {
	tracing bool
}

func WithTracing(enabled bool) Option {
	return func(c *config) {
		c.tracing = enabled
	}
}

func New(serviceName string, opts ...Option) *chi.Mux {
	cfg := &config{tracing: true}
	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()

	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		Debug:            false,
	}).Handler)

	if cfg.tracing {
		r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	}

	return r
}
