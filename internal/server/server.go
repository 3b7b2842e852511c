package server

import (
	"fmt"
	"log"
	"net/http"

	"ossutracker/internal/config"
	rtr "ossutracker/internal/router"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func Routes(env *rtr.Env) *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Logger,    // Log API Request Calls
		middleware.Recoverer, // Turn handler panics into 500s
	)

	router.Route("/", func(r chi.Router) {
		r.Mount("/", rtr.HealthRoutes())
	})

	router.Mount("/api", rtr.APIRoutes(env))

	return router
}

// Handler wraps Routes with the CORS policy from cfg.
func Handler(cfg *config.ServerConfig, env *rtr.Env) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedHeaders:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "PATCH"},
		AllowCredentials: true,
	})

	return c.Handler(Routes(env))
}

func Start(cfg *config.ServerConfig, env *rtr.Env) error {
	if cfg == nil {
		log.Panic("❌ Missing or invalid configuration!")
	}

	log.Printf("Server is listening on port %v\n", cfg.Port)
	return http.ListenAndServe(fmt.Sprintf(":%v", cfg.Port), Handler(cfg, env))
}
