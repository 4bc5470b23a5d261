package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"rookery/internal/api/handlers"
	"rookery/internal/assets"
	"rookery/internal/prefs"
	"rookery/internal/storage"
)

// NewRouter creates and configures the HTTP router with all API routes and
// static serving of the asset tree for the GUI.
func NewRouter(prefStore *prefs.Store, gameStore *storage.Store, scanner *assets.Scanner, assetsDir string) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(RequestLogger)
	r.Use(Recovery)
	r.Use(CORS)

	// API sub-router.
	r.Route("/api", func(api chi.Router) {
		api.Get("/preferences", handlers.GetPreferences(prefStore))
		api.Put("/preferences", handlers.UpdatePreferences(prefStore))

		api.Get("/assets", handlers.GetAssets(scanner))

		api.Get("/games", handlers.ListGames(gameStore))
		api.Post("/games", handlers.SaveGame(gameStore))
		api.Get("/games/{id}", handlers.GetGame(gameStore))
		api.Delete("/games/{id}", handlers.DeleteGame(gameStore))
	})

	// Serve theme images and piece sprites straight from the assets
	// directory so the GUI can load whatever the catalog lists.
	fileServer := http.FileServer(http.Dir(assetsDir))
	r.Handle("/assets/*", http.StripPrefix("/assets/", fileServer))

	return r
}
