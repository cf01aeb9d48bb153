// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/recipe-box/cliparse"
	"github.com/danielhkuo/recipe-box/data"
	"github.com/danielhkuo/recipe-box/handlers"
	"github.com/danielhkuo/recipe-box/middleware"
	"github.com/danielhkuo/recipe-box/views"
)

// NewRouter registers every route and wraps the mux in the shared
// middleware: WithLogging → RecoverPanic → rate limit → CORS → mux.
func NewRouter(m data.Models, cfg cliparse.Config, renderer views.Renderer) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	recipeHandler := handlers.NewRecipeHandler(m.Recipes, renderer)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Pages
	mux.HandleFunc("GET /{$}", middleware.Handle(recipeHandler.Home))
	mux.HandleFunc("GET /recipes", middleware.Handle(recipeHandler.ListRecipes))
	mux.HandleFunc("GET /recipes/{id}", middleware.Handle(recipeHandler.GetRecipe))

	// Mutations
	mux.HandleFunc("POST /recipes", middleware.Handle(recipeHandler.CreateRecipe))
	mux.HandleFunc("POST /recipes/{id}/edit", middleware.Handle(recipeHandler.EditRecipe))
	mux.HandleFunc("DELETE /recipes/{id}", middleware.Handle(recipeHandler.DeleteRecipe))

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, cfg.TrustProxy)

	// Panics and 429s are logged with a request ID too
	handler := middleware.RecoverPanic(limiter.Middleware(middleware.CORS(mux)))
	return middleware.WithLogging(handler.ServeHTTP)
}
