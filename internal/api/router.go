package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "boardgame-chatbot/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a new chi router with all the application's routes.
// requestTimeout bounds every /api/v1 request and should exceed the backend timeout.
func NewRouter(chatHandler *ChatHandler, infoHandler *InfoHandler, requestTimeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- Public Routes ---
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Liveness probe.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// --- API Version 1 Routes ---
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))
		r.Use(recoverAsBadRequest)

		// --- Chat ---
		r.Post("/chat", chatHandler.Chat)
		r.Post("/session/close", chatHandler.CloseSession)
		r.Post("/rule-summary", chatHandler.RuleSummary)

		// --- Info ---
		r.Get("/games", infoHandler.Games)
		r.Get("/status", infoHandler.Status)
		r.Get("/qa/stats", infoHandler.QAStats)
	})

	return r
}
