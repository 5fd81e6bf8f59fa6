package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5/middleware"

	app_errors "boardgame-chatbot/backend/internal/errors"
)

// recoverAsBadRequest turns a panic in a JSON endpoint into a 400 error body,
// so the chat window always receives {error, status}.
func recoverAsBadRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			slog.Error("Recovered from handler panic",
				"panic", rec,
				"request_id", middleware.GetReqID(r.Context()),
				"stack", string(debug.Stack()))
			respondWithError(w, fmt.Errorf("%w: %v", app_errors.ErrValidation, rec))
		}()
		next.ServeHTTP(w, r)
	})
}
