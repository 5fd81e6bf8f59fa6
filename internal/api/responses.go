package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	app_errors "boardgame-chatbot/backend/internal/errors"
	"boardgame-chatbot/backend/internal/model"
)

// This file contains shared DTOs (Data Transfer Objects) for API requests and
// responses, and helper functions for sending consistent HTTP responses.

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status string `json:"status" example:"error"`
}

// ChatReply is the body returned by POST /v1/chat.
type ChatReply struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
	Status    string `json:"status" example:"success"`
}

// CloseSessionRequest is the DTO for POST /v1/session/close.
type CloseSessionRequest struct {
	SessionID string `json:"session_id" validate:"required" example:"3f1c2a"`
}

// CloseSessionDetails reports which services closed the session.
type CloseSessionDetails struct {
	RecommendationService bool `json:"recommendation_service"`
	RuleService           bool `json:"rule_service"`
}

// CloseSessionResponse is the body returned by POST /v1/session/close.
type CloseSessionResponse struct {
	Status  string              `json:"status" example:"success"`
	Message string              `json:"message"`
	Details CloseSessionDetails `json:"details"`
}

// RuleSummaryRequest is the DTO for POST /v1/rule-summary.
// ChatType defaults to gpt_rules.
type RuleSummaryRequest struct {
	GameName  string         `json:"game_name" validate:"required" example:"카탄"`
	ChatType  model.ChatType `json:"chat_type" example:"gpt_rules"`
	SessionID string         `json:"session_id"`
}

// RuleSummaryResponse is the body returned by POST /v1/rule-summary.
type RuleSummaryResponse struct {
	Summary   string `json:"summary"`
	GameName  string `json:"game_name"`
	SessionID string `json:"session_id"`
	Status    string `json:"status" example:"success"`
}

// GamesResponse lists the games the rule chatbot supports.
type GamesResponse struct {
	Games []string `json:"games"`
}

// StatusResponse reports the backend status as seen by each service.
type StatusResponse struct {
	Recommendation model.ServiceStatus `json:"recommendation"`
	Rules          model.ServiceStatus `json:"rules"`
}

// respondWithError is the centralized error handling function for the API layer.
// It maps business-layer errors to HTTP status codes and writes a standard
// JSON error body.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		// Validation messages are written for the end user.
		message = strings.TrimPrefix(err.Error(), app_errors.ErrValidation.Error()+": ")
	default:
		// Internal details are logged, never sent to the client.
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message, Status: model.StatusError})
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}
