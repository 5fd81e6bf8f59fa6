package interfaces

import (
	"context"

	"boardgame-chatbot/backend/internal/model"
)

// This file defines the interfaces for our core services.
// The API layer depends on these instead of the concrete services so handlers
// can be tested against mocks.

// RecommendationService answers game recommendation chats.
type RecommendationService interface {
	Recommend(ctx context.Context, query, sessionID string) *model.ChatResponse
	CloseSession(ctx context.Context, sessionID string) bool
	Status(ctx context.Context) model.ServiceStatus
}

// RuleService answers rule-explanation chats for supported games.
type RuleService interface {
	ExplainRules(ctx context.Context, game string, chatType model.ChatType, sessionID string) *model.ChatResponse
	AnswerQuestion(ctx context.Context, game, question string, chatType model.ChatType, sessionID string) *model.ChatResponse
	CloseSession(ctx context.Context, sessionID string) bool
	Status(ctx context.Context) model.ServiceStatus
	Games(ctx context.Context) []string
}
