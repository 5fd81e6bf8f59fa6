package service

import (
	"context"
	"fmt"
	"log/slog"

	"boardgame-chatbot/backend/internal/fallback"
	"boardgame-chatbot/backend/internal/model"
	"boardgame-chatbot/backend/internal/runpod"
)

// GameCatalog gates rule requests to the games the backend supports.
type GameCatalog interface {
	Games(ctx context.Context) []string
	Contains(ctx context.Context, game string) bool
}

type RuleService struct {
	backend  runpod.Backend
	catalog  GameCatalog
	fallback *fallback.Tables
	opts     Options
}

func NewRuleService(backend runpod.Backend, catalog GameCatalog, tables *fallback.Tables, opts Options) *RuleService {
	return &RuleService{backend: backend, catalog: catalog, fallback: tables, opts: opts}
}

// Games lists the supported games.
func (s *RuleService) Games(ctx context.Context) []string {
	return s.catalog.Games(ctx)
}

// ExplainRules returns a summary of a game's rules.
func (s *RuleService) ExplainRules(ctx context.Context, game string, chatType model.ChatType, sessionID string) *model.ChatResponse {
	sessionType := chatType.SessionType()
	if resp, supported := s.checkSupported(ctx, game, sessionID, sessionType); !supported {
		return resp
	}

	slog.Info("Rule summary requested", "game", game, "session_type", sessionType, "session_id", sessionID)
	res, err := s.backend.RuleSummary(ctx, game, string(sessionType), sessionID)
	if err == nil {
		err = res.Err()
	}
	if err == nil {
		return successResponse(res, sessionID, sessionType, "요약을 가져올 수 없습니다.")
	}

	slog.Error("Rule summary failed", "game", game, "session_type", sessionType, "error", err)
	text := "룰 설명 서비스에 일시적인 문제가 발생했습니다: " + runpod.UserMessage(err)
	if s.opts.UseFallback {
		text = s.fallback.RuleSummary(game, sessionType)
	}
	return degradedResponse(text, sessionID, sessionType)
}

// AnswerQuestion answers a specific question about a game's rules.
func (s *RuleService) AnswerQuestion(ctx context.Context, game, question string, chatType model.ChatType, sessionID string) *model.ChatResponse {
	sessionType := chatType.SessionType()
	if resp, supported := s.checkSupported(ctx, game, sessionID, sessionType); !supported {
		return resp
	}

	slog.Info("Rule question received", "game", game, "session_type", sessionType, "session_id", sessionID)
	res, err := s.backend.ExplainRules(ctx, game, question, string(sessionType), sessionID)
	if err == nil {
		err = res.Err()
	}
	if err == nil {
		return successResponse(res, sessionID, sessionType, "답변을 가져올 수 없습니다.")
	}

	slog.Error("Rule question failed", "game", game, "session_type", sessionType, "error", err)
	text := "룰 질문 답변 서비스에 일시적인 문제가 발생했습니다: " + runpod.UserMessage(err)
	if s.opts.UseFallback {
		text = s.fallback.Answer(game, question, sessionType)
	}
	return degradedResponse(text, sessionID, sessionType)
}

// CloseSession ends a gpt or finetuning session on the backend.
func (s *RuleService) CloseSession(ctx context.Context, sessionID string) bool {
	return closeSession(ctx, s.backend, sessionID, "rules")
}

func (s *RuleService) Status(ctx context.Context) model.ServiceStatus {
	status := backendStatus(ctx, s.backend)
	status.SessionManagement = "separated"
	return status
}

// checkSupported returns a ready response and false when game is not in the catalog.
func (s *RuleService) checkSupported(ctx context.Context, game, sessionID string, sessionType model.SessionType) (*model.ChatResponse, bool) {
	if s.catalog.Contains(ctx, game) {
		return nil, true
	}
	slog.Warn("Unsupported game requested", "game", game)
	return degradedResponse(fmt.Sprintf("'%s' 게임은 현재 지원하지 않습니다.", game), sessionID, sessionType), false
}
