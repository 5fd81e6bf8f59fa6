package service

import (
	"context"
	"log/slog"

	"boardgame-chatbot/backend/internal/fallback"
	"boardgame-chatbot/backend/internal/model"
	"boardgame-chatbot/backend/internal/runpod"
)

const backendName = "runpod"

// Options controls how the domain services behave when the backend fails.
type Options struct {
	UseFallback bool
	TopK        int
}

type RecommendationService struct {
	backend  runpod.Backend
	fallback *fallback.Tables
	opts     Options
}

func NewRecommendationService(backend runpod.Backend, tables *fallback.Tables, opts Options) *RecommendationService {
	return &RecommendationService{backend: backend, fallback: tables, opts: opts}
}

// Recommend asks the backend for game recommendations. It never fails: when the
// backend cannot answer, the response carries fallback or apology text and the
// caller's session id.
func (s *RecommendationService) Recommend(ctx context.Context, query, sessionID string) *model.ChatResponse {
	slog.Info("Game recommendation requested", "session_id", sessionID)

	res, err := s.backend.Recommend(ctx, query, sessionID, s.opts.TopK)
	if err == nil {
		err = res.Err()
	}
	if err == nil {
		resp := successResponse(res, sessionID, model.SessionTypeRecommendation, "추천을 가져올 수 없습니다.")
		slog.Info("Game recommendation completed", "session_id", resp.SessionID)
		return resp
	}

	slog.Error("Game recommendation failed", "session_id", sessionID, "error", err)
	text := "게임 추천 서비스에 일시적인 문제가 발생했습니다: " + runpod.UserMessage(err)
	if s.opts.UseFallback {
		text = s.fallback.Recommend(query)
	}
	return degradedResponse(text, sessionID, model.SessionTypeRecommendation)
}

// CloseSession ends a recommendation session on the backend. Failures are
// logged and reported as false.
func (s *RecommendationService) CloseSession(ctx context.Context, sessionID string) bool {
	return closeSession(ctx, s.backend, sessionID, model.SessionTypeRecommendation)
}

func (s *RecommendationService) Status(ctx context.Context) model.ServiceStatus {
	return backendStatus(ctx, s.backend)
}

func successResponse(res *runpod.Result, sessionID string, sessionType model.SessionType, emptyText string) *model.ChatResponse {
	text := res.Text
	if text == "" {
		text = emptyText
	}
	if res.SessionID != "" {
		sessionID = res.SessionID
	}
	return &model.ChatResponse{
		Response:    text,
		SessionID:   sessionID,
		SessionType: sessionType,
		Status:      model.StatusSuccess,
		FromBackend: true,
	}
}

func degradedResponse(text, sessionID string, sessionType model.SessionType) *model.ChatResponse {
	return &model.ChatResponse{
		Response:    text,
		SessionID:   sessionID,
		SessionType: sessionType,
		Status:      model.StatusSuccess,
	}
}

func closeSession(ctx context.Context, backend runpod.Backend, sessionID string, sessionType model.SessionType) bool {
	slog.Info("Closing session", "session_id", sessionID, "session_type", sessionType)
	ok, err := backend.CloseSession(ctx, sessionID)
	if err != nil {
		slog.Error("Failed to close session", "session_id", sessionID, "session_type", sessionType, "error", err)
		return false
	}
	return ok
}

func backendStatus(ctx context.Context, backend runpod.Backend) model.ServiceStatus {
	health, err := backend.Health(ctx)
	if err != nil {
		return model.ServiceStatus{
			Status:  model.StatusError,
			Backend: backendName,
			Error:   err.Error(),
		}
	}
	status := "degraded"
	if health["status"] == "healthy" {
		status = "healthy"
	}
	return model.ServiceStatus{
		Status:  status,
		Backend: backendName,
		Details: health,
	}
}
