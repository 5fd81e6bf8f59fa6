package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	app_errors "boardgame-chatbot/backend/internal/errors"
	"boardgame-chatbot/backend/internal/interfaces"
	"boardgame-chatbot/backend/internal/model"
	"boardgame-chatbot/backend/internal/repository"
)

// initSessionMessage asks for a fresh backend session without a real question.
const initSessionMessage = "__INIT_SESSION__"

// ChatHandler serves the chat window: messages, session teardown and rule summaries.
type ChatHandler struct {
	recommendations interfaces.RecommendationService
	rules           interfaces.RuleService
	qa              repository.QARepository
}

func NewChatHandler(recommendations interfaces.RecommendationService, rules interfaces.RuleService, qa repository.QARepository) *ChatHandler {
	return &ChatHandler{recommendations: recommendations, rules: rules, qa: qa}
}

// Chat godoc
// @Summary      Send a chat message
// @Description  Routes a message to the recommendation or rule chatbot. Backend failures are answered with fallback text, never with an error status.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      model.ChatRequest  true  "Chat message"
// @Success      200      {object}  ChatReply
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/chat [post]
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload: %v", app_errors.ErrValidation, err))
		return
	}
	ctx := r.Context()
	slog.Info("Chat request", "chat_type", req.ChatType, "session_id", req.SessionID)

	if req.Message == initSessionMessage {
		resp := h.recommendations.Recommend(ctx, "initialize", req.SessionID)
		slog.Info("Session initialized", "session_id", resp.SessionID)
		respondWithJSON(w, http.StatusOK, ChatReply{
			Response:  "세션이 초기화되었습니다.",
			SessionID: resp.SessionID,
			Status:    model.StatusSuccess,
		})
		return
	}

	reply := ChatReply{SessionID: req.SessionID, Status: model.StatusSuccess}
	switch {
	case req.ChatType == model.ChatTypeRecommendation:
		resp := h.recommendations.Recommend(ctx, req.Message, req.SessionID)
		reply.Response, reply.SessionID = resp.Response, resp.SessionID

	case req.ChatType.IsRules():
		if req.GameName == "" {
			reply.Response = "게임을 먼저 선택해주세요."
			break
		}
		resp := h.rules.AnswerQuestion(ctx, req.GameName, req.Message, req.ChatType, req.SessionID)
		reply.Response, reply.SessionID = resp.Response, resp.SessionID
		if resp.FromBackend {
			h.saveQA(ctx, req.ChatType, req.GameName, req.Message, resp.Response)
		}

	default:
		reply.Response = "알 수 없는 채팅 타입입니다."
	}

	respondWithJSON(w, http.StatusOK, reply)
}

// saveQA stores a backend answer. Failures are logged and never reach the client.
func (h *ChatHandler) saveQA(ctx context.Context, chatType model.ChatType, game, question, answer string) {
	rec := &model.QARecord{GameName: game, Question: question, Answer: answer}
	if err := h.qa.SaveQA(ctx, chatType, rec); err != nil {
		slog.Error("Failed to save QA record", "chat_type", chatType, "game", game, "error", err)
		return
	}
	slog.Info("QA record saved", "chat_type", chatType, "game", game, "id", rec.ID)
}

// CloseSession godoc
// @Summary      Close a chat session
// @Description  Asks both services to close the backend session. Succeeds if either one did.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      CloseSessionRequest  true  "Session to close"
// @Success      200      {object}  CloseSessionResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/session/close [post]
func (h *ChatHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	var req CloseSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload: %v", app_errors.ErrValidation, err))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	ctx := r.Context()
	details := CloseSessionDetails{
		RecommendationService: h.recommendations.CloseSession(ctx, req.SessionID),
		RuleService:           h.rules.CloseSession(ctx, req.SessionID),
	}

	resp := CloseSessionResponse{
		Status:  model.StatusSuccess,
		Message: fmt.Sprintf("세션 %s 종료 완료", req.SessionID),
		Details: details,
	}
	if !details.RecommendationService && !details.RuleService {
		resp.Status = model.StatusWarning
		resp.Message = fmt.Sprintf("세션 %s를 찾을 수 없습니다.", req.SessionID)
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// RuleSummary godoc
// @Summary      Summarize a game's rules
// @Tags         Rules
// @Accept       json
// @Produce      json
// @Param        request  body      RuleSummaryRequest  true  "Game to summarize"
// @Success      200      {object}  RuleSummaryResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/rule-summary [post]
func (h *ChatHandler) RuleSummary(w http.ResponseWriter, r *http.Request) {
	var req RuleSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request payload: %v", app_errors.ErrValidation, err))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}
	// Anything but finetuning_rules is a gpt session.
	if req.ChatType != model.ChatTypeFinetuning {
		req.ChatType = model.ChatTypeGPTRules
	}

	resp := h.rules.ExplainRules(r.Context(), req.GameName, req.ChatType, req.SessionID)
	respondWithJSON(w, http.StatusOK, RuleSummaryResponse{
		Summary:   resp.Response,
		GameName:  req.GameName,
		SessionID: resp.SessionID,
		Status:    model.StatusSuccess,
	})
}
