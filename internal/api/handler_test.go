// The `_test` suffix creates a "black box" test package: only exported
// identifiers of the api package are reachable from here.
package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"boardgame-chatbot/backend/internal/api"
	app_errors "boardgame-chatbot/backend/internal/errors"
	"boardgame-chatbot/backend/internal/interfaces/mocks"
	"boardgame-chatbot/backend/internal/model"
	repomocks "boardgame-chatbot/backend/internal/repository/mocks"
)

type handlerMocks struct {
	recommendations *mocks.MockRecommendationService
	rules           *mocks.MockRuleService
	qa              *repomocks.MockQARepository
}

// setupRouter wires both handlers with mocked dependencies behind the real
// router, so middleware such as panic recovery is part of every test.
func setupRouter(t *testing.T) (http.Handler, handlerMocks) {
	m := handlerMocks{
		recommendations: mocks.NewMockRecommendationService(t),
		rules:           mocks.NewMockRuleService(t),
		qa:              repomocks.NewMockQARepository(t),
	}
	chat := api.NewChatHandler(m.recommendations, m.rules, m.qa)
	info := api.NewInfoHandler(m.recommendations, m.rules, m.qa)
	return api.NewRouter(chat, info, 5*time.Second), m
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

// TestChatHandler_Chat covers POST /api/v1/chat.
//
// GOAL: Verify dispatch by chat type, the session-initialization shortcut, and
// that rule answers from the backend are stored exactly once.
func TestChatHandler_Chat(t *testing.T) {
	t.Run("Recommendation", func(t *testing.T) {
		// ARRANGE
		router, m := setupRouter(t)
		m.recommendations.On("Recommend", mock.Anything, "전략 게임 추천", "s-1").
			Return(&model.ChatResponse{Response: "카탄", SessionID: "s-2", Status: model.StatusSuccess, FromBackend: true}).Once()

		// ACT
		rr := postJSON(t, router, "/api/v1/chat",
			`{"message":"전략 게임 추천","chat_type":"game_recommendation","session_id":"s-1"}`)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, api.ChatReply{Response: "카탄", SessionID: "s-2", Status: "success"}, decode[api.ChatReply](t, rr))
	})

	t.Run("Init session short-circuits", func(t *testing.T) {
		router, m := setupRouter(t)
		m.recommendations.On("Recommend", mock.Anything, "initialize", "").
			Return(&model.ChatResponse{Response: "ignored", SessionID: "fresh-session"}).Once()

		rr := postJSON(t, router, "/api/v1/chat", `{"message":"__INIT_SESSION__","chat_type":"gpt_rules","session_id":""}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, api.ChatReply{Response: "세션이 초기화되었습니다.", SessionID: "fresh-session", Status: "success"}, decode[api.ChatReply](t, rr))
	})

	t.Run("Rules without game never reach a service", func(t *testing.T) {
		router, _ := setupRouter(t)

		rr := postJSON(t, router, "/api/v1/chat", `{"message":"몇 명?","chat_type":"finetuning_rules","session_id":"s-1"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, api.ChatReply{Response: "게임을 먼저 선택해주세요.", SessionID: "s-1", Status: "success"}, decode[api.ChatReply](t, rr))
	})

	t.Run("Backend rule answer is persisted once", func(t *testing.T) {
		router, m := setupRouter(t)
		m.rules.On("AnswerQuestion", mock.Anything, "카탄", "몇 명이 할 수 있어?", model.ChatTypeGPTRules, "s-1").
			Return(&model.ChatResponse{Response: "3-4명", SessionID: "s-1", SessionType: model.SessionTypeGPT, FromBackend: true}).Once()
		m.qa.On("SaveQA", mock.Anything, model.ChatTypeGPTRules, mock.MatchedBy(func(rec *model.QARecord) bool {
			return rec.GameName == "카탄" && rec.Question == "몇 명이 할 수 있어?" && rec.Answer == "3-4명"
		})).Return(nil).Once()

		rr := postJSON(t, router, "/api/v1/chat",
			`{"message":"몇 명이 할 수 있어?","chat_type":"gpt_rules","game_name":"카탄","session_id":"s-1"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "3-4명", decode[api.ChatReply](t, rr).Response)
	})

	t.Run("Fallback rule answer is not persisted", func(t *testing.T) {
		router, m := setupRouter(t)
		m.rules.On("AnswerQuestion", mock.Anything, "카탄", "시간?", model.ChatTypeFinetuning, "s-1").
			Return(&model.ChatResponse{Response: "⚙️ 기본 답변 (AI 서버 연결 불가):\n\n...", SessionID: "s-1"}).Once()

		rr := postJSON(t, router, "/api/v1/chat",
			`{"message":"시간?","chat_type":"finetuning_rules","game_name":"카탄","session_id":"s-1"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		m.qa.AssertNotCalled(t, "SaveQA", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Persistence failure is swallowed", func(t *testing.T) {
		router, m := setupRouter(t)
		m.rules.On("AnswerQuestion", mock.Anything, "아줄", "q", model.ChatTypeGPTRules, "s-1").
			Return(&model.ChatResponse{Response: "a", SessionID: "s-1", FromBackend: true}).Once()
		m.qa.On("SaveQA", mock.Anything, model.ChatTypeGPTRules, mock.Anything).
			Return(app_errors.ErrPersistence).Once()

		rr := postJSON(t, router, "/api/v1/chat", `{"message":"q","chat_type":"gpt_rules","game_name":"아줄","session_id":"s-1"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, api.ChatReply{Response: "a", SessionID: "s-1", Status: "success"}, decode[api.ChatReply](t, rr))
	})

	t.Run("Unknown chat type", func(t *testing.T) {
		router, _ := setupRouter(t)

		rr := postJSON(t, router, "/api/v1/chat", `{"message":"hi","chat_type":"trivia","session_id":"s-1"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "알 수 없는 채팅 타입입니다.", decode[api.ChatReply](t, rr).Response)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		router, _ := setupRouter(t)

		rr := postJSON(t, router, "/api/v1/chat", `{"message":`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		body := decode[api.ErrorResponse](t, rr)
		assert.Equal(t, "error", body.Status)
		assert.NotEmpty(t, body.Error)
	})

	t.Run("Panic becomes a 400", func(t *testing.T) {
		router, m := setupRouter(t)
		m.recommendations.On("Recommend", mock.Anything, "boom", "s-1").Panic("unexpected nil").Once()

		rr := postJSON(t, router, "/api/v1/chat", `{"message":"boom","chat_type":"game_recommendation","session_id":"s-1"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		body := decode[api.ErrorResponse](t, rr)
		assert.Equal(t, "error", body.Status)
		assert.Contains(t, body.Error, "unexpected nil")
	})
}

func TestChatHandler_CloseSession(t *testing.T) {
	t.Run("Missing session id", func(t *testing.T) {
		router, _ := setupRouter(t)

		rr := postJSON(t, router, "/api/v1/session/close", `{}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, api.ErrorResponse{Error: "세션 ID가 필요합니다.", Status: "error"}, decode[api.ErrorResponse](t, rr))
	})

	t.Run("Either service closing is a success", func(t *testing.T) {
		router, m := setupRouter(t)
		m.recommendations.On("CloseSession", mock.Anything, "s-1").Return(false).Once()
		m.rules.On("CloseSession", mock.Anything, "s-1").Return(true).Once()

		rr := postJSON(t, router, "/api/v1/session/close", `{"session_id":"s-1"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, api.CloseSessionResponse{
			Status:  "success",
			Message: "세션 s-1 종료 완료",
			Details: api.CloseSessionDetails{RecommendationService: false, RuleService: true},
		}, decode[api.CloseSessionResponse](t, rr))
	})

	t.Run("Neither service closing is a warning", func(t *testing.T) {
		router, m := setupRouter(t)
		m.recommendations.On("CloseSession", mock.Anything, "s-1").Return(false).Once()
		m.rules.On("CloseSession", mock.Anything, "s-1").Return(false).Once()

		rr := postJSON(t, router, "/api/v1/session/close", `{"session_id":"s-1"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decode[api.CloseSessionResponse](t, rr)
		assert.Equal(t, "warning", body.Status)
		assert.Equal(t, "세션 s-1를 찾을 수 없습니다.", body.Message)
	})
}

func TestChatHandler_RuleSummary(t *testing.T) {
	t.Run("Missing game name", func(t *testing.T) {
		router, _ := setupRouter(t)

		rr := postJSON(t, router, "/api/v1/rule-summary", `{"chat_type":"gpt_rules"}`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "게임 이름이 필요합니다.", decode[api.ErrorResponse](t, rr).Error)
	})

	t.Run("Chat type defaults to gpt", func(t *testing.T) {
		router, m := setupRouter(t)
		m.rules.On("ExplainRules", mock.Anything, "카탄", model.ChatTypeGPTRules, "s-1").
			Return(&model.ChatResponse{Response: "요약", SessionID: "s-9"}).Once()

		rr := postJSON(t, router, "/api/v1/rule-summary", `{"game_name":"카탄","session_id":"s-1"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, api.RuleSummaryResponse{Summary: "요약", GameName: "카탄", SessionID: "s-9", Status: "success"},
			decode[api.RuleSummaryResponse](t, rr))
	})

	t.Run("Finetuning", func(t *testing.T) {
		router, m := setupRouter(t)
		m.rules.On("ExplainRules", mock.Anything, "뱅", model.ChatTypeFinetuning, "").
			Return(&model.ChatResponse{Response: "요약"}).Once()

		rr := postJSON(t, router, "/api/v1/rule-summary", `{"game_name":"뱅","chat_type":"finetuning_rules"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestInfoHandler(t *testing.T) {
	t.Run("Games", func(t *testing.T) {
		router, m := setupRouter(t)
		m.rules.On("Games", mock.Anything).Return([]string{"카탄", "아줄"}).Once()

		rr := get(router, "/api/v1/games")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, api.GamesResponse{Games: []string{"카탄", "아줄"}}, decode[api.GamesResponse](t, rr))
	})

	t.Run("Status", func(t *testing.T) {
		router, m := setupRouter(t)
		m.recommendations.On("Status", mock.Anything).Return(model.ServiceStatus{Status: "healthy", Backend: "runpod"}).Once()
		m.rules.On("Status", mock.Anything).Return(model.ServiceStatus{Status: "error", Backend: "runpod", Error: "down", SessionManagement: "separated"}).Once()

		rr := get(router, "/api/v1/status")

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decode[api.StatusResponse](t, rr)
		assert.Equal(t, "healthy", body.Recommendation.Status)
		assert.Equal(t, "separated", body.Rules.SessionManagement)
	})

	t.Run("QA stats", func(t *testing.T) {
		router, m := setupRouter(t)
		recent := []model.QARecord{{ID: "1", GameName: "카탄", Question: "q", Answer: "a"}}
		m.qa.On("CountQA", mock.Anything, model.ChatTypeGPTRules).Return(4, nil).Once()
		m.qa.On("CountQA", mock.Anything, model.ChatTypeFinetuning).Return(2, nil).Once()
		m.qa.On("RecentQA", mock.Anything, model.ChatTypeGPTRules, 10).Return(recent, nil).Once()
		m.qa.On("RecentQA", mock.Anything, model.ChatTypeFinetuning, 10).Return([]model.QARecord{}, nil).Once()
		m.qa.On("GameRankings", mock.Anything, 10).Return([]model.GameRanking{{GameName: "카탄", GPTCount: 4, FinetuningCount: 2, Total: 6}}, nil).Once()

		rr := get(router, "/api/v1/qa/stats")

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decode[model.QAStats](t, rr)
		assert.Equal(t, 6, body.TotalCount)
		assert.Len(t, body.RecentGPT, 1)
		assert.Equal(t, "카탄", body.Rankings[0].GameName)
	})

	t.Run("QA stats failure", func(t *testing.T) {
		router, m := setupRouter(t)
		m.qa.On("CountQA", mock.Anything, model.ChatTypeGPTRules).Return(0, errors.New("database is locked")).Once()

		rr := get(router, "/api/v1/qa/stats")

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "error", decode[api.ErrorResponse](t, rr).Status)
	})

	t.Run("Liveness", func(t *testing.T) {
		router, _ := setupRouter(t)

		rr := get(router, "/healthz")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})
}
