package api

import (
	"fmt"
	"net/http"

	app_errors "boardgame-chatbot/backend/internal/errors"
	"boardgame-chatbot/backend/internal/interfaces"
	"boardgame-chatbot/backend/internal/model"
	"boardgame-chatbot/backend/internal/repository"
)

const (
	recentQALimit = 10
	rankingLimit  = 10
)

// InfoHandler serves read-only views: the game catalog, backend status and QA statistics.
type InfoHandler struct {
	recommendations interfaces.RecommendationService
	rules           interfaces.RuleService
	qa              repository.QARepository
}

func NewInfoHandler(recommendations interfaces.RecommendationService, rules interfaces.RuleService, qa repository.QARepository) *InfoHandler {
	return &InfoHandler{recommendations: recommendations, rules: rules, qa: qa}
}

// Games godoc
// @Summary      List supported games
// @Description  Games the rule chatbot can answer questions about.
// @Tags         Rules
// @Produce      json
// @Success      200  {object}  GamesResponse
// @Router       /v1/games [get]
func (h *InfoHandler) Games(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, GamesResponse{Games: h.rules.Games(r.Context())})
}

// Status godoc
// @Summary      AI backend status
// @Tags         System
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /v1/status [get]
func (h *InfoHandler) Status(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	respondWithJSON(w, http.StatusOK, StatusResponse{
		Recommendation: h.recommendations.Status(ctx),
		Rules:          h.rules.Status(ctx),
	})
}

// QAStats godoc
// @Summary      Stored QA statistics
// @Description  Counts, the ten most recent records per table and the ten most asked-about games.
// @Tags         Rules
// @Produce      json
// @Success      200  {object}  model.QAStats
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/qa/stats [get]
func (h *InfoHandler) QAStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var (
		stats model.QAStats
		err   error
	)

	if stats.GPTCount, err = h.qa.CountQA(ctx, model.ChatTypeGPTRules); err != nil {
		respondWithError(w, fmt.Errorf("%w: %w", app_errors.ErrInternal, err))
		return
	}
	if stats.FinetuningCount, err = h.qa.CountQA(ctx, model.ChatTypeFinetuning); err != nil {
		respondWithError(w, fmt.Errorf("%w: %w", app_errors.ErrInternal, err))
		return
	}
	stats.TotalCount = stats.GPTCount + stats.FinetuningCount

	if stats.RecentGPT, err = h.qa.RecentQA(ctx, model.ChatTypeGPTRules, recentQALimit); err != nil {
		respondWithError(w, fmt.Errorf("%w: %w", app_errors.ErrInternal, err))
		return
	}
	if stats.RecentFinetuning, err = h.qa.RecentQA(ctx, model.ChatTypeFinetuning, recentQALimit); err != nil {
		respondWithError(w, fmt.Errorf("%w: %w", app_errors.ErrInternal, err))
		return
	}
	if stats.Rankings, err = h.qa.GameRankings(ctx, rankingLimit); err != nil {
		respondWithError(w, fmt.Errorf("%w: %w", app_errors.ErrInternal, err))
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}
