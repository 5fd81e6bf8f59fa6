package model

import "time"

// ChatType selects which service, and which QA table, a chat message targets.
type ChatType string

const (
	ChatTypeRecommendation ChatType = "game_recommendation"
	ChatTypeGPTRules       ChatType = "gpt_rules"
	ChatTypeFinetuning     ChatType = "finetuning_rules"
)

// IsRules reports whether the chat type is one of the rule-explanation types.
func (c ChatType) IsRules() bool {
	return c == ChatTypeGPTRules || c == ChatTypeFinetuning
}

// SessionType maps a rule chat type to the backend session bucket.
// Anything other than gpt_rules is treated as finetuning.
func (c ChatType) SessionType() SessionType {
	if c == ChatTypeGPTRules {
		return SessionTypeGPT
	}
	return SessionTypeFinetuning
}

// SessionType is the backend-owned session bucket.
type SessionType string

const (
	SessionTypeRecommendation SessionType = "recommendation"
	SessionTypeGPT            SessionType = "gpt"
	SessionTypeFinetuning     SessionType = "finetuning"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusWarning = "warning"
)

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	Message   string   `json:"message" example:"전략 게임 추천해줘"`
	ChatType  ChatType `json:"chat_type" example:"game_recommendation"`
	GameName  string   `json:"game_name,omitempty" example:"카탄"`
	SessionID string   `json:"session_id"`
}

// ChatResponse is what the domain services hand back to the handlers.
type ChatResponse struct {
	Response    string      `json:"response"`
	SessionID   string      `json:"session_id"`
	SessionType SessionType `json:"session_type"`
	Status      string      `json:"status"`

	// FromBackend is true only when Response was produced by the AI backend.
	FromBackend bool `json:"-"`
}

// QARecord is a persisted question/answer pair from a rule-explanation chat.
type QARecord struct {
	ID        string    `json:"id"`
	GameName  string    `json:"game_name"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

// GameRanking is the combined per-game question count across both QA tables.
type GameRanking struct {
	GameName        string `json:"game_name"`
	GPTCount        int    `json:"gpt_count"`
	FinetuningCount int    `json:"finetuning_count"`
	Total           int    `json:"total"`
}

// QAStats summarizes stored QA records.
type QAStats struct {
	GPTCount         int           `json:"gpt_count"`
	FinetuningCount  int           `json:"finetuning_count"`
	TotalCount       int           `json:"total_count"`
	RecentGPT        []QARecord    `json:"recent_gpt"`
	RecentFinetuning []QARecord    `json:"recent_finetuning"`
	Rankings         []GameRanking `json:"rankings"`
}

// ServiceStatus reports the reachability of the AI backend from a service's view.
type ServiceStatus struct {
	Status            string         `json:"status"`
	Backend           string         `json:"backend"`
	Details           map[string]any `json:"details,omitempty"`
	Error             string         `json:"error,omitempty"`
	SessionManagement string         `json:"session_management,omitempty"`
}
