package repository

import (
	"context"

	"boardgame-chatbot/backend/internal/model"
)

// QARepository stores question/answer pairs from rule-explanation chats.
// Each rule chat type has its own table; records are append-only.
type QARepository interface {
	SaveQA(ctx context.Context, chatType model.ChatType, record *model.QARecord) error
	CountQA(ctx context.Context, chatType model.ChatType) (int, error)
	RecentQA(ctx context.Context, chatType model.ChatType, limit int) ([]model.QARecord, error)
	GameRankings(ctx context.Context, limit int) ([]model.GameRanking, error)
}
