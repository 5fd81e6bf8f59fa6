package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "boardgame-chatbot/backend/internal/errors"
	"boardgame-chatbot/backend/internal/model"
)

var qaTables = map[model.ChatType]string{
	model.ChatTypeGPTRules:   "gpt_rule_qa",
	model.ChatTypeFinetuning: "finetuning_rule_qa",
}

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) QARepository {
	return &sqliteRepository{db: db}
}

func tableFor(chatType model.ChatType) (string, error) {
	table, ok := qaTables[chatType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownChatType, chatType)
	}
	return table, nil
}

// SaveQA inserts record, assigning an id and creation time when unset.
func (r *sqliteRepository) SaveQA(ctx context.Context, chatType model.ChatType, record *model.QARecord) error {
	table, err := tableFor(chatType)
	if err != nil {
		return err
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	query := "INSERT INTO " + table + " (id, game_name, question, answer, created_at) VALUES (?, ?, ?, ?, ?)"
	_, err = r.db.ExecContext(ctx, query, record.ID, record.GameName, record.Question, record.Answer, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: could not insert into %s: %w", apperrors.ErrPersistence, table, err)
	}
	return nil
}

func (r *sqliteRepository) CountQA(ctx context.Context, chatType model.ChatType) (int, error) {
	table, err := tableFor(chatType)
	if err != nil {
		return 0, err
	}
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
		return 0, fmt.Errorf("could not count %s: %w", table, err)
	}
	return count, nil
}

// RecentQA returns up to limit records, newest first.
func (r *sqliteRepository) RecentQA(ctx context.Context, chatType model.ChatType, limit int) ([]model.QARecord, error) {
	table, err := tableFor(chatType)
	if err != nil {
		return nil, err
	}
	query := "SELECT id, game_name, question, answer, created_at FROM " + table + " ORDER BY created_at DESC LIMIT ?"
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("could not query %s: %w", table, err)
	}
	defer rows.Close()

	records := []model.QARecord{}
	for rows.Next() {
		var rec model.QARecord
		if err := rows.Scan(&rec.ID, &rec.GameName, &rec.Question, &rec.Answer, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// GameRankings combines per-game question counts from both tables, most asked first.
func (r *sqliteRepository) GameRankings(ctx context.Context, limit int) ([]model.GameRanking, error) {
	query := `
		SELECT game_name, SUM(gpt) AS gpt_count, SUM(ft) AS finetuning_count, SUM(gpt) + SUM(ft) AS total
		FROM (
			SELECT game_name, 1 AS gpt, 0 AS ft FROM gpt_rule_qa
			UNION ALL
			SELECT game_name, 0 AS gpt, 1 AS ft FROM finetuning_rule_qa
		)
		GROUP BY game_name
		ORDER BY total DESC, game_name ASC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("could not query game rankings: %w", err)
	}
	defer rows.Close()

	rankings := []model.GameRanking{}
	for rows.Next() {
		var g model.GameRanking
		if err := rows.Scan(&g.GameName, &g.GPTCount, &g.FinetuningCount, &g.Total); err != nil {
			return nil, err
		}
		rankings = append(rankings, g)
	}
	return rankings, rows.Err()
}
