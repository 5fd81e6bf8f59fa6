// Package fallback holds the static answers served while the AI backend is
// unavailable. The tables ship embedded in the binary and can be replaced by a
// YAML file at startup.
package fallback

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"boardgame-chatbot/backend/internal/model"
)

//go:embed default.yaml
var defaultTables []byte

const (
	recommendPrefix = "🎮 기본 추천 (AI 서버 연결 불가):\n\n"
	unavailable     = "(AI 서버 연결 불가)"
	gamePlaceholder = "{game}"
)

// RecommendationRule maps any of its keywords to a fixed list of games.
type RecommendationRule struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
	Games    []string `yaml:"games"`
}

// AnswerRule answers a rule question containing Keyword.
type AnswerRule struct {
	Keyword  string `yaml:"keyword"`
	Template string `yaml:"template"`
}

type Tables struct {
	Recommendations       []RecommendationRule `yaml:"recommendations"`
	DefaultRecommendation []string             `yaml:"default_recommendation"`
	RuleSummaries         map[string]string    `yaml:"rule_summaries"`
	GenericSummary        string               `yaml:"generic_summary"`
	Answers               []AnswerRule         `yaml:"answers"`
	GenericAnswer         string               `yaml:"generic_answer"`
	Games                 []string             `yaml:"games"`
}

// Default returns the embedded tables.
func Default() *Tables {
	t, err := parse(defaultTables)
	if err != nil {
		panic(fmt.Sprintf("fallback: embedded tables are invalid: %v", err))
	}
	return t
}

// Load reads tables from path, or returns the embedded tables when path is empty.
func Load(path string) (*Tables, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fallback: read %s: %w", path, err)
	}
	t, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("fallback: %s: %w", path, err)
	}
	return t, nil
}

func parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse tables: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tables) validate() error {
	if len(t.Games) == 0 {
		return fmt.Errorf("games list is empty")
	}
	if len(t.DefaultRecommendation) == 0 {
		return fmt.Errorf("default_recommendation is empty")
	}
	if t.GenericSummary == "" || t.GenericAnswer == "" {
		return fmt.Errorf("generic_summary and generic_answer are required")
	}
	for i, r := range t.Recommendations {
		if r.Label == "" || len(r.Keywords) == 0 || len(r.Games) == 0 {
			return fmt.Errorf("recommendation rule %d needs label, keywords and games", i)
		}
	}
	for i, a := range t.Answers {
		if a.Keyword == "" || a.Template == "" {
			return fmt.Errorf("answer rule %d needs keyword and template", i)
		}
	}
	return nil
}

// Recommend builds the fallback recommendation text for query.
// Matching is a case-sensitive substring test; the first rule in table order wins.
func (t *Tables) Recommend(query string) string {
	for _, rule := range t.Recommendations {
		if !containsAny(query, rule.Keywords) {
			continue
		}
		lines := make([]string, 0, len(rule.Games))
		for _, game := range rule.Games {
			lines = append(lines, fmt.Sprintf("%s: %s 게임으로 추천합니다.", game, rule.Label))
		}
		return recommendPrefix + strings.Join(lines, "\n")
	}
	return recommendPrefix + strings.Join(t.DefaultRecommendation, "\n")
}

// RuleSummary returns the canned summary for game, or the generic template.
func (t *Tables) RuleSummary(game string, sessionType model.SessionType) string {
	summary, ok := t.RuleSummaries[game]
	if !ok {
		summary = fill(t.GenericSummary, game)
	}
	return prefix(sessionType, "설명") + summary
}

// Answer returns the templated answer for the first keyword found in question.
func (t *Tables) Answer(game, question string, sessionType model.SessionType) string {
	answer := fill(t.GenericAnswer, game)
	for _, rule := range t.Answers {
		if strings.Contains(question, rule.Keyword) {
			answer = fill(rule.Template, game)
			break
		}
	}
	return prefix(sessionType, "답변") + answer
}

// FallbackGames returns a copy of the catalog used when the backend cannot list games.
func (t *Tables) FallbackGames() []string {
	return append([]string(nil), t.Games...)
}

func prefix(sessionType model.SessionType, kind string) string {
	icon := "⚙️"
	if sessionType == model.SessionTypeGPT {
		icon = "🤖"
	}
	return fmt.Sprintf("%s 기본 %s %s:\n\n", icon, kind, unavailable)
}

func fill(template, game string) string {
	return strings.ReplaceAll(template, gamePlaceholder, game)
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
