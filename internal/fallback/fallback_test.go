package fallback_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boardgame-chatbot/backend/internal/fallback"
	"boardgame-chatbot/backend/internal/model"
)

func TestRecommend(t *testing.T) {
	tables := fallback.Default()

	testCases := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "strategy keyword",
			query: "전략 게임 추천",
			want: "🎮 기본 추천 (AI 서버 연결 불가):\n\n" +
				"카탄: 전략 게임으로 추천합니다.\n" +
				"윙스팬: 전략 게임으로 추천합니다.\n" +
				"스플렌더: 전략 게임으로 추천합니다.",
		},
		{
			// "2인" is an alias of the two-player rule, which precedes strategy.
			name:  "first match wins",
			query: "2인 전략 게임 추천해줘",
			want: "🎮 기본 추천 (AI 서버 연결 불가):\n\n" +
				"패치워크: 2명 게임으로 추천합니다.\n" +
				"7 원더스 듀얼: 2명 게임으로 추천합니다.\n" +
				"쟤이푸르: 2명 게임으로 추천합니다.",
		},
		{
			name:  "quick games",
			query: "빠른 게임 있어?",
			want: "🎮 기본 추천 (AI 서버 연결 불가):\n\n" +
				"스플렌더: 빠른 게임으로 추천합니다.\n" +
				"아줄: 빠른 게임으로 추천합니다.\n" +
				"킹 오브 도쿄: 빠른 게임으로 추천합니다.",
		},
		{
			name:  "no keyword",
			query: "아무거나",
			want: "🎮 기본 추천 (AI 서버 연결 불가):\n\n" +
				"카탄: 전략적이고 재미있는 게임\n" +
				"스플렌더: 간단하면서도 깊이 있는 게임\n" +
				"아줄: 아름다운 타일 놓기 게임",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tables.Recommend(tc.query))
		})
	}
}

func TestRuleSummary(t *testing.T) {
	tables := fallback.Default()

	assert.Equal(t,
		"🤖 기본 설명 (AI 서버 연결 불가):\n\n아줄은 타일을 배치하여 아름다운 패턴을 만드는 게임입니다. 타일을 선택하고 배치하여 점수를 얻되, 벌점을 피해야 합니다.",
		tables.RuleSummary("아줄", model.SessionTypeGPT))

	assert.Equal(t,
		"⚙️ 기본 설명 (AI 서버 연결 불가):\n\n윙스팬은 흥미로운 보드게임입니다. 정확한 룰은 게임 설명서를 참조해주세요.",
		tables.RuleSummary("윙스팬", model.SessionTypeFinetuning))
}

func TestAnswer(t *testing.T) {
	tables := fallback.Default()

	testCases := []struct {
		question string
		want     string
	}{
		{"몇 명이 할 수 있어?", "카탄은 일반적으로 2-4명이 플레이할 수 있습니다."},
		{"플레이 시간은?", "카탄은 보통 30-60분 정도 소요됩니다."},
		{"난이도 어때?", "카탄은 중간 난이도의 게임입니다."},
		{"몇 살부터? 나이 제한", "카탄은 10세 이상부터 플레이 가능합니다."},
		{"도둑은 어떻게 움직여?", "카탄에 대한 구체적인 답변을 제공하지 못해 죄송합니다. 게임 설명서를 확인하시거나 나중에 다시 시도해주세요."},
	}

	for _, tc := range testCases {
		t.Run(tc.question, func(t *testing.T) {
			got := tables.Answer("카탄", tc.question, model.SessionTypeGPT)
			assert.Equal(t, "🤖 기본 답변 (AI 서버 연결 불가):\n\n"+tc.want, got)
		})
	}

	t.Run("finetuning prefix", func(t *testing.T) {
		got := tables.Answer("뱅", "시간", model.SessionTypeFinetuning)
		assert.Equal(t, "⚙️ 기본 답변 (AI 서버 연결 불가):\n\n뱅은 보통 30-60분 정도 소요됩니다.", got)
	})
}

func TestFallbackGames(t *testing.T) {
	tables := fallback.Default()

	games := tables.FallbackGames()
	assert.Equal(t, []string{
		"카탄", "스플렌더", "아줄", "윙스팬", "뱅",
		"킹 오브 도쿄", "7 원더스", "도미니언", "스몰 월드", "티켓 투 라이드",
	}, games)

	// Callers get a copy.
	games[0] = "changed"
	assert.Equal(t, "카탄", tables.FallbackGames()[0])
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses embedded tables", func(t *testing.T) {
		tables, err := fallback.Load("")
		require.NoError(t, err)
		assert.Len(t, tables.Games, 10)
	})

	t.Run("override file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fallback.yaml")
		content := `
recommendations:
  - label: "가족"
    keywords: ["가족"]
    games: ["우노"]
default_recommendation: ["우노: 누구나 하는 게임"]
generic_summary: "{game} 설명 없음"
generic_answer: "{game} 답변 없음"
games: ["우노"]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		tables, err := fallback.Load(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"우노"}, tables.FallbackGames())
		assert.Equal(t, "🎮 기본 추천 (AI 서버 연결 불가):\n\n우노: 가족 게임으로 추천합니다.", tables.Recommend("가족 게임"))
		assert.Equal(t, "🤖 기본 답변 (AI 서버 연결 불가):\n\n우노 답변 없음", tables.Answer("우노", "?", model.SessionTypeGPT))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := fallback.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid tables are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("games: []\n"), 0o644))

		_, err := fallback.Load(path)
		assert.Error(t, err)
	})
}
