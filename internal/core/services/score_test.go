package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/policyq/policyq-cli/internal/core/domain"
)

func TestNormalizeForMatch(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases",
			input:    "Annual Leave POLICY",
			expected: "annual leave policy",
		},
		{
			name:     "folds full-width alphanumerics",
			input:    "ＡＢＣ１２３",
			expected: "abc123",
		},
		{
			name:     "strips punctuation",
			input:    "有給休暇は、年10日です。",
			expected: "有給休暇は 年10日です",
		},
		{
			name:     "strips brackets",
			input:    "【重要】休暇（有給）について",
			expected: "重要 休暇 有給 について",
		},
		{
			name:     "collapses whitespace",
			input:    "  a \t b  \n c ",
			expected: "a b c",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "punctuation-only input normalises to nothing",
			input:    "、。！？",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeForMatch(tt.input))
		})
	}
}

func TestScorePage_ExactSubstring(t *testing.T) {
	page := domain.PageRecord{Text: "有給休暇は年10日、繰越は翌年度まで可能です。"}

	score := ScorePage(NormalizeForMatch("繰越"), page)

	assert.Equal(t, 100, score.Base, "exact substring scores at the top of the base scale")
	assert.True(t, score.IsCandidate())
}

func TestScorePage_NoOverlap(t *testing.T) {
	page := domain.PageRecord{Text: "completely unrelated western text"}

	score := ScorePage(NormalizeForMatch("繰越"), page)

	assert.Equal(t, 0, score.Total())
	assert.False(t, score.IsCandidate())
}

func TestScorePage_SectionBonus(t *testing.T) {
	page := domain.PageRecord{
		Text:    "有給休暇は年10日付与する。",
		Section: "第10条 有給休暇",
	}

	withBonus := ScorePage(NormalizeForMatch("有給休暇"), page)
	assert.Equal(t, domain.SectionBonus, withBonus.Bonus)

	page.Section = ""
	withoutBonus := ScorePage(NormalizeForMatch("有給休暇"), page)
	assert.Equal(t, 0, withoutBonus.Bonus)
	assert.Equal(t, withBonus.Base, withoutBonus.Base, "bonus never changes the base")
}

func TestScorePage_SectionOnlyMatch(t *testing.T) {
	// The term occurs only in the section label; the bonus alone must
	// keep the page a candidate.
	page := domain.PageRecord{
		Text:    "completely unrelated western text",
		Section: "繰越",
	}

	score := ScorePage(NormalizeForMatch("繰越"), page)

	assert.Equal(t, 0, score.Base)
	assert.Equal(t, domain.SectionBonus, score.Bonus)
	assert.True(t, score.IsCandidate())
}

func TestScorePage_Deterministic(t *testing.T) {
	page := domain.PageRecord{Text: "remote work is allowed two days a week", Section: "2.1 Remote"}
	queryNorm := NormalizeForMatch("remote work")

	first := ScorePage(queryNorm, page)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ScorePage(queryNorm, page))
	}
}

func TestScorePage_EmptyInputs(t *testing.T) {
	assert.Equal(t, domain.Score{}, ScorePage("", domain.PageRecord{Text: "anything"}))

	// An empty page can still earn the section bonus.
	score := ScorePage("leave", domain.PageRecord{Section: "annual leave"})
	assert.Equal(t, 0, score.Base)
	assert.Equal(t, domain.SectionBonus, score.Bonus)
}
