package services

import (
	"strings"
	"unicode"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"golang.org/x/text/width"

	"github.com/policyq/policyq-cli/internal/core/domain"
)

// NormalizeForMatch applies the scoring normalisation: width folding
// (full-width variants to their half-width forms), lower-casing,
// punctuation stripping and whitespace collapsing.
//
// It must be applied identically to both sides of a comparison;
// ScorePage takes an already-normalised query for exactly that reason.
func NormalizeForMatch(s string) string {
	s = width.Fold.String(s)
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// ScorePage computes the relevance of a page for a normalised query.
// Pure function of its inputs: no hidden state, no randomness.
//
// The base is a fuzzy partial-match ratio in [0, 100]; an exact
// substring occurrence scores at or near 100. The bonus rewards a query
// that appears inside the page's section label. A zero total excludes
// the page from results entirely.
func ScorePage(queryNorm string, page domain.PageRecord) domain.Score {
	if queryNorm == "" {
		return domain.Score{}
	}

	var score domain.Score
	if textNorm := NormalizeForMatch(page.Text); textNorm != "" {
		score.Base = fuzzy.PartialRatio(queryNorm, textNorm)
	}

	if page.Section != "" {
		sectionNorm := NormalizeForMatch(page.Section)
		if sectionNorm != "" && strings.Contains(sectionNorm, queryNorm) {
			score.Bonus = domain.SectionBonus
		}
	}

	return score
}
