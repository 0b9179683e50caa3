package domain

// SectionBonus is added to a page's score when the normalised query
// appears as a substring of the page's normalised section label.
// Small relative to the 0-100 base scale.
const SectionBonus = 5

// Score is the relevance of a page for a query, kept as an explicit
// (base, bonus) pair rather than a blended float so that tie-breaking
// and future weighting changes stay auditable.
type Score struct {
	// Base is the fuzzy partial-match ratio in [0, 100] between the
	// normalised query and the normalised page text.
	Base int `json:"base"`

	// Bonus is the section-match bonus, either 0 or SectionBonus.
	Bonus int `json:"bonus"`
}

// Total returns the combined score. A total of zero means the page is
// not a candidate at all, not the weakest candidate.
func (s Score) Total() int {
	return s.Base + s.Bonus
}

// IsCandidate reports whether the page should appear in results.
func (s Score) IsCandidate() bool {
	return s.Total() > 0
}
