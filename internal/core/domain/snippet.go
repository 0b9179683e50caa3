package domain

import "unicode"

// Ellipsis marks a snippet truncated on that side.
const Ellipsis = "…"

// markToken wraps the matched query occurrence inside an excerpt.
// Markdown emphasis, consumed as-is by the CLI and any UI collaborator.
const markToken = "**"

// Snippet is a bounded excerpt of a page anchored to the matched text.
// Start and End are rune offsets of the window within the source text,
// excluding ellipsis and emphasis markers. Transient, never persisted.
type Snippet struct {
	Excerpt string `json:"excerpt"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

// MakeSnippet extracts a window of up to `window` runes on each side of
// the first case-insensitive occurrence of the raw query within text.
//
// When the query does not occur literally (the scorer may have matched
// on fuzzy overlap), the snippet falls back to the leading `window`
// runes of the page. The literal match, when present, is wrapped in
// emphasis markers with its original casing preserved; an ellipsis is
// prepended or appended whenever the window clips the text on that side.
func MakeSnippet(text, query string, window int) Snippet {
	if window <= 0 {
		window = DefaultWindow
	}

	textRunes := []rune(text)
	if len(textRunes) == 0 {
		return Snippet{}
	}

	queryRunes := []rune(query)
	matchStart := indexFold(textRunes, queryRunes)

	var start, end int
	if matchStart < 0 {
		start, end = 0, min(window, len(textRunes))
	} else {
		start = max(0, matchStart-window)
		end = min(len(textRunes), matchStart+len(queryRunes)+window)
	}

	excerpt := string(textRunes[start:end])
	if matchStart >= 0 {
		excerpt = markFirst(excerpt, queryRunes)
	}
	if start > 0 {
		excerpt = Ellipsis + excerpt
	}
	if end < len(textRunes) {
		excerpt += Ellipsis
	}

	return Snippet{Excerpt: excerpt, Start: start, End: end}
}

// indexFold returns the rune index of the first case-insensitive
// occurrence of query within text, or -1. An empty query never matches.
func indexFold(text, query []rune) int {
	if len(query) == 0 || len(query) > len(text) {
		return -1
	}
	for i := 0; i+len(query) <= len(text); i++ {
		if equalFold(text[i:i+len(query)], query) {
			return i
		}
	}
	return -1
}

func equalFold(a, b []rune) bool {
	for i := range a {
		if unicode.ToLower(a[i]) != unicode.ToLower(b[i]) {
			return false
		}
	}
	return true
}

// markFirst wraps the first case-insensitive occurrence of query within
// excerpt in emphasis markers, keeping the matched text's casing.
func markFirst(excerpt string, query []rune) string {
	runes := []rune(excerpt)
	idx := indexFold(runes, query)
	if idx < 0 {
		return excerpt
	}
	end := idx + len(query)
	return string(runes[:idx]) + markToken + string(runes[idx:end]) + markToken + string(runes[end:])
}
