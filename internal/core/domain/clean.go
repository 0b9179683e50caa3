package domain

import (
	"regexp"
	"strings"
)

// Boilerplate lines dropped during cleaning: bare page numbers such as
// "- 3 -" or "Page 3". Headers and footers are not reliably
// distinguishable from content, so cleaning beyond this is not attempted.
var (
	pageNumberLine = regexp.MustCompile(`^[-\s]*\d+[-\s]*$`)
	pageLabelLine  = regexp.MustCompile(`(?i)^page\s+\d+$`)
)

// CleanText normalises raw extracted page text: full-width spaces become
// regular spaces, intra-line whitespace is collapsed, blank and bare
// page-number lines are dropped, line order is preserved. The transform
// is lossy: original spacing cannot be recovered from the result.
func CleanText(raw string) string {
	if raw == "" {
		return ""
	}

	raw = strings.ReplaceAll(raw, "　", " ")

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		if pageNumberLine.MatchString(line) || pageLabelLine.MatchString(line) {
			continue
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// sectionSampleLen bounds how far into a page the section detector looks.
const sectionSampleLen = 200

// Clause and heading patterns recognised by InferSection, most specific
// first. Japanese clause markers cover the policy documents this tool
// targets; the numbered and English forms catch translated material.
var sectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`第[一二三四五六七八九十百\d]+条`),
	regexp.MustCompile(`第[一二三四五六七八九十百\d]+章`),
	regexp.MustCompile(`第[一二三四五六七八九十百\d]+節`),
	regexp.MustCompile(`(?i)\barticle\s+\d+`),
	regexp.MustCompile(`(?i)\bsection\s+\d+`),
	regexp.MustCompile(`\d+\.\d+\s+[\p{L}\p{N}]\S*`),
	regexp.MustCompile(`\d+\.\s+[\p{L}\p{N}]\S*`),
}

// InferSection attempts to detect a structural marker near the top of a
// page: a clause number or a heading-like numbered line. It returns the
// matched label, or "" when nothing is found.
//
// This is a best-effort heuristic with no precision guarantee. Absence
// of a label never suppresses a match; it only forfeits the section
// bonus during scoring.
func InferSection(text string) string {
	if text == "" {
		return ""
	}

	sample := text
	if runes := []rune(text); len(runes) > sectionSampleLen {
		sample = string(runes[:sectionSampleLen])
	}

	for _, pattern := range sectionPatterns {
		if match := pattern.FindString(sample); match != "" {
			return strings.TrimSpace(match)
		}
	}
	return ""
}
