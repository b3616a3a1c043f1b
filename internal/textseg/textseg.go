package textseg

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Fragments shorter than this (after trimming) are headings, bullets or
// stray punctuation, not sentences.
const minSentenceRunes = 10

var (
	whitespaceRE = regexp.MustCompile(`\s+`)
	sentenceRE   = regexp.MustCompile(`[。！？；.!?;\n]+`)
	paragraphRE  = regexp.MustCompile(`\n\s*\n`)
	headingRE    = regexp.MustCompile(`^#+\s*`)
	outlineRE    = regexp.MustCompile(`^[（(]?[一二三四五六七八九十0-9]+[、.．)）]`)
)

// Normalize collapses every whitespace run (including newlines) to nothing,
// so line wrapping never affects character-level signals.
func Normalize(text string) string {
	return whitespaceRE.ReplaceAllString(text, "")
}

// Sentences splits text on runs of terminal punctuation or newlines and keeps
// fragments of at least 10 runes.
func Sentences(text string) []string {
	var out []string
	for _, part := range sentenceRE.Split(text, -1) {
		part = strings.TrimSpace(part)
		if utf8.RuneCountInString(part) >= minSentenceRunes {
			out = append(out, part)
		}
	}
	return out
}

// Paragraphs splits text on blank-line runs and keeps non-empty trimmed blocks.
func Paragraphs(text string) []string {
	var out []string
	for _, part := range paragraphRE.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// HeadingSignature collects markdown headings (marker stripped) and
// numbered/CJK-numbered outline lines into a single delimiter-joined string.
// It captures the document's outline shape independent of body prose.
func HeadingSignature(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		s := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(s, "#"):
			lines = append(lines, headingRE.ReplaceAllString(s, ""))
		case outlineRE.MatchString(s):
			lines = append(lines, s)
		}
	}
	return strings.Join(lines, " | ")
}

// RuneLen returns the rune count of s. All character-level measurements in
// the gate count runes, not bytes.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
