package analytics

import (
	"sort"
	"strings"
)

// Words shorter than this never qualify as topic tokens
const minTopicWordLen = 4

// maxTopics caps the frequency-ranked topic list
const maxTopics = 10

// topicStopWords are excluded from topic extraction
var topicStopWords = map[string]struct{}{
	"this": {}, "that": {}, "with": {}, "have": {}, "from": {},
	"they": {}, "what": {}, "about": {}, "would": {},
}

// splitSentences splits text on sentence terminators, collapsing consecutive
// delimiters and dropping whitespace-only fragments. Fragments are trimmed.
func splitSentences(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(fields))
	for _, f := range fields {
		if s := strings.TrimSpace(f); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// extractTopics extracts candidate topic terms by frequency analysis: runs of
// lowercase alphabetic characters of length >= 4, stop-word filtered, ranked
// by frequency with first-seen order breaking ties, capped at 10.
func extractTopics(text string) []string {
	lower := strings.ToLower(text)

	counts := make(map[string]int)
	order := make([]string, 0)

	var run strings.Builder
	flush := func() {
		if run.Len() >= minTopicWordLen {
			word := run.String()
			if _, stop := topicStopWords[word]; !stop {
				if _, seen := counts[word]; !seen {
					order = append(order, word)
				}
				counts[word]++
			}
		}
		run.Reset()
	}

	for _, r := range lower {
		if r >= 'a' && r <= 'z' {
			run.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxTopics {
		order = order[:maxTopics]
	}
	return order
}

// truncateRunes returns the first limit runes of s
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
