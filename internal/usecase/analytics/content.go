package analytics

import (
	"regexp"
	"sort"
	"strings"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
)

const (
	// Topic clustering scans at most this many sentences
	maxClusterSentences = 20
	// At most this many clusters are reported
	maxTopicClusters = 5
	// At most this many decision phrases are reported
	maxDecisionPoints = 5
	// Snippet lengths for cluster sentences and keyword previews
	clusterSnippetLen = 100
	previewSnippetLen = 50
)

// Fixed sentiment word sets; matched by substring containment, not per token
var (
	positiveWords = []string{"good", "great", "excellent", "positive", "success", "happy"}
	negativeWords = []string{"bad", "poor", "negative", "problem", "issue", "concern"}
)

// Decision phrase patterns, applied in declaration order
var decisionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)decided to ([^.!?]+)`),
	regexp.MustCompile(`(?i)agreed that ([^.!?]+)`),
	regexp.MustCompile(`(?i)will ([^.!?]+)`),
	regexp.MustCompile(`(?i)should ([^.!?]+)`),
	regexp.MustCompile(`(?i)going to ([^.!?]+)`),
}

// ContentAnalyzer extracts topic clusters, sentiment trend, keyword samples
// and decision phrases from plain transcript text
type ContentAnalyzer struct{}

// NewContentAnalyzer creates a new ContentAnalyzer
func NewContentAnalyzer() *ContentAnalyzer {
	return &ContentAnalyzer{}
}

// Analyze runs all content heuristics over the transcript text
func (a *ContentAnalyzer) Analyze(text string) entities.ContentAnalysis {
	return entities.ContentAnalysis{
		TopicClusters:    a.clusterTopics(text),
		SentimentTrend:   a.sentimentTrend(text),
		KeywordEvolution: a.keywordEvolution(text),
		QuestionCount:    strings.Count(text, "?"),
		DecisionPoints:   a.decisionPoints(text),
	}
}

// clusterTopics groups sentences into coarse topic clusters by key-token
// overlap. The merge is greedy and order-sensitive: a new cluster folds into
// the first existing cluster sharing at least one key token. This is a cheap
// topic proxy, not a proper similarity clustering.
func (a *ContentAnalyzer) clusterTopics(text string) []entities.TopicCluster {
	sentences := make([]string, 0)
	for _, s := range splitSentences(text) {
		if len(s) > 10 {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) > maxClusterSentences {
		sentences = sentences[:maxClusterSentences]
	}

	candidates := make([]entities.TopicCluster, 0, len(sentences))
	for _, sentence := range sentences {
		words := strings.Fields(strings.ToLower(sentence))
		if len(words) < 4 {
			continue
		}
		keyWords := make([]string, 0, 3)
		for _, w := range words {
			if len(w) > 3 {
				keyWords = append(keyWords, w)
				if len(keyWords) == 3 {
					break
				}
			}
		}
		candidates = append(candidates, entities.TopicCluster{
			Topic:                  strings.Join(keyWords, " "),
			RepresentativeSentence: truncateRunes(sentence, clusterSnippetLen) + "...",
			Frequency:              1,
		})
	}

	merged := make([]entities.TopicCluster, 0, len(candidates))
	for _, candidate := range candidates {
		found := false
		for i := range merged {
			if tokensOverlap(candidate.Topic, merged[i].Topic) {
				merged[i].Frequency++
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, candidate)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Frequency > merged[j].Frequency
	})
	if len(merged) > maxTopicClusters {
		merged = merged[:maxTopicClusters]
	}
	return merged
}

// tokensOverlap reports whether two space-joined token lists share a token
func tokensOverlap(a, b string) bool {
	set := make(map[string]struct{})
	for _, t := range strings.Fields(a) {
		set[t] = struct{}{}
	}
	for _, t := range strings.Fields(b) {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

// sentimentTrend labels the text by a simple majority between fixed positive
// and negative word sets. Containment is checked per word against the whole
// lowercased text, so "goodness" counts as containing "good". Ties are
// neutral.
func (a *ContentAnalyzer) sentimentTrend(text string) string {
	lower := strings.ToLower(text)

	var positive, negative int
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positive++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return entities.SentimentPositive
	case negative > positive:
		return entities.SentimentNegative
	default:
		return entities.SentimentNeutral
	}
}

// keywordEvolution samples sentences at the start, one-third, two-thirds and
// end of the transcript and reports up to 3 long tokens per sample
func (a *ContentAnalyzer) keywordEvolution(text string) []entities.KeywordSample {
	sentences := splitSentences(text)

	samplePoints := []int{0, len(sentences) / 3, 2 * len(sentences) / 3, len(sentences) - 1}
	evolution := make([]entities.KeywordSample, 0, len(samplePoints))

	for _, point := range samplePoints {
		if point < 0 || point >= len(sentences) {
			continue
		}
		sentence := sentences[point]

		keywords := make([]string, 0, 3)
		for _, w := range strings.Fields(sentence) {
			if len(w) > 4 {
				keywords = append(keywords, w)
				if len(keywords) == 3 {
					break
				}
			}
		}

		preview := sentence
		if len([]rune(sentence)) > previewSnippetLen {
			preview = truncateRunes(sentence, previewSnippetLen) + "..."
		}

		evolution = append(evolution, entities.KeywordSample{
			Position:        point,
			Keywords:        keywords,
			SentencePreview: preview,
		})
	}

	return evolution
}

// decisionPoints collects capture groups of the decision phrase patterns
// across the whole text, in pattern declaration order, capped at 5
func (a *ContentAnalyzer) decisionPoints(text string) []string {
	decisions := make([]string, 0, maxDecisionPoints)
	for _, pattern := range decisionPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			decisions = append(decisions, match[1])
			if len(decisions) == maxDecisionPoints {
				return decisions
			}
		}
	}
	return decisions
}
