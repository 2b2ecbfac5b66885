package seo

import (
	"regexp"
	"strings"
)

var (
	headingRegex  = regexp.MustCompile(`(?m)^#{1,6}\s`)
	sentenceRegex = regexp.MustCompile(`[.!?]+`)
)

// Metrics are the raw measurements behind an analysis
type Metrics struct {
	WordCount        int     `json:"word_count"`
	KeywordCount     int     `json:"keyword_count"`
	KeywordDensity   float64 `json:"keyword_density"`
	HeadingCount     int     `json:"heading_count"`
	ReadabilityScore float64 `json:"readability_score"`
}

// Analysis is the scored result returned to callers
type Analysis struct {
	Keyword         string   `json:"keyword"`
	Score           int      `json:"score"`
	Overall         string   `json:"overall"`
	Metrics         Metrics  `json:"metrics"`
	Recommendations []string `json:"recommendations"`
}

// Analyze scores content against a target keyword using heuristic checks:
// word count, keyword density, keyword placement in the title line, heading
// structure and sentence-length readability.
func Analyze(keyword, content string) *Analysis {
	a := &Analysis{Keyword: keyword}

	words := strings.Fields(content)
	wordCount := len(words)
	keywordCount := strings.Count(strings.ToLower(content), strings.ToLower(keyword))

	var density float64
	if wordCount > 0 {
		density = float64(keywordCount) / float64(wordCount) * 100
	}

	a.Metrics = Metrics{
		WordCount:        wordCount,
		KeywordCount:     keywordCount,
		KeywordDensity:   density,
		HeadingCount:     len(headingRegex.FindAllString(content, -1)),
		ReadabilityScore: readability(content),
	}

	score := 0

	// Recommended range: 300-2000 words
	switch {
	case wordCount >= 300 && wordCount <= 2000:
		score += 20
	case wordCount < 300:
		a.Recommendations = append(a.Recommendations, "Content is too short; write at least 300 words.")
	default:
		a.Recommendations = append(a.Recommendations, "Content is too long; consider trimming below 2000 words.")
	}

	// Recommended density: 1-3%
	switch {
	case density >= 1 && density <= 3:
		score += 25
	case density < 1:
		a.Recommendations = append(a.Recommendations, "Keyword density is low; use the keyword more often.")
	default:
		a.Recommendations = append(a.Recommendations, "Keyword density is high; reduce keyword usage.")
	}

	// Keyword in the title line
	titleLine := content
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		titleLine = content[:idx]
	}
	if strings.Contains(strings.ToLower(titleLine), strings.ToLower(keyword)) {
		score += 20
	} else {
		a.Recommendations = append(a.Recommendations, "Include the keyword in the title.")
	}

	// Heading structure
	if a.Metrics.HeadingCount >= 2 {
		score += 15
	} else {
		a.Recommendations = append(a.Recommendations, "Use headings (H1, H2, H3) to improve structure.")
	}

	// Readability
	if a.Metrics.ReadabilityScore >= 60 {
		score += 20
	} else {
		a.Recommendations = append(a.Recommendations, "Write shorter, simpler sentences to improve readability.")
	}

	if score > 100 {
		score = 100
	}
	a.Score = score

	switch {
	case score >= 80:
		a.Overall = "excellent"
	case score >= 60:
		a.Overall = "good"
	case score >= 40:
		a.Overall = "fair"
	default:
		a.Overall = "needs improvement"
	}

	return a
}

// readability scores content on average sentence length alone. Short
// sentences score high; the bands match common readability guidance.
func readability(content string) float64 {
	sentences := 0
	for _, s := range sentenceRegex.Split(content, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	if sentences == 0 {
		return 0
	}

	avgLen := float64(len(strings.Fields(content))) / float64(sentences)
	switch {
	case avgLen <= 15:
		return 90
	case avgLen <= 20:
		return 80
	case avgLen <= 25:
		return 70
	case avgLen <= 30:
		return 60
	default:
		return 50
	}
}
