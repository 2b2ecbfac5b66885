package seo

import (
	"fmt"
	"hash/fnv"
)

// KeywordSuggestion is one related keyword with synthetic metrics
type KeywordSuggestion struct {
	Keyword      string `json:"keyword"`
	SearchVolume string `json:"search_volume"`
	Competition  string `json:"competition"`
	Trend        string `json:"trend"`
}

// KeywordResearch is the response of a keyword lookup
type KeywordResearch struct {
	MainKeyword string              `json:"main_keyword"`
	Related     []KeywordSuggestion `json:"related_keywords"`
}

var (
	keywordPrefixes = []string{"best", "effective", "complete"}
	keywordSuffixes = []string{"guide", "tips", "strategy", "review"}
	volumeBands     = []string{"high (10K+)", "medium (1K-10K)", "low (<1K)"}
	competitionBand = []string{"high", "medium", "low"}
)

// ResearchKeywords expands a keyword into related variants. The attached
// volume/competition figures are deterministic synthetic values; a real
// analytics integration replaces this.
func ResearchKeywords(keyword string) *KeywordResearch {
	variants := []string{keyword}
	for _, p := range keywordPrefixes {
		variants = append(variants, p+" "+keyword)
	}
	for _, s := range keywordSuffixes {
		variants = append(variants, keyword+" "+s)
	}
	variants = append(variants, keyword+" for beginners", keyword+" advanced")

	related := make([]KeywordSuggestion, 0, len(variants))
	for _, v := range variants {
		h := hashOf(v)
		trend := "stable"
		if h%3 == 0 {
			trend = "rising"
		}
		related = append(related, KeywordSuggestion{
			Keyword:      v,
			SearchVolume: volumeBands[h%uint32(len(volumeBands))],
			Competition:  competitionBand[(h/3)%uint32(len(competitionBand))],
			Trend:        trend,
		})
	}

	return &KeywordResearch{MainKeyword: keyword, Related: related}
}

func hashOf(s string) uint32 {
	h := fnv.New32a()
	fmt.Fprint(h, s)
	return h.Sum32()
}
