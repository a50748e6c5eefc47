package scoring

import (
	"strings"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/types"
)

// KeywordScore evaluates keyword density against the optimal band. Both
// under-use and keyword stuffing are penalized: the score is a trapezoid that
// is 1.0 inside [OptimalDensityMin, OptimalDensityMax] and decays linearly to
// 0 at zero density and at the configured upper bound.
func KeywordScore(rec *types.FeatureRecord, cfg *config.KeywordConfig) float64 {
	if rec.RawTextLength <= 0 {
		return 0
	}

	density := float64(relevantKeywordCount(rec.Keywords, cfg.IndustryTerms)) / float64(rec.RawTextLength)

	optMin := cfg.OptimalDensityMin
	optMax := cfg.OptimalDensityMax
	upper := cfg.UpperZeroDensity

	switch {
	case density <= 0:
		return 0
	case density < optMin:
		return clamp01(density / optMin)
	case density <= optMax:
		return 1.0
	case density < upper:
		return clamp01((upper - density) / (upper - optMax))
	default:
		return 0
	}
}

// relevantKeywordCount counts keyword occurrences that match the industry
// term list. With no term list configured, every extracted keyword counts.
// Duplicates count each time; density measures occurrences, not vocabulary.
func relevantKeywordCount(keywords, industryTerms []string) int {
	if len(industryTerms) == 0 {
		return len(keywords)
	}

	terms := make(map[string]bool, len(industryTerms))
	for _, term := range industryTerms {
		terms[strings.ToLower(strings.TrimSpace(term))] = true
	}

	count := 0
	for _, keyword := range keywords {
		if terms[strings.ToLower(strings.TrimSpace(keyword))] {
			count++
		}
	}

	return count
}
