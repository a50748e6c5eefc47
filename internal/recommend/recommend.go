// Package recommend derives actionable resume improvement suggestions from
// sub-score deficits. Rules are evaluated in a fixed order so that the same
// scores always produce the same suggestions in the same sequence.
package recommend

import (
	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/types"
)

// rule pairs a sub-score selector and threshold with the message emitted when
// the score falls below it.
type rule struct {
	score     func(types.SubScores) float64
	threshold func(*config.RecommendConfig) float64
	message   string
}

// rules are evaluated in declaration order. A dimension at or above its
// threshold emits nothing.
var rules = []rule{
	{
		score:     func(s types.SubScores) float64 { return s.Format },
		threshold: func(c *config.RecommendConfig) float64 { return c.FormatThreshold },
		message:   "Improve resume format: add clear sections (Summary, Experience, Education, Skills)",
	},
	{
		score:     func(s types.SubScores) float64 { return s.Skills },
		threshold: func(c *config.RecommendConfig) float64 { return c.SkillsThreshold },
		message:   "Add more technical skills relevant to your target roles",
	},
	{
		score:     func(s types.SubScores) float64 { return s.Experience },
		threshold: func(c *config.RecommendConfig) float64 { return c.ExperienceThreshold },
		message:   "Quantify your experience with specific achievements and metrics",
	},
	{
		score:     func(s types.SubScores) float64 { return s.Education },
		threshold: func(c *config.RecommendConfig) float64 { return c.EducationThreshold },
		message:   "Highlight your education and any relevant certifications",
	},
	{
		score:     func(s types.SubScores) float64 { return s.Keyword },
		threshold: func(c *config.RecommendConfig) float64 { return c.KeywordThreshold },
		message:   "Optimize keyword density with industry-specific terms",
	},
}

// Job-gap messages, appended after the sub-score rules.
const (
	msgNoMatches   = "Consider expanding your skill set to match more job opportunities"
	msgWeakMatches = "Focus on skills mentioned in top matching job descriptions"
)

// ForScores returns the recommendations triggered by the resume sub-scores
// alone, in rule order.
func ForScores(scores types.SubScores, cfg *config.RecommendConfig) []string {
	recommendations := make([]string, 0, len(rules))
	for _, r := range rules {
		if r.score(scores) < r.threshold(cfg) {
			recommendations = append(recommendations, r.message)
		}
	}
	return recommendations
}

// ForReport returns the full recommendation set: sub-score rules first, then
// job-gap rules derived from the ranked matches.
func ForReport(scores types.SubScores, matches []types.JobMatch, cfg *config.RecommendConfig) []string {
	recommendations := ForScores(scores, cfg)

	if len(matches) == 0 {
		recommendations = append(recommendations, msgNoMatches)
	} else if matches[0].MatchScore < cfg.WeakTopMatchThreshold {
		recommendations = append(recommendations, msgWeakMatches)
	}

	return recommendations
}
