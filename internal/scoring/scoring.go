// Package scoring implements the five ATS resume sub-scorers and their
// weighted aggregation into an overall score and grade. Every function is
// pure: identical inputs produce identical outputs, and no input is mutated.
package scoring

import (
	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/types"
)

// clamp01 bounds a score to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ScoreResume computes the five sub-scores and combines them with the
// configured weights into an overall score and grade. The record must already
// have passed validation.
func ScoreResume(rec *types.FeatureRecord, cfg *config.Config) types.ResumeScore {
	sub := types.SubScores{
		Format:     FormatScore(rec, &cfg.Format),
		Skills:     SkillsScore(rec, &cfg.Skills),
		Experience: ExperienceScore(rec, &cfg.Experience),
		Education:  EducationScore(rec, &cfg.Education),
		Keyword:    KeywordScore(rec, &cfg.Keyword),
	}

	overall := clamp01(cfg.ResumeWeights.Format*sub.Format +
		cfg.ResumeWeights.Skills*sub.Skills +
		cfg.ResumeWeights.Experience*sub.Experience +
		cfg.ResumeWeights.Education*sub.Education +
		cfg.ResumeWeights.Keyword*sub.Keyword)

	return types.ResumeScore{
		OverallScore: overall,
		Grade:        config.LabelFor(cfg.GradeBands, overall),
		SubScores:    sub,
	}
}
