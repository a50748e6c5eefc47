package scoring

import (
	"math"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/types"
)

// ExperienceScore evaluates career depth: logarithmic growth over years of
// experience with diminishing returns toward the configured cap, plus a
// capped bonus for quantified achievements.
func ExperienceScore(rec *types.FeatureRecord, cfg *config.ExperienceConfig) float64 {
	base := 0.0
	if cfg.YearsCap > 0 && rec.YearsOfExperience > 0 {
		base = clamp01(math.Log1p(rec.YearsOfExperience) / math.Log1p(cfg.YearsCap))
	}

	bonus := float64(rec.QuantifiedAchievements) * cfg.AchievementBonus
	if bonus > cfg.AchievementBonusCap {
		bonus = cfg.AchievementBonusCap
	}

	return clamp01(base + bonus)
}

// LevelForYears bands years of experience into a coarse seniority level.
// The same banding is used when matching a resume against a job's required
// experience level.
func LevelForYears(years float64, cfg *config.ExperienceConfig) types.ExperienceLevel {
	switch {
	case years < cfg.EntryMaxYears:
		return types.ExperienceEntry
	case years < cfg.MidMaxYears:
		return types.ExperienceMid
	default:
		return types.ExperienceSenior
	}
}
