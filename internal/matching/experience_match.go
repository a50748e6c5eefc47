package matching

import (
	"math"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"github.com/jonathan/ats-scorer/internal/types"
)

// ExperienceLevelMatch scores how the candidate's seniority band fits the
// job's required level. Exact match is perfect; over-qualification is
// tolerated with a mild step-down per level; under-qualification drops
// steeply per missing level. Jobs without a stated requirement score the
// configured neutral default.
func ExperienceLevelMatch(years float64, required *types.ExperienceLevel, cfg *config.Config) float64 {
	if required == nil {
		return cfg.Match.MissingLevelScore
	}

	candidate := scoring.LevelForYears(years, &cfg.Experience)
	gap := candidate.Rank() - required.Rank()

	switch {
	case gap == 0:
		return 1.0
	case gap > 0:
		return math.Max(cfg.Match.OverQualifiedFloor, 1.0-cfg.Match.OverQualifiedStep*float64(gap))
	default:
		return math.Max(0, 1.0-cfg.Match.UnderQualifiedStep*float64(-gap))
	}
}
