package scoring

import (
	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/types"
)

// EducationScore evaluates formal education: a fixed score per degree level,
// a capped additive bonus per certification, and a relevance multiplier when
// field-of-study alignment is known.
func EducationScore(rec *types.FeatureRecord, cfg *config.EducationConfig) float64 {
	level := rec.EducationLevel
	if level == "" {
		level = types.EducationNone
	}
	score := cfg.LevelScores[level]

	bonus := float64(len(rec.Certifications)) * cfg.CertificationBonus
	if bonus > cfg.CertificationBonusCap {
		bonus = cfg.CertificationBonusCap
	}
	score += bonus

	if rec.FieldOfStudyRelevant != nil && !*rec.FieldOfStudyRelevant {
		score *= cfg.IrrelevantFieldMultiplier
	}

	return clamp01(score)
}
