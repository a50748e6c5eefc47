package matching

import (
	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/types"
)

// SkillsCompatibility is the fraction of the job's required skills the
// candidate holds, after canonical normalization on both sides. A job with no
// required skills yields the configured neutral score rather than dividing by
// zero. Adding skills to the resume never lowers the result.
func SkillsCompatibility(resumeSkills, requiredSkills []string, cfg *config.MatchConfig) float64 {
	required := types.NormalizeSkillSet(requiredSkills)
	if len(required) == 0 {
		return cfg.EmptyRequiredSkillsScore
	}

	have := types.NormalizeSkillSet(resumeSkills)
	matched := 0
	for skill := range required {
		if have[skill] {
			matched++
		}
	}

	return clamp01(float64(matched) / float64(len(required)))
}
