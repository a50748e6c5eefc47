package scoring

import (
	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/types"
)

// SkillsScore evaluates the technical skill profile: raw count against the
// saturation threshold, overlap with the high-demand reference set, category
// diversity, and a capped soft-skill bonus.
func SkillsScore(rec *types.FeatureRecord, cfg *config.SkillsConfig) float64 {
	skills := types.NormalizeSkillSet(rec.Skills)

	count := 0.0
	if cfg.CountSaturation > 0 {
		count = clamp01(float64(len(skills)) / float64(cfg.CountSaturation))
	}

	score := cfg.CountWeight*count +
		cfg.HighDemandWeight*highDemandOverlap(skills, cfg.HighDemandSkills) +
		cfg.DiversityWeight*categoryDiversity(skills, cfg.Categories) +
		cfg.SoftSkillWeight*softSkillPresence(rec.SoftSkills, cfg.SoftSkillSaturation)

	return clamp01(score)
}

// highDemandOverlap is the fraction of the high-demand reference set covered
// by the candidate's skills.
func highDemandOverlap(skills map[string]bool, reference []string) float64 {
	if len(reference) == 0 {
		return 0
	}

	matched := 0
	for _, name := range reference {
		if skills[types.NormalizeSkill(name)] {
			matched++
		}
	}

	return float64(matched) / float64(len(reference))
}

// categoryDiversity is the fraction of known skill categories the candidate
// touches at least once.
func categoryDiversity(skills map[string]bool, categories map[string][]string) float64 {
	if len(categories) == 0 {
		return 0
	}

	touched := 0
	for _, members := range categories {
		for _, member := range members {
			if skills[types.NormalizeSkill(member)] {
				touched++
				break
			}
		}
	}

	return float64(touched) / float64(len(categories))
}

// softSkillPresence saturates at the configured soft-skill count.
func softSkillPresence(softSkills []string, saturation int) float64 {
	if saturation <= 0 {
		return 0
	}
	return clamp01(float64(len(types.NormalizeSkillSet(softSkills))) / float64(saturation))
}
