package matching

import (
	"math"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/types"
)

// MatchJob scores one resume against one job posting. It returns an error
// when the pairing cannot be scored (missing embedding or dimension
// mismatch); batch callers record such errors as skips rather than failing
// the whole ranking.
func MatchJob(resume, job *types.FeatureRecord, cfg *config.Config) (types.JobMatch, error) {
	similarity, err := SimilarityScore(resume.Embedding, job.Embedding)
	if err != nil {
		return types.JobMatch{}, err
	}

	skillsCompat := SkillsCompatibility(resume.Skills, job.RequiredSkills, &cfg.Match)
	experienceMatch := ExperienceLevelMatch(resume.YearsOfExperience, job.RequiredExperienceLevel, cfg)

	score := clamp01(cfg.Match.Weights.Similarity*similarity +
		cfg.Match.Weights.SkillsCompatibility*skillsCompat +
		cfg.Match.Weights.ExperienceMatch*experienceMatch)

	return types.JobMatch{
		JobID:                job.ID,
		MatchScore:           score,
		MatchPercentage:      math.Round(score*1000) / 10,
		MatchLevel:           config.LabelFor(cfg.MatchLevelBands, score),
		SimilarityScore:      similarity,
		SkillsMatchScore:     skillsCompat,
		ExperienceMatchScore: experienceMatch,
	}, nil
}
