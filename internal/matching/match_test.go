package matching

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/types"
)

func TestMatchJob_GoodMatchScenario(t *testing.T) {
	cfg := config.Default()

	// Embeddings chosen so the raw cosine similarity is exactly 0.9,
	// which maps to 0.95 on [0,1].
	resume := &types.FeatureRecord{
		ID:                "resume_001",
		Skills:            []string{"Python"},
		YearsOfExperience: 6,
		Embedding:         []float64{1, 0},
	}
	job := &types.FeatureRecord{
		ID:                      "job_001",
		RequiredSkills:          []string{"Python", "Django"},
		RequiredExperienceLevel: level(types.ExperienceSenior),
		Embedding:               []float64{0.9, math.Sqrt(1 - 0.81)},
	}

	match, err := MatchJob(resume, job, cfg)
	require.NoError(t, err)

	assert.InDelta(t, 0.95, match.SimilarityScore, 1e-9)
	assert.InDelta(t, 0.5, match.SkillsMatchScore, 1e-9)
	assert.InDelta(t, 1.0, match.ExperienceMatchScore, 1e-9)

	// 0.40*0.95 + 0.40*0.5 + 0.20*1.0 = 0.78
	assert.InDelta(t, 0.78, match.MatchScore, 1e-9)
	assert.InDelta(t, 78.0, match.MatchPercentage, 1e-9)
	assert.Equal(t, "Good Match", match.MatchLevel)
}

func TestMatchJob_DimensionMismatchPropagates(t *testing.T) {
	cfg := config.Default()

	resume := &types.FeatureRecord{ID: "r", Embedding: make([]float64, 384)}
	job := &types.FeatureRecord{ID: "j", Embedding: make([]float64, 768)}

	_, err := MatchJob(resume, job, cfg)

	var mismatch *types.DimensionMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestMatchJob_ScoreInRange(t *testing.T) {
	cfg := config.Default()

	resume := &types.FeatureRecord{ID: "r", Embedding: []float64{1, 0}, YearsOfExperience: 0.5}
	job := &types.FeatureRecord{
		ID:                      "j",
		Embedding:               []float64{-1, 0},
		RequiredSkills:          []string{"rust"},
		RequiredExperienceLevel: level(types.ExperienceSenior),
	}

	match, err := MatchJob(resume, job, cfg)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, match.MatchScore, 0.0)
	assert.LessOrEqual(t, match.MatchScore, 1.0)
	assert.Equal(t, "Poor Match", match.MatchLevel)
}
