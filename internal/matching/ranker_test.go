package matching

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/types"
)

// rankResume is a senior Python resume used across ranking tests.
func rankResume() *types.FeatureRecord {
	return &types.FeatureRecord{
		ID:                "resume_001",
		Skills:            []string{"python", "aws", "docker"},
		YearsOfExperience: 7,
		Embedding:         []float64{1, 0, 0},
	}
}

// jobWith builds a job whose required skills control its rank.
func jobWith(id string, requiredSkills ...string) *types.FeatureRecord {
	return &types.FeatureRecord{
		ID:             id,
		RequiredSkills: requiredSkills,
		Embedding:      []float64{1, 0, 0},
	}
}

func TestRank_OrdersByScoreDescending(t *testing.T) {
	cfg := config.Default()

	jobs := []*types.FeatureRecord{
		jobWith("job_weak", "rust", "scala", "elixir"),
		jobWith("job_strong", "python", "aws"),
		jobWith("job_partial", "python", "rust"),
	}

	result := Rank(rankResume(), jobs, cfg)
	require.Len(t, result.Ranked, 3)

	assert.Equal(t, "job_strong", result.Ranked[0].JobID)
	assert.Equal(t, "job_partial", result.Ranked[1].JobID)
	assert.Equal(t, "job_weak", result.Ranked[2].JobID)
	for i := 1; i < len(result.Ranked); i++ {
		assert.GreaterOrEqual(t, result.Ranked[i-1].MatchScore, result.Ranked[i].MatchScore)
	}
}

func TestRank_DeterministicAcrossInputOrder(t *testing.T) {
	cfg := config.Default()

	jobs := []*types.FeatureRecord{
		jobWith("job_a", "python"),
		jobWith("job_b", "rust"),
		jobWith("job_c", "python", "aws"),
		jobWith("job_d", "aws", "gcp"),
	}
	reversed := []*types.FeatureRecord{jobs[3], jobs[2], jobs[1], jobs[0]}

	first := Rank(rankResume(), jobs, cfg)
	second := Rank(rankResume(), reversed, cfg)

	assert.Equal(t, first, second)
}

func TestRank_TiesBrokenByJobID(t *testing.T) {
	cfg := config.Default()

	// Identical jobs produce identical scores; order must fall back to ID.
	jobs := []*types.FeatureRecord{
		jobWith("job_zeta", "python"),
		jobWith("job_alpha", "python"),
		jobWith("job_mid", "python"),
	}

	result := Rank(rankResume(), jobs, cfg)
	require.Len(t, result.Ranked, 3)

	assert.Equal(t, "job_alpha", result.Ranked[0].JobID)
	assert.Equal(t, "job_mid", result.Ranked[1].JobID)
	assert.Equal(t, "job_zeta", result.Ranked[2].JobID)
}

func TestRank_TruncatesToTopN(t *testing.T) {
	cfg := config.Default()
	cfg.Match.TopN = 3

	var jobs []*types.FeatureRecord
	for i := 0; i < 10; i++ {
		jobs = append(jobs, jobWith(fmt.Sprintf("job_%02d", i), "python"))
	}

	result := Rank(rankResume(), jobs, cfg)
	assert.Len(t, result.Ranked, 3)
}

func TestRank_EmptyJobSet(t *testing.T) {
	cfg := config.Default()

	result := Rank(rankResume(), nil, cfg)

	assert.Empty(t, result.Ranked)
	assert.Empty(t, result.Skipped)
}

func TestRank_DimensionMismatchSkippedNotFatal(t *testing.T) {
	cfg := config.Default()

	jobs := []*types.FeatureRecord{
		jobWith("job_00", "python"),
		jobWith("job_01", "aws"),
		{ID: "job_02_bad", RequiredSkills: []string{"python"}, Embedding: make([]float64, 7)},
		jobWith("job_03", "docker"),
		jobWith("job_04", "rust"),
	}

	result := Rank(rankResume(), jobs, cfg)

	require.Len(t, result.Ranked, 4)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "job_02_bad", result.Skipped[0].JobID)
	assert.Contains(t, result.Skipped[0].Reason, "dimension mismatch")
	for _, match := range result.Ranked {
		assert.NotEqual(t, "job_02_bad", match.JobID)
	}
}

func TestRank_MissingEmbeddingSkipped(t *testing.T) {
	cfg := config.Default()

	jobs := []*types.FeatureRecord{
		jobWith("job_00", "python"),
		{ID: "job_01_no_embedding", RequiredSkills: []string{"python"}},
	}

	result := Rank(rankResume(), jobs, cfg)

	require.Len(t, result.Ranked, 1)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "job_01_no_embedding", result.Skipped[0].JobID)
}
