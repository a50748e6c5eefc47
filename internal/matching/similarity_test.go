package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/types"
)

func TestSimilarityScore_IdenticalVectors(t *testing.T) {
	v := []float64{0.5, 0.5, 0.5, 0.5}

	score, err := SimilarityScore(v, v)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestSimilarityScore_OppositeVectors(t *testing.T) {
	score, err := SimilarityScore([]float64{1, 0}, []float64{-1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, score, 1e-9)
}

func TestSimilarityScore_OrthogonalVectors(t *testing.T) {
	score, err := SimilarityScore([]float64{1, 0}, []float64{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, score, 1e-9)
}

func TestSimilarityScore_DimensionMismatch(t *testing.T) {
	_, err := SimilarityScore(make([]float64, 384), make([]float64, 768))
	require.Error(t, err)

	var mismatch *types.DimensionMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 384, mismatch.ResumeDim)
	assert.Equal(t, 768, mismatch.JobDim)
}

func TestSimilarityScore_EmptyEmbedding(t *testing.T) {
	_, err := SimilarityScore(nil, []float64{1, 0})
	require.Error(t, err)

	var invalid *types.InvalidFeatureRecordError
	assert.ErrorAs(t, err, &invalid)

	_, err = SimilarityScore([]float64{1, 0}, nil)
	assert.Error(t, err)
}

func TestSimilarityScore_ZeroVectorIsNeutral(t *testing.T) {
	score, err := SimilarityScore([]float64{0, 0}, []float64{1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, score, 1e-9)
}
