// Package matching implements resume-to-job match scoring: semantic
// similarity, skills compatibility, experience-level fit, their weighted
// aggregation, and deterministic ranking across a job set.
package matching

import (
	"math"

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

// SimilarityScore computes the cosine similarity between a resume and a job
// embedding and maps it from [-1,1] to [0,1]. Embeddings of differing
// dimension are a hard error for the pairing; either embedding being empty is
// an invalid record.
func SimilarityScore(resume, job []float64) (float64, error) {
	if len(resume) == 0 {
		return 0, &types.InvalidFeatureRecordError{Field: "embedding", Expected: "non-empty vector", Received: "empty resume embedding"}
	}
	if len(job) == 0 {
		return 0, &types.InvalidFeatureRecordError{Field: "embedding", Expected: "non-empty vector", Received: "empty job embedding"}
	}
	if len(resume) != len(job) {
		return 0, &types.DimensionMismatchError{ResumeDim: len(resume), JobDim: len(job)}
	}

	dot := 0.0
	magResume := 0.0
	magJob := 0.0
	for i := range resume {
		dot += resume[i] * job[i]
		magResume += resume[i] * resume[i]
		magJob += job[i] * job[i]
	}

	if magResume == 0 || magJob == 0 {
		// A zero vector carries no direction; treat as orthogonal.
		return 0.5, nil
	}

	cosine := dot / (math.Sqrt(magResume) * math.Sqrt(magJob))
	return clamp01((cosine + 1) / 2), nil
}
