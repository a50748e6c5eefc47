package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/types"
)

func level(l types.ExperienceLevel) *types.ExperienceLevel {
	return &l
}

func TestExperienceLevelMatch(t *testing.T) {
	cfg := config.Default()

	tests := []struct {
		name     string
		years    float64
		required *types.ExperienceLevel
		want     float64
	}{
		{"exact match", 3, level(types.ExperienceMid), 1.0},
		{"one level over-qualified", 6, level(types.ExperienceMid), 0.85},
		{"two levels over-qualified floors", 10, level(types.ExperienceEntry), 0.70},
		{"one level under-qualified", 3, level(types.ExperienceSenior), 0.55},
		{"two levels under-qualified", 0.5, level(types.ExperienceSenior), 0.10},
		{"no requirement is neutral", 1, nil, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ExperienceLevelMatch(tt.years, tt.required, cfg), 1e-9)
		})
	}
}
