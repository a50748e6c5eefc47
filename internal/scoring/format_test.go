package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/types"
)

func TestFormatScore_FullyStructuredResume(t *testing.T) {
	cfg := config.Default()
	rec := &types.FeatureRecord{
		ID:                   "resume_001",
		RawTextLength:        1200,
		SectionsPresent:      []string{"summary", "experience", "education", "skills"},
		ContactFieldsPresent: []string{"phone", "email", "profile_link"},
		BulletPointCount:     10,
		ActionVerbCount:      40,
		SentenceCount:        40,
	}

	// Every sub-check at its maximum: sections 1.0, length 1.0, contact 1.0,
	// structure 1.0 (bullets saturated, one action verb per sentence).
	assert.InDelta(t, 1.0, FormatScore(rec, &cfg.Format), 1e-9)
}

func TestFormatScore_EmptyRecord(t *testing.T) {
	cfg := config.Default()
	rec := &types.FeatureRecord{ID: "resume_001"}

	assert.Equal(t, 0.0, FormatScore(rec, &cfg.Format))
}

func TestFormatScore_PartialSections(t *testing.T) {
	cfg := config.Default()
	rec := &types.FeatureRecord{
		ID:              "resume_001",
		SectionsPresent: []string{"experience", "skills"},
	}

	// Only the section sub-check contributes: 2/4 coverage at weight 0.30.
	assert.InDelta(t, 0.5*cfg.Format.SectionWeight, FormatScore(rec, &cfg.Format), 1e-9)
}

func TestLengthFitness_Trapezoid(t *testing.T) {
	cfg := &config.Default().Format

	tests := []struct {
		name  string
		words int
		want  float64
	}{
		{"zero words", 0, 0.0},
		{"below optimal decays linearly", 250, 0.5},
		{"optimal lower bound", 500, 1.0},
		{"inside optimal band", 1200, 1.0},
		{"optimal upper bound", 2000, 1.0},
		{"above optimal decays linearly", 3000, 0.5},
		{"upper zero bound", 4000, 0.0},
		{"beyond upper bound", 9000, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, lengthFitness(tt.words, cfg), 1e-9)
		})
	}
}

func TestStructureQuality_NoSentences(t *testing.T) {
	cfg := &config.Default().Format
	rec := &types.FeatureRecord{
		ID:               "resume_001",
		BulletPointCount: 10,
		ActionVerbCount:  5,
	}

	// Without sentence information the professional-language ratio is zero,
	// and the multiplicative combination zeroes the whole sub-check.
	assert.Equal(t, 0.0, structureQuality(rec, cfg))
}

func TestStructureQuality_VerbRatioCapped(t *testing.T) {
	cfg := &config.Default().Format
	rec := &types.FeatureRecord{
		ID:               "resume_001",
		BulletPointCount: 5,
		ActionVerbCount:  80,
		SentenceCount:    20,
	}

	assert.InDelta(t, 1.0, structureQuality(rec, cfg), 1e-9)
}

func TestSectionCoverage_CaseInsensitive(t *testing.T) {
	got := sectionCoverage([]string{"Summary", " EXPERIENCE "}, []string{"summary", "experience", "education", "skills"})
	assert.InDelta(t, 0.5, got, 1e-9)
}
