package scoring

import (
	"strings"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/types"
)

// FormatScore evaluates resume format and structure: section coverage, word
// count fitness, contact completeness, and structural quality, combined by
// the configured sub-check weights.
func FormatScore(rec *types.FeatureRecord, cfg *config.FormatConfig) float64 {
	score := cfg.SectionWeight*sectionCoverage(rec.SectionsPresent, cfg.RequiredSections) +
		cfg.LengthWeight*lengthFitness(rec.RawTextLength, cfg) +
		cfg.ContactWeight*contactCompleteness(len(rec.ContactFieldsPresent), cfg.ContactFieldCount) +
		cfg.StructureWeight*structureQuality(rec, cfg)

	return clamp01(score)
}

// sectionCoverage is the fraction of required sections present in the resume.
func sectionCoverage(present, required []string) float64 {
	if len(required) == 0 {
		return 1.0
	}

	presentSet := make(map[string]bool, len(present))
	for _, section := range present {
		presentSet[strings.ToLower(strings.TrimSpace(section))] = true
	}

	found := 0
	for _, section := range required {
		if presentSet[strings.ToLower(section)] {
			found++
		}
	}

	return float64(found) / float64(len(required))
}

// lengthFitness is a trapezoid over word count: 1.0 inside the optimal band,
// decaying linearly to 0 at zero words and at the configured upper bound.
func lengthFitness(words int, cfg *config.FormatConfig) float64 {
	w := float64(words)
	optMin := float64(cfg.OptimalWordsMin)
	optMax := float64(cfg.OptimalWordsMax)
	upper := float64(cfg.WordsUpperZero)

	switch {
	case w <= 0:
		return 0
	case w < optMin:
		return w / optMin
	case w <= optMax:
		return 1.0
	case w < upper:
		return (upper - w) / (upper - optMax)
	default:
		return 0
	}
}

// contactCompleteness is the fraction of expected contact fields present.
func contactCompleteness(present, expected int) float64 {
	if expected <= 0 {
		return 1.0
	}
	return clamp01(float64(present) / float64(expected))
}

// structureQuality combines bullet usage with professional-language density:
// a saturating bullet score multiplied by the action-verb-per-sentence ratio.
func structureQuality(rec *types.FeatureRecord, cfg *config.FormatConfig) float64 {
	bullets := 0.0
	if cfg.BulletSaturation > 0 {
		bullets = clamp01(float64(rec.BulletPointCount) / float64(cfg.BulletSaturation))
	}

	ratio := 0.0
	if rec.SentenceCount > 0 {
		ratio = clamp01(float64(rec.ActionVerbCount) / float64(rec.SentenceCount))
	}

	return bullets * ratio
}
