package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/jonathan/ats-scorer/internal/types"
)

// weightTolerance is the allowed deviation when checking that a weight group
// sums to 1.0.
const weightTolerance = 1e-9

// ResumeWeights are the contributions of the five sub-scores to the overall
// ATS score. Must sum to 1.0.
type ResumeWeights struct {
	Format     float64 `json:"format"`
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Keyword    float64 `json:"keyword"`
}

// MatchWeights are the contributions of the three match sub-scores to the
// per-job match score. Must sum to 1.0.
type MatchWeights struct {
	Similarity          float64 `json:"similarity"`
	SkillsCompatibility float64 `json:"skills_compatibility"`
	ExperienceMatch     float64 `json:"experience_match"`
}

// Band maps the half-open score interval [Min, nextBand.Min) to a label. The
// topmost band is closed at 1.0. A band set is total when one band has Min 0.
type Band struct {
	Min   float64 `json:"min"`
	Label string  `json:"label"`
}

// FormatConfig parameterizes the format and structure sub-scorer.
type FormatConfig struct {
	SectionWeight   float64 `json:"section_weight"`
	LengthWeight    float64 `json:"length_weight"`
	ContactWeight   float64 `json:"contact_weight"`
	StructureWeight float64 `json:"structure_weight"`

	// RequiredSections are the canonical resume sections counted for coverage.
	RequiredSections []string `json:"required_sections"`
	// ContactFieldCount is the number of contact fields for full credit.
	ContactFieldCount int `json:"contact_field_count"`
	// Word-count trapezoid: 1.0 on [OptimalWordsMin, OptimalWordsMax],
	// decaying linearly to 0 at 0 words and at WordsUpperZero words.
	OptimalWordsMin int `json:"optimal_words_min"`
	OptimalWordsMax int `json:"optimal_words_max"`
	WordsUpperZero  int `json:"words_upper_zero"`
	// BulletSaturation is the bullet count that earns full structure credit.
	BulletSaturation int `json:"bullet_saturation"`
}

// SkillsConfig parameterizes the skills sub-scorer.
type SkillsConfig struct {
	CountWeight      float64 `json:"count_weight"`
	HighDemandWeight float64 `json:"high_demand_weight"`
	DiversityWeight  float64 `json:"diversity_weight"`
	SoftSkillWeight  float64 `json:"soft_skill_weight"`

	// CountSaturation is the technical skill count that earns full count credit.
	CountSaturation int `json:"count_saturation"`
	// SoftSkillSaturation is the soft skill count that earns the full bonus.
	SoftSkillSaturation int `json:"soft_skill_saturation"`
	// HighDemandSkills is the reference set of in-demand technical skills.
	HighDemandSkills []string `json:"high_demand_skills"`
	// Categories maps a category name to the canonical skills it contains.
	Categories map[string][]string `json:"categories"`
}

// ExperienceConfig parameterizes the experience sub-scorer and the
// years-to-level banding shared with the experience match sub-scorer.
type ExperienceConfig struct {
	// YearsCap is where logarithmic growth reaches 1.0.
	YearsCap float64 `json:"years_cap"`
	// Quantified-achievement bonus: per-item contribution and its cap.
	AchievementBonus    float64 `json:"achievement_bonus"`
	AchievementBonusCap float64 `json:"achievement_bonus_cap"`
	// Level banding: entry is [0, EntryMaxYears), mid is
	// [EntryMaxYears, MidMaxYears), senior is [MidMaxYears, inf).
	EntryMaxYears float64 `json:"entry_max_years"`
	MidMaxYears   float64 `json:"mid_max_years"`
}

// EducationConfig parameterizes the education sub-scorer.
type EducationConfig struct {
	LevelScores map[types.EducationLevel]float64 `json:"level_scores"`
	// Certification bonus: per-certification contribution and its cap.
	CertificationBonus    float64 `json:"certification_bonus"`
	CertificationBonusCap float64 `json:"certification_bonus_cap"`
	// IrrelevantFieldMultiplier is applied when the field of study is known
	// to be unrelated to the target role. Unknown relevance multiplies by 1.
	IrrelevantFieldMultiplier float64 `json:"irrelevant_field_multiplier"`
}

// KeywordConfig parameterizes the keyword density sub-scorer.
type KeywordConfig struct {
	// Density trapezoid: 1.0 on [OptimalDensityMin, OptimalDensityMax],
	// decaying linearly to 0 at density 0 and at UpperZeroDensity.
	OptimalDensityMin float64 `json:"optimal_density_min"`
	OptimalDensityMax float64 `json:"optimal_density_max"`
	UpperZeroDensity  float64 `json:"upper_zero_density"`
	// IndustryTerms restricts which keywords count toward density. Empty
	// means every extracted keyword counts.
	IndustryTerms []string `json:"industry_terms,omitempty"`
}

// MatchConfig parameterizes job matching and ranking.
type MatchConfig struct {
	Weights MatchWeights `json:"weights"`

	// EmptyRequiredSkillsScore is the neutral skills-compatibility score used
	// when a job lists no required skills (avoids division by zero).
	EmptyRequiredSkillsScore float64 `json:"empty_required_skills_score"`
	// MissingLevelScore applies when the job specifies no experience level.
	MissingLevelScore float64 `json:"missing_level_score"`
	// Over-qualification: score is 1 - OverQualifiedStep per level above the
	// requirement, floored at OverQualifiedFloor.
	OverQualifiedStep  float64 `json:"over_qualified_step"`
	OverQualifiedFloor float64 `json:"over_qualified_floor"`
	// Under-qualification: score is 1 - UnderQualifiedStep per missing level,
	// floored at 0.
	UnderQualifiedStep float64 `json:"under_qualified_step"`
	// TopN caps the ranked match list.
	TopN int `json:"top_n"`
}

// RecommendConfig holds the per-dimension thresholds below which an
// improvement recommendation is emitted.
type RecommendConfig struct {
	FormatThreshold     float64 `json:"format_threshold"`
	SkillsThreshold     float64 `json:"skills_threshold"`
	ExperienceThreshold float64 `json:"experience_threshold"`
	EducationThreshold  float64 `json:"education_threshold"`
	KeywordThreshold    float64 `json:"keyword_threshold"`
	// WeakTopMatchThreshold triggers a recommendation when the best job match
	// scores below it.
	WeakTopMatchThreshold float64 `json:"weak_top_match_threshold"`
}

// Config is the complete engine configuration. Construct with Default or Load,
// then pass to engine.New, which calls Validate exactly once.
type Config struct {
	ResumeWeights ResumeWeights    `json:"resume_weights"`
	Format        FormatConfig     `json:"format"`
	Skills        SkillsConfig     `json:"skills"`
	Experience    ExperienceConfig `json:"experience"`
	Education     EducationConfig  `json:"education"`
	Keyword       KeywordConfig    `json:"keyword"`
	Match         MatchConfig      `json:"match"`
	Recommend     RecommendConfig  `json:"recommend"`

	GradeBands      []Band `json:"grade_bands"`
	MatchLevelBands []Band `json:"match_level_bands"`
}

// Default returns the engine's standard configuration.
func Default() *Config {
	return &Config{
		ResumeWeights: ResumeWeights{
			Format:     0.25,
			Skills:     0.30,
			Experience: 0.25,
			Education:  0.10,
			Keyword:    0.10,
		},
		Format: FormatConfig{
			SectionWeight:     0.30,
			LengthWeight:      0.25,
			ContactWeight:     0.20,
			StructureWeight:   0.25,
			RequiredSections:  []string{"summary", "experience", "education", "skills"},
			ContactFieldCount: 3,
			OptimalWordsMin:   500,
			OptimalWordsMax:   2000,
			WordsUpperZero:    4000,
			BulletSaturation:  5,
		},
		Skills: SkillsConfig{
			CountWeight:         0.40,
			HighDemandWeight:    0.30,
			DiversityWeight:     0.20,
			SoftSkillWeight:     0.10,
			CountSaturation:     10,
			SoftSkillSaturation: 3,
			HighDemandSkills: []string{
				"python", "java", "javascript", "typescript", "go",
				"aws", "docker", "kubernetes", "react", "node",
				"sql", "terraform",
			},
			Categories: map[string][]string{
				"languages": {"python", "java", "javascript", "typescript", "go", "rust", "c++", "c#", "ruby", "kotlin", "swift"},
				"web":       {"react", "angular", "vue", "node", "express", "html", "css", "django", "flask", "rails"},
				"database":  {"sql", "postgresql", "mysql", "mongodb", "redis", "elasticsearch", "sqlite"},
				"cloud":     {"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "lambda"},
				"devops":    {"jenkins", "git", "ansible", "ci/cd", "linux", "prometheus", "grafana"},
				"data":      {"machine learning", "tensorflow", "pytorch", "pandas", "numpy", "spark", "kafka"},
			},
		},
		Experience: ExperienceConfig{
			YearsCap:            12,
			AchievementBonus:    0.03,
			AchievementBonusCap: 0.15,
			EntryMaxYears:       2,
			MidMaxYears:         5,
		},
		Education: EducationConfig{
			LevelScores: map[types.EducationLevel]float64{
				types.EducationNone:      0.0,
				types.EducationAssociate: 0.30,
				types.EducationBachelor:  0.60,
				types.EducationMaster:    0.85,
				types.EducationPhD:       0.90,
			},
			CertificationBonus:        0.05,
			CertificationBonusCap:     0.15,
			IrrelevantFieldMultiplier: 0.8,
		},
		Keyword: KeywordConfig{
			OptimalDensityMin: 0.02,
			OptimalDensityMax: 0.05,
			UpperZeroDensity:  0.10,
		},
		Match: MatchConfig{
			Weights: MatchWeights{
				Similarity:          0.40,
				SkillsCompatibility: 0.40,
				ExperienceMatch:     0.20,
			},
			EmptyRequiredSkillsScore: 0.5,
			MissingLevelScore:        1.0,
			OverQualifiedStep:        0.15,
			OverQualifiedFloor:       0.70,
			UnderQualifiedStep:       0.45,
			TopN:                     10,
		},
		Recommend: RecommendConfig{
			FormatThreshold:       0.7,
			SkillsThreshold:       0.6,
			ExperienceThreshold:   0.4,
			EducationThreshold:    0.5,
			KeywordThreshold:      0.6,
			WeakTopMatchThreshold: 0.6,
		},
		GradeBands: []Band{
			{Min: 0.90, Label: "A+"},
			{Min: 0.80, Label: "A"},
			{Min: 0.70, Label: "B+"},
			{Min: 0.60, Label: "B"},
			{Min: 0.50, Label: "C+"},
			{Min: 0.40, Label: "C"},
			{Min: 0.30, Label: "D"},
			{Min: 0.00, Label: "F"},
		},
		MatchLevelBands: []Band{
			{Min: 0.80, Label: "Excellent Match"},
			{Min: 0.60, Label: "Good Match"},
			{Min: 0.40, Label: "Moderate Match"},
			{Min: 0.00, Label: "Poor Match"},
		},
	}
}

// Load reads a configuration from a JSON file. Values not present in the file
// keep their defaults, so a config file only needs to list overrides.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return cfg, nil
}

// Validate checks that every weight group sums to 1.0 within tolerance and
// every band set is total, ordered, and non-overlapping. It is called once at
// engine construction; a nil return means the config is safe for any input.
func (c *Config) Validate() error {
	weightGroups := []struct {
		field   string
		weights []float64
	}{
		{"resume_weights", []float64{c.ResumeWeights.Format, c.ResumeWeights.Skills, c.ResumeWeights.Experience, c.ResumeWeights.Education, c.ResumeWeights.Keyword}},
		{"match.weights", []float64{c.Match.Weights.Similarity, c.Match.Weights.SkillsCompatibility, c.Match.Weights.ExperienceMatch}},
		{"format", []float64{c.Format.SectionWeight, c.Format.LengthWeight, c.Format.ContactWeight, c.Format.StructureWeight}},
		{"skills", []float64{c.Skills.CountWeight, c.Skills.HighDemandWeight, c.Skills.DiversityWeight, c.Skills.SoftSkillWeight}},
	}
	for _, group := range weightGroups {
		sum := 0.0
		for _, w := range group.weights {
			if w < 0 {
				return &ConfigurationError{Field: group.field, Message: "weights must be non-negative"}
			}
			sum += w
		}
		if math.Abs(sum-1.0) > weightTolerance {
			return &ConfigurationError{Field: group.field, Message: fmt.Sprintf("weights sum to %g, expected 1.0", sum)}
		}
	}

	if err := validateBands("grade_bands", c.GradeBands); err != nil {
		return err
	}
	if err := validateBands("match_level_bands", c.MatchLevelBands); err != nil {
		return err
	}

	if c.Format.OptimalWordsMin <= 0 || c.Format.OptimalWordsMax < c.Format.OptimalWordsMin || c.Format.WordsUpperZero <= c.Format.OptimalWordsMax {
		return &ConfigurationError{Field: "format", Message: "word count bounds must satisfy 0 < optimal_min <= optimal_max < upper_zero"}
	}
	if c.Keyword.OptimalDensityMin <= 0 || c.Keyword.OptimalDensityMax < c.Keyword.OptimalDensityMin || c.Keyword.UpperZeroDensity <= c.Keyword.OptimalDensityMax {
		return &ConfigurationError{Field: "keyword", Message: "density bounds must satisfy 0 < optimal_min <= optimal_max < upper_zero"}
	}
	if c.Experience.YearsCap <= 0 {
		return &ConfigurationError{Field: "experience.years_cap", Message: "must be positive"}
	}
	if c.Experience.EntryMaxYears <= 0 || c.Experience.MidMaxYears <= c.Experience.EntryMaxYears {
		return &ConfigurationError{Field: "experience", Message: "level bands must satisfy 0 < entry_max_years < mid_max_years"}
	}

	// Education level scores must not decrease as the level increases.
	order := []types.EducationLevel{types.EducationNone, types.EducationAssociate, types.EducationBachelor, types.EducationMaster, types.EducationPhD}
	prev := -1.0
	for _, level := range order {
		score, ok := c.Education.LevelScores[level]
		if !ok {
			return &ConfigurationError{Field: "education.level_scores", Message: fmt.Sprintf("missing score for level %q", level)}
		}
		if score < 0 || score > 1 {
			return &ConfigurationError{Field: "education.level_scores", Message: fmt.Sprintf("score for %q outside [0,1]", level)}
		}
		if score < prev {
			return &ConfigurationError{Field: "education.level_scores", Message: fmt.Sprintf("score for %q breaks monotonic ordering", level)}
		}
		prev = score
	}

	unitFields := []struct {
		field string
		value float64
	}{
		{"match.empty_required_skills_score", c.Match.EmptyRequiredSkillsScore},
		{"match.missing_level_score", c.Match.MissingLevelScore},
		{"match.over_qualified_floor", c.Match.OverQualifiedFloor},
		{"recommend.format_threshold", c.Recommend.FormatThreshold},
		{"recommend.skills_threshold", c.Recommend.SkillsThreshold},
		{"recommend.experience_threshold", c.Recommend.ExperienceThreshold},
		{"recommend.education_threshold", c.Recommend.EducationThreshold},
		{"recommend.keyword_threshold", c.Recommend.KeywordThreshold},
		{"recommend.weak_top_match_threshold", c.Recommend.WeakTopMatchThreshold},
	}
	for _, f := range unitFields {
		if f.value < 0 || f.value > 1 {
			return &ConfigurationError{Field: f.field, Message: "must lie in [0,1]"}
		}
	}
	if c.Match.TopN < 0 {
		return &ConfigurationError{Field: "match.top_n", Message: "must be non-negative"}
	}

	return nil
}

// validateBands checks that a band set totally partitions [0,1]: non-empty,
// one band anchored at 0, strictly increasing minima, all inside [0,1].
func validateBands(field string, bands []Band) error {
	if len(bands) == 0 {
		return &ConfigurationError{Field: field, Message: "band set is empty"}
	}

	sorted := make([]Band, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Min < sorted[j].Min })

	if sorted[0].Min != 0 {
		return &ConfigurationError{Field: field, Message: "no band anchored at 0; banding is not total"}
	}
	for i, band := range sorted {
		if band.Min < 0 || band.Min > 1 {
			return &ConfigurationError{Field: field, Message: fmt.Sprintf("band %q minimum outside [0,1]", band.Label)}
		}
		if band.Label == "" {
			return &ConfigurationError{Field: field, Message: "band has empty label"}
		}
		if i > 0 && band.Min == sorted[i-1].Min {
			return &ConfigurationError{Field: field, Message: fmt.Sprintf("bands %q and %q overlap at %g", sorted[i-1].Label, band.Label, band.Min)}
		}
	}

	return nil
}

// LabelFor maps a score to the label of the band it falls in. Boundaries
// belong to the band they open: a score exactly at a band minimum gets that
// band, so 0.90 grades A+ rather than A.
func LabelFor(bands []Band, score float64) string {
	best := ""
	bestMin := math.Inf(-1)
	for _, band := range bands {
		if score >= band.Min && band.Min > bestMin {
			best = band.Label
			bestMin = band.Min
		}
	}
	return best
}
