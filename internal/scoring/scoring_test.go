package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/types"
)

// midCareerResume is a realistic mid-career engineering resume: all sections,
// full contact block, 1200 words, bachelor's degree, six years of experience.
func midCareerResume() *types.FeatureRecord {
	return &types.FeatureRecord{
		ID:                     "resume_001",
		RawTextLength:          1200,
		SectionsPresent:        []string{"summary", "experience", "education", "skills"},
		ContactFieldsPresent:   []string{"phone", "email", "profile_link"},
		BulletPointCount:       8,
		ActionVerbCount:        15,
		SentenceCount:          40,
		Skills:                 []string{"Python", "AWS", "Docker"},
		SoftSkills:             []string{"leadership"},
		Keywords:               make([]string, 36),
		YearsOfExperience:      6,
		QuantifiedAchievements: 3,
		EducationLevel:         types.EducationBachelor,
	}
}

func TestScoreResume_MidCareerLandsInBBand(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	score := ScoreResume(midCareerResume(), cfg)

	assert.GreaterOrEqual(t, score.OverallScore, 0.6)
	assert.Less(t, score.OverallScore, 0.8)
	assert.Contains(t, []string{"B", "B+"}, score.Grade)
}

func TestScoreResume_AllSubScoresInRange(t *testing.T) {
	cfg := config.Default()

	records := []*types.FeatureRecord{
		{ID: "empty"},
		midCareerResume(),
		{
			ID:                     "maximal",
			RawTextLength:          1500,
			SectionsPresent:        []string{"summary", "experience", "education", "skills"},
			ContactFieldsPresent:   []string{"phone", "email", "profile_link"},
			BulletPointCount:       50,
			ActionVerbCount:        100,
			SentenceCount:          50,
			Skills:                 []string{"python", "java", "javascript", "typescript", "go", "aws", "docker", "kubernetes", "react", "node", "sql", "terraform"},
			SoftSkills:             []string{"leadership", "communication", "teamwork"},
			Keywords:               make([]string, 45),
			YearsOfExperience:      20,
			QuantifiedAchievements: 12,
			EducationLevel:         types.EducationPhD,
			Certifications:         []string{"cka", "aws-sap", "gcp-pca"},
		},
		{
			ID:            "stuffed",
			RawTextLength: 200,
			Keywords:      make([]string, 199),
		},
	}

	for _, rec := range records {
		score := ScoreResume(rec, cfg)

		for name, value := range map[string]float64{
			"format":     score.SubScores.Format,
			"skills":     score.SubScores.Skills,
			"experience": score.SubScores.Experience,
			"education":  score.SubScores.Education,
			"keyword":    score.SubScores.Keyword,
			"overall":    score.OverallScore,
		} {
			assert.GreaterOrEqual(t, value, 0.0, "%s: %s below 0", rec.ID, name)
			assert.LessOrEqual(t, value, 1.0, "%s: %s above 1", rec.ID, name)
		}
		assert.NotEmpty(t, score.Grade, "%s: grade missing", rec.ID)
	}
}

func TestScoreResume_Deterministic(t *testing.T) {
	cfg := config.Default()
	rec := midCareerResume()

	first := ScoreResume(rec, cfg)
	second := ScoreResume(rec, cfg)

	assert.Equal(t, first, second)
}

func TestScoreResume_DoesNotMutateInput(t *testing.T) {
	cfg := config.Default()
	rec := midCareerResume()
	snapshot := *rec

	ScoreResume(rec, cfg)

	assert.Equal(t, snapshot, *rec)
}
