package types

// SubScores holds the five normalized component scores of a resume evaluation.
// Every value lies in [0,1].
type SubScores struct {
	Format     float64 `json:"format"`
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Keyword    float64 `json:"keyword"`
}

// ResumeScore is the aggregated ATS evaluation of a single resume.
type ResumeScore struct {
	OverallScore float64   `json:"overall_score"`
	Grade        string    `json:"grade"`
	SubScores    SubScores `json:"sub_scores"`
}
