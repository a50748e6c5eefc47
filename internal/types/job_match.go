package types

// JobMatch is the scored pairing of one resume against one job posting.
type JobMatch struct {
	JobID                string  `json:"job_id"`
	MatchScore           float64 `json:"match_score"`
	MatchPercentage      float64 `json:"match_percentage"`
	MatchLevel           string  `json:"match_level"`
	SimilarityScore      float64 `json:"similarity_score"`
	SkillsMatchScore     float64 `json:"skills_match_score"`
	ExperienceMatchScore float64 `json:"experience_match_score"`
}

// SkippedJob records a job that was excluded from ranking, with the reason.
// A skipped job never aborts the batch.
type SkippedJob struct {
	JobID  string `json:"job_id"`
	Reason string `json:"reason"`
}

// MatchResult is the ranked outcome of matching one resume against a job set.
// Ranked is ordered by match score descending, ties broken by job ID ascending,
// truncated to the configured top-N.
type MatchResult struct {
	Ranked  []JobMatch   `json:"ranked"`
	Skipped []SkippedJob `json:"skipped,omitempty"`
}

// Summary condenses a full evaluation into the handful of fields a caller
// typically surfaces first.
type Summary struct {
	ATSScore          float64 `json:"ats_score"`
	ATSGrade          string  `json:"ats_grade"`
	TotalMatchingJobs int     `json:"total_matching_jobs"`
	TopMatchScore     float64 `json:"top_match_score"`
	TopJobID          string  `json:"top_job_id,omitempty"`
}

// Report is the complete output of evaluating one resume: its ATS score, the
// ranked job matches, and the derived recommendations.
type Report struct {
	Scores          ResumeScore `json:"ats_scores"`
	Matches         MatchResult `json:"matching_jobs"`
	Recommendations []string    `json:"recommendations"`
	Summary         Summary     `json:"summary"`
}
