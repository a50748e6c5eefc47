// Package engine exposes the ATS scoring and matching engine behind a single
// façade. An Engine is constructed once from a validated configuration and is
// safe for concurrent use: every operation is a pure function over its inputs.
package engine

import (
	"go.uber.org/zap"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/logger"
	"github.com/jonathan/ats-scorer/internal/matching"
	"github.com/jonathan/ats-scorer/internal/recommend"
	"github.com/jonathan/ats-scorer/internal/scoring"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Engine scores resumes and ranks job matches using one validated
// configuration.
type Engine struct {
	cfg *config.Config
	log *zap.Logger
}

// New validates the configuration and returns an engine bound to it. A nil
// config uses the defaults; a nil logger disables logging. Configuration
// problems surface here, never during a scoring call.
func New(cfg *config.Config, log *zap.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Engine{cfg: cfg, log: log}, nil
}

// Config returns the engine's validated configuration.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// ScoreResume validates the resume record and computes its ATS score. A
// malformed record aborts the operation; there is only one resume per call.
func (e *Engine) ScoreResume(resume *types.FeatureRecord) (*types.ResumeScore, error) {
	if err := resume.Validate(); err != nil {
		return nil, err
	}

	score := scoring.ScoreResume(resume, e.cfg)
	return &score, nil
}

// MatchJobs ranks the job set against the resume. The resume must carry an
// embedding; jobs that cannot be paired (missing embedding, dimension
// mismatch) are skipped with a recorded reason and logged, never failing the
// batch. An empty job set returns an empty ranking.
func (e *Engine) MatchJobs(resume *types.FeatureRecord, jobs []*types.FeatureRecord) (*types.MatchResult, error) {
	if err := resume.Validate(); err != nil {
		return nil, err
	}
	if len(resume.Embedding) == 0 {
		return nil, &types.InvalidFeatureRecordError{
			Field:    "embedding",
			Expected: "non-empty vector",
			Received: "empty resume embedding",
		}
	}

	result := matching.Rank(resume, jobs, e.cfg)

	log := logger.WithResume(e.log, resume.ID)
	for _, skip := range result.Skipped {
		log.Warn("job skipped during matching",
			zap.String(logger.FieldJobID, skip.JobID),
			zap.String("reason", skip.Reason))
	}
	log.Info("job matching complete",
		zap.Int("jobs", len(jobs)),
		zap.Int("ranked", len(result.Ranked)),
		zap.Int("skipped", len(result.Skipped)))

	return &result, nil
}

// Evaluate runs the full pipeline for one resume: ATS score, ranked job
// matches, recommendations, and the condensed summary.
func (e *Engine) Evaluate(resume *types.FeatureRecord, jobs []*types.FeatureRecord) (*types.Report, error) {
	score, err := e.ScoreResume(resume)
	if err != nil {
		return nil, err
	}

	// Zero jobs is not an error: the ranking is empty and recommendations
	// come from the resume sub-scores alone.
	matches := &types.MatchResult{}
	recommendations := recommend.ForScores(score.SubScores, &e.cfg.Recommend)
	if len(jobs) > 0 {
		matches, err = e.MatchJobs(resume, jobs)
		if err != nil {
			return nil, err
		}
		recommendations = recommend.ForReport(score.SubScores, matches.Ranked, &e.cfg.Recommend)
	}

	report := &types.Report{
		Scores:          *score,
		Matches:         *matches,
		Recommendations: recommendations,
		Summary: types.Summary{
			ATSScore:          score.OverallScore,
			ATSGrade:          score.Grade,
			TotalMatchingJobs: len(matches.Ranked),
		},
	}
	if len(matches.Ranked) > 0 {
		report.Summary.TopMatchScore = matches.Ranked[0].MatchScore
		report.Summary.TopJobID = matches.Ranked[0].JobID
	}

	return report, nil
}
