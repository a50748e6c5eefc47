package matching

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/types"
)

// Rank scores a resume against every job in the set, fanning out across
// workers, and returns the matches ordered by score descending with ties
// broken by job ID ascending. Per-job scoring errors become recorded skips;
// one bad job never aborts the batch. An empty job set yields an empty
// result. The ranked list is truncated to the configured top-N; zero means
// no truncation.
func Rank(resume *types.FeatureRecord, jobs []*types.FeatureRecord, cfg *config.Config) types.MatchResult {
	matches := make([]*types.JobMatch, len(jobs))
	skips := make([]*types.SkippedJob, len(jobs))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			match, err := MatchJob(resume, job, cfg)
			if err != nil {
				skips[i] = &types.SkippedJob{JobID: job.ID, Reason: err.Error()}
				return nil
			}
			matches[i] = &match
			return nil
		})
	}
	// Workers only record into their own slot; Wait cannot fail.
	_ = g.Wait()

	result := types.MatchResult{}
	for i := range jobs {
		if matches[i] != nil {
			result.Ranked = append(result.Ranked, *matches[i])
		}
		if skips[i] != nil {
			result.Skipped = append(result.Skipped, *skips[i])
		}
	}

	// Deterministic ordering regardless of input order or fan-out timing.
	sort.Slice(result.Ranked, func(i, j int) bool {
		if result.Ranked[i].MatchScore != result.Ranked[j].MatchScore {
			return result.Ranked[i].MatchScore > result.Ranked[j].MatchScore
		}
		return result.Ranked[i].JobID < result.Ranked[j].JobID
	})
	sort.Slice(result.Skipped, func(i, j int) bool {
		return result.Skipped[i].JobID < result.Skipped[j].JobID
	})

	if cfg.Match.TopN > 0 && len(result.Ranked) > cfg.Match.TopN {
		result.Ranked = result.Ranked[:cfg.Match.TopN]
	}

	return result
}
