package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-scorer/internal/ingestion"
	"github.com/jonathan/ats-scorer/internal/store"
	"github.com/jonathan/ats-scorer/internal/types"
)

var (
	matchJobsFile string
	matchFromDB   bool
	matchLimit    int
	matchSave     bool
)

var matchCmd = &cobra.Command{
	Use:   "match <resume.json>",
	Short: "Rank job postings by fit against a resume",
	Long:  "Match scores a resume feature record against a set of job feature records and prints the full evaluation report: ATS score, ranked matches, and recommendations.",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchJobsFile, "jobs", "", "Path to a JSON array of job feature records")
	matchCmd.Flags().BoolVar(&matchFromDB, "from-db", false, "Load job records from the database (DATABASE_URL)")
	matchCmd.Flags().IntVar(&matchLimit, "limit", 0, "Maximum number of job records to load from the database (0 = all)")
	matchCmd.Flags().BoolVar(&matchSave, "save", false, "Save the evaluation report to the database")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	if matchJobsFile == "" && !matchFromDB {
		return fmt.Errorf("either --jobs or --from-db is required")
	}

	eng, log, err := newEngine()
	if err != nil {
		return err
	}

	resume, err := ingestion.LoadFeatureRecordFile(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var jobs []*types.FeatureRecord
	var db *store.Store
	if matchFromDB || matchSave {
		databaseURL := os.Getenv("DATABASE_URL")
		if databaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required")
		}
		db, err = store.Connect(ctx, databaseURL)
		if err != nil {
			return err
		}
		defer db.Close()
	}

	if matchFromDB {
		jobs, err = db.ListJobRecords(ctx, matchLimit)
		if err != nil {
			return err
		}
	} else {
		jobs, err = ingestion.LoadFeatureRecordsFile(matchJobsFile)
		if err != nil {
			return err
		}
	}

	report, err := eng.Evaluate(resume, jobs)
	if err != nil {
		return err
	}

	if matchSave {
		id, err := db.SaveReport(ctx, resume.ID, report)
		if err != nil {
			return err
		}
		log.Info("report saved", zap.String("report_id", id.String()))
	}

	return printJSON(report)
}
