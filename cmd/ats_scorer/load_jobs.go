package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-scorer/internal/ingestion"
	"github.com/jonathan/ats-scorer/internal/store"
)

var loadJobsCmd = &cobra.Command{
	Use:   "load-jobs <jobs.csv>",
	Short: "Import job postings from CSV into the database",
	Long:  "Load-jobs reads job postings from a CSV file, mapping flexible source column names onto canonical fields, and stores them as job feature records. Rows that cannot be converted are skipped and logged.",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoadJobs,
}

func init() {
	rootCmd.AddCommand(loadJobsCmd)
}

func runLoadJobs(cmd *cobra.Command, args []string) error {
	_, log, err := newEngine()
	if err != nil {
		return err
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer file.Close()

	jobs, skipped, err := ingestion.LoadJobsCSV(file)
	if err != nil {
		return err
	}
	for _, skip := range skipped {
		log.Warn("skipped CSV row", zap.Int("row", skip.Row), zap.String("reason", skip.Reason))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}

	for _, job := range jobs {
		if _, err := db.SaveRecord(ctx, store.KindJob, job); err != nil {
			return err
		}
	}

	log.Info("jobs loaded",
		zap.Int("loaded", len(jobs)),
		zap.Int("skipped", len(skipped)))

	return nil
}
