package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/ingestion"
)

var scoreCmd = &cobra.Command{
	Use:   "score <resume.json>",
	Short: "Score a resume feature record against ATS heuristics",
	Long:  "Score reads a resume feature record (JSON, schema-validated) and prints its overall ATS score, grade, sub-scores, and recommendations.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, args []string) error {
	eng, _, err := newEngine()
	if err != nil {
		return err
	}

	resume, err := ingestion.LoadFeatureRecordFile(args[0])
	if err != nil {
		return err
	}

	report, err := eng.Evaluate(resume, nil)
	if err != nil {
		return err
	}

	return printJSON(report)
}
