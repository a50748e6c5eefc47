package ingestion

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/ats-scorer/internal/types"
)

// maxRequiredSkills caps how many skills one CSV row may contribute.
const maxRequiredSkills = 10

// columnSynonyms maps each canonical job field to the CSV header names that
// may carry it. The table is consulted once per file when the header row is
// read; source systems with different column naming need no code changes.
var columnSynonyms = map[string][]string{
	"id":               {"id", "job_id", "posting_id"},
	"title":            {"title", "job_title", "position", "role"},
	"description":      {"description", "job_description", "job_text", "summary"},
	"requirements":     {"requirements", "required_skills", "skills", "qualifications"},
	"experience_level": {"experience_level", "seniority", "level"},
}

// RowError records a CSV row that could not be converted to a job record.
type RowError struct {
	Row    int
	Reason string
}

// LoadJobsCSV converts CSV rows into job feature records. Column positions
// are resolved from the header via the synonym table. Unusable rows are
// collected as RowErrors and skipped; one bad row never aborts the file.
// Embeddings are not populated here; the embedding service fills them in
// before matching.
func LoadJobsCSV(r io.Reader) ([]*types.FeatureRecord, []RowError, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, &LoadError{Message: "failed to read CSV header", Cause: err}
	}

	columns := resolveColumns(header)
	if _, ok := columns["title"]; !ok {
		return nil, nil, &LoadError{Message: "no recognizable title column in CSV header"}
	}

	var records []*types.FeatureRecord
	var skipped []RowError
	row := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			skipped = append(skipped, RowError{Row: row, Reason: err.Error()})
			continue
		}

		rec, reason := jobFromRow(fields, columns)
		if rec == nil {
			skipped = append(skipped, RowError{Row: row, Reason: reason})
			continue
		}
		records = append(records, rec)
	}

	return records, skipped, nil
}

// resolveColumns maps canonical field names to header positions. The first
// synonym found in the header wins.
func resolveColumns(header []string) map[string]int {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.ToLower(strings.TrimSpace(name))] = i
	}

	columns := make(map[string]int)
	for canonical, synonyms := range columnSynonyms {
		for _, synonym := range synonyms {
			if i, ok := positions[synonym]; ok {
				columns[canonical] = i
				break
			}
		}
	}
	return columns
}

func jobFromRow(fields []string, columns map[string]int) (*types.FeatureRecord, string) {
	get := func(canonical string) string {
		i, ok := columns[canonical]
		if !ok || i >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[i])
	}

	title := get("title")
	if title == "" {
		return nil, "missing title"
	}

	id := get("id")
	if id == "" {
		id = uuid.NewString()
	}

	rec := &types.FeatureRecord{
		ID:             id,
		RequiredSkills: splitSkills(get("requirements")),
	}

	// Title and description together stand in for the posting text.
	text := strings.TrimSpace(title + " " + get("description"))
	rec.RawTextLength = len(strings.Fields(text))
	rec.Keywords = strings.Fields(strings.ToLower(text))

	if level := strings.ToLower(get("experience_level")); level != "" {
		switch parsed := types.ExperienceLevel(level); parsed {
		case types.ExperienceEntry, types.ExperienceMid, types.ExperienceSenior:
			rec.RequiredExperienceLevel = &parsed
		default:
			return nil, "unknown experience level " + strconv.Quote(level)
		}
	}

	return rec, ""
}

// splitSkills parses a comma-separated requirements cell, dropping empties
// and duplicates and capping the count.
func splitSkills(cell string) []string {
	if cell == "" {
		return nil
	}

	seen := make(map[string]bool)
	var skills []string
	for _, part := range strings.Split(cell, ",") {
		skill := strings.TrimSpace(part)
		if skill == "" {
			continue
		}
		canonical := types.NormalizeSkill(skill)
		if seen[canonical] {
			continue
		}
		seen[canonical] = true
		skills = append(skills, skill)
		if len(skills) == maxRequiredSkills {
			break
		}
	}
	return skills
}
