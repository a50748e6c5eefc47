// Package types provides type definitions for structured data used throughout the ATS scoring engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// EducationLevel is the highest completed education level extracted from a resume.
type EducationLevel string

// Education levels, ordered from lowest to highest.
const (
	EducationNone      EducationLevel = "none"
	EducationAssociate EducationLevel = "associate"
	EducationBachelor  EducationLevel = "bachelor"
	EducationMaster    EducationLevel = "master"
	EducationPhD       EducationLevel = "phd"
)

// ExperienceLevel is a coarse seniority band used for job requirements and
// for banding a candidate's years of experience.
type ExperienceLevel string

// Experience levels, ordered from most junior to most senior.
const (
	ExperienceEntry  ExperienceLevel = "entry"
	ExperienceMid    ExperienceLevel = "mid"
	ExperienceSenior ExperienceLevel = "senior"
)

// Rank returns the ordinal position of the level (entry=0, mid=1, senior=2).
// Unknown levels rank as mid.
func (l ExperienceLevel) Rank() int {
	switch l {
	case ExperienceEntry:
		return 0
	case ExperienceMid:
		return 1
	case ExperienceSenior:
		return 2
	default:
		return 1
	}
}

// FeatureRecord is the structured, pre-extracted representation of one resume
// or one job posting. Records are produced by external extraction services
// (PDF/NLP/embedding) and are never mutated by the engine.
type FeatureRecord struct {
	ID string `json:"id" validate:"required"`

	// Document structure
	RawTextLength        int      `json:"raw_text_length" validate:"min=0"`
	SectionsPresent      []string `json:"sections_present,omitempty"`
	ContactFieldsPresent []string `json:"contact_fields_present,omitempty"`
	BulletPointCount     int      `json:"bullet_point_count" validate:"min=0"`
	ActionVerbCount      int      `json:"action_verb_count" validate:"min=0"`
	SentenceCount        int      `json:"sentence_count" validate:"min=0"`

	// Skills and keywords
	Skills     []string `json:"skills,omitempty"`
	SoftSkills []string `json:"soft_skills,omitempty"`
	Keywords   []string `json:"keywords,omitempty"`

	// Experience and education
	YearsOfExperience        float64        `json:"years_of_experience" validate:"min=0"`
	QuantifiedAchievements   int            `json:"quantified_achievements" validate:"min=0"`
	EducationLevel           EducationLevel `json:"education_level" validate:"omitempty,oneof=none associate bachelor master phd"`
	Certifications           []string       `json:"certifications,omitempty"`
	FieldOfStudyRelevant     *bool          `json:"field_of_study_relevant,omitempty"`

	// Semantic representation, produced by the embedding service.
	Embedding []float64 `json:"embedding,omitempty"`

	// Job-posting-only fields. Nil / empty on resume records.
	RequiredExperienceLevel *ExperienceLevel `json:"required_experience_level,omitempty"`
	RequiredSkills          []string         `json:"required_skills,omitempty"`
}

// Validate checks the record against its struct tags and the cross-field
// invariants the tag language cannot express. Returns an
// *InvalidFeatureRecordError describing the first violated field.
func (r *FeatureRecord) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			return &InvalidFeatureRecordError{
				Field:    verrs[0].Field(),
				Expected: verrs[0].Tag() + "=" + verrs[0].Param(),
				Received: verrs[0].Value(),
			}
		}
		return err
	}

	// skills and soft skills must be disjoint sets
	soft := make(map[string]bool, len(r.SoftSkills))
	for _, s := range r.SoftSkills {
		soft[NormalizeSkill(s)] = true
	}
	for _, s := range r.Skills {
		if soft[NormalizeSkill(s)] {
			return &InvalidFeatureRecordError{
				Field:    "skills",
				Expected: "disjoint from soft_skills",
				Received: s,
			}
		}
	}

	if r.RequiredExperienceLevel != nil {
		switch *r.RequiredExperienceLevel {
		case ExperienceEntry, ExperienceMid, ExperienceSenior:
		default:
			return &InvalidFeatureRecordError{
				Field:    "required_experience_level",
				Expected: "one of entry, mid, senior",
				Received: string(*r.RequiredExperienceLevel),
			}
		}
	}

	return nil
}
