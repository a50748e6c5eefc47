package types

import "fmt"

// InvalidFeatureRecordError reports a feature record field that is missing or
// outside its allowed domain. The record is rejected before any scoring runs.
type InvalidFeatureRecordError struct {
	Field    string
	Expected string
	Received interface{}
}

func (e *InvalidFeatureRecordError) Error() string {
	return fmt.Sprintf("invalid feature record: field %q: expected %s, received %v", e.Field, e.Expected, e.Received)
}

// DimensionMismatchError reports that a resume and job embedding have different
// dimensions. It is fatal for that pairing only; batch matching records the
// skip and continues with the remaining jobs.
type DimensionMismatchError struct {
	ResumeDim int
	JobDim    int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("embedding dimension mismatch: resume has %d, job has %d", e.ResumeDim, e.JobDim)
}
