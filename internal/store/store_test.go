package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-scorer/internal/types"
)

func TestSaveRecord_RejectsUnknownKind(t *testing.T) {
	// Kind validation happens before any database work.
	s := &Store{}

	_, err := s.SaveRecord(context.Background(), "company", &types.FeatureRecord{ID: "x"})

	assert.ErrorContains(t, err, "unknown record kind")
}

func TestClose_NilPoolIsSafe(t *testing.T) {
	s := &Store{}

	assert.NotPanics(t, func() { s.Close() })
}
