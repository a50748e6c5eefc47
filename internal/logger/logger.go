// Package logger builds the zap loggers used by the CLI and engine.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New constructs a zap logger. JSON encoding is meant for machine-ingested
// logs; console encoding for interactive runs. Debug enables verbose output.
func New(json bool, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}
	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "msg",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,
		},
	}

	return cfg.Build()
}

// Common structured field keys used across the engine.
const (
	// FieldResumeID is the structured log field key for the resume identifier.
	FieldResumeID = "resume_id"
	// FieldJobID is the structured log field key for the job identifier.
	FieldJobID = "job_id"
)

// WithResume attaches the resume identifier to the logger. A nil logger
// defaults to a no-op logger to avoid panics.
func WithResume(log *zap.Logger, resumeID string) *zap.Logger {
	if log == nil {
		log = zap.NewNop()
	}
	if resumeID == "" {
		return log
	}
	return log.With(zap.String(FieldResumeID, resumeID))
}
