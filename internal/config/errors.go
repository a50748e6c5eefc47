// Package config provides the scoring engine configuration: every weight, band
// boundary, saturation constant, and threshold used by the scorers, validated
// once at engine construction.
package config

import "fmt"

// ConfigurationError reports an invalid engine configuration. It is fatal at
// construction time; a validated config is never re-checked per request.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Message)
}
