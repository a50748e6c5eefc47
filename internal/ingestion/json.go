package ingestion

import (
	_ "embed"
	"encoding/json"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/ats-scorer/internal/types"
)

//go:embed feature_record_schema.json
var featureRecordSchema []byte

// DecodeFeatureRecord validates raw JSON against the feature record schema
// and decodes it. Schema violations are reported per field before any
// decoding happens, so malformed extractor output fails loudly and precisely.
func DecodeFeatureRecord(data []byte) (*types.FeatureRecord, error) {
	schemaLoader := gojsonschema.NewBytesLoader(featureRecordSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, &LoadError{Message: "failed to run schema validation", Cause: err}
	}

	if !result.Valid() {
		verr := &SchemaValidationError{}
		for _, desc := range result.Errors() {
			verr.Errors = append(verr.Errors, FieldError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
		return nil, verr
	}

	var rec types.FeatureRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &LoadError{Message: "failed to decode feature record", Cause: err}
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}

	return &rec, nil
}

// LoadFeatureRecordFile reads and decodes one feature record from a JSON file.
func LoadFeatureRecordFile(path string) (*types.FeatureRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: "failed to read " + path, Cause: err}
	}
	return DecodeFeatureRecord(data)
}

// LoadFeatureRecordsFile reads a JSON array of feature records. Each element
// is schema-validated independently; the first invalid element fails the load.
func LoadFeatureRecordsFile(path string) ([]*types.FeatureRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Message: "failed to read " + path, Cause: err}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Message: "expected a JSON array of feature records", Cause: err}
	}

	records := make([]*types.FeatureRecord, 0, len(raw))
	for _, element := range raw {
		rec, err := DecodeFeatureRecord(element)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}
