// Package interchange implements the portable JSON format CVs travel in:
// a versioned envelope wrapping one CV document. Import accepts both the
// current envelope and bare legacy CV objects exported before the envelope
// existed.
package interchange

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"github.com/adaeze/cv-studio/internal/normalize"
	"github.com/adaeze/cv-studio/internal/types"
)

// CurrentSchemaVersion is the envelope version this build writes.
const CurrentSchemaVersion = 1

//go:embed cv.schema.json
var cvSchema []byte

// Envelope is the export wrapper around a single CV.
type Envelope struct {
	SchemaVersion int      `json:"schemaVersion"`
	ExportedAt    string   `json:"exportedAt"`
	AppVersion    string   `json:"appVersion,omitempty"`
	CV            types.CV `json:"cv"`
}

// Export wraps a CV for download. The CV is normalized first so an exported
// document always round-trips cleanly.
func Export(cv types.CV, appVersion string) Envelope {
	return Envelope{
		SchemaVersion: CurrentSchemaVersion,
		ExportedAt:    time.Now().UTC().Format(time.RFC3339),
		AppVersion:    appVersion,
		CV:            normalize.Normalize(cv),
	}
}

// Stringify serializes an envelope as indented JSON, the format written to
// export files.
func Stringify(env Envelope) ([]byte, error) {
	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize envelope: %w", err)
	}
	return out, nil
}

// ParseImport reads an uploaded document and returns the normalized CV it
// carries. Input may be the current envelope or a bare legacy CV object
// (reported as schema version 0). Unparseable input returns a *ParseError,
// parseable input with the wrong shape a *ValidationError.
func ParseImport(data []byte) (types.CV, int, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return types.CV{}, 0, &ParseError{Message: "input is not a JSON object", Cause: err}
	}

	version := 0
	payload := json.RawMessage(data)
	if raw, ok := probe["cv"]; ok {
		if err := validate(data); err != nil {
			return types.CV{}, 0, err
		}
		version = CurrentSchemaVersion
		if v, ok := probe["schemaVersion"]; ok {
			// Tolerate a missing or malformed version; shape already validated.
			_ = json.Unmarshal(v, &version)
		}
		if version > CurrentSchemaVersion {
			return types.CV{}, 0, &ValidationError{Errors: []FieldError{{
				Field:   "schemaVersion",
				Message: fmt.Sprintf("version %d is newer than supported version %d", version, CurrentSchemaVersion),
			}}}
		}
		payload = raw
	} else if err := validate(wrapLegacy(data)); err != nil {
		return types.CV{}, 0, err
	}

	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return types.CV{}, 0, &ParseError{Message: "cv payload is not valid JSON", Cause: err}
	}
	return normalize.Normalize(doc), version, nil
}

// wrapLegacy lifts a bare CV object into envelope shape for validation.
func wrapLegacy(data []byte) []byte {
	return append(append([]byte(`{"cv":`), data...), '}')
}

func validate(document []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(cvSchema),
		gojsonschema.NewBytesLoader(document),
	)
	if err != nil {
		return &SchemaLoadError{Message: "schema validation failed during load", Cause: err}
	}
	if result.Valid() {
		return nil
	}
	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{Field: desc.Field(), Message: desc.Description()})
	}
	return ve
}
