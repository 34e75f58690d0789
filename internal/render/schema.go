package render

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// reportSchema is the canonical JSON schema of the serialized report.
//
//go:embed report-schema.json
var reportSchema []byte

// ValidateReportJSON checks a serialized JSON report against the
// embedded schema and returns the violations, if any.
func ValidateReportJSON(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(reportSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		violations = append(violations, verr.Field()+": "+verr.Description())
	}

	return fmt.Errorf("report violates schema: %s", strings.Join(violations, "; "))
}
