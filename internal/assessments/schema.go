package assessments

import (
	"sync"

	"github.com/invopop/jsonschema"
)

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
)

// Schema returns the JSON Schema of SubmitRequest.
func Schema() *jsonschema.Schema {
	schemaOnce.Do(func() {
		reflector := jsonschema.Reflector{
			AllowAdditionalProperties: false,
			DoNotReference:            true,
		}
		schema = reflector.Reflect(&SubmitRequest{})
		schema.Title = "Assessment submission"
	})
	return schema
}
