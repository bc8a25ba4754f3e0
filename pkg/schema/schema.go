package schema

import (
	"github.com/invopop/jsonschema"
)

func generateSchema[T any]() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return r.Reflect(v)
}

// StoryParamsSchema describes the body accepted by the generate endpoint.
var StoryParamsSchema = generateSchema[StoryParams]()
