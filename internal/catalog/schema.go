// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// ErrMalformed reports a payload that is not JSON or does not have the shape
// of a volumes response.
var ErrMalformed = errors.New("malformed books API payload")

// volumesSchema describes the fields the gateway depends on. Everything else
// in a volume is passed through untouched, so additional properties are
// allowed throughout.
const volumesSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "totalItems": {"type": "integer", "minimum": 0},
    "items": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["volumeInfo"],
        "properties": {
          "id": {"type": "string"},
          "volumeInfo": {
            "type": "object",
            "properties": {
              "title": {"type": "string"},
              "authors": {"type": "array", "items": {"type": "string"}},
              "publishedDate": {"type": "string"},
              "description": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(volumesSchema))
})

// validatePayload checks body against volumesSchema.
func validatePayload(body []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compiling volumes schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", ErrMalformed, strings.Join(msgs, "; "))
	}
	return nil
}
