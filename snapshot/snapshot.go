// SPDX-License-Identifier: MIT

// Package snapshot is the byte-level codec for engine states: indented JSON
// in the bellmanford.Record layout, validated against an embedded JSON Schema
// before it is trusted.
//
// Decode fails closed: any syntax, schema or consistency problem is returned
// wrapped in bellmanford.ErrMalformedState and no State is produced, so a
// caller's in-memory state is never replaced by a half-read file.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/katalvlaran/bellmanford/bellmanford"
)

// SchemaURL identifies the embedded state schema.
const SchemaURL = "https://bellmanford.dev/schemas/state.json"

// stateSchemaJSON describes the Record layout. Cross-field consistency
// (lengths, ranges, history shape) is left to bellmanford.Deserialize.
const stateSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://bellmanford.dev/schemas/state.json",
  "type": "object",
  "required": ["nodes", "edges", "distances", "currentStep", "iteration", "sourceNode", "distanceHistory", "status"],
  "properties": {
    "nodes": { "type": "integer", "minimum": 0 },
    "edges": {
      "type": "array",
      "items": {
        "type": "array",
        "items": { "type": "integer" },
        "minItems": 3,
        "maxItems": 3
      }
    },
    "distances": { "$ref": "#/$defs/vector" },
    "currentStep": { "type": "integer", "minimum": -1 },
    "iteration": { "type": "integer", "minimum": 0 },
    "sourceNode": { "type": "integer", "minimum": 0 },
    "distanceHistory": {
      "type": "array",
      "minItems": 1,
      "items": { "$ref": "#/$defs/vector" }
    },
    "currentAction": { "type": "string" },
    "lastEdge": { "type": ["integer", "null"], "minimum": 0 },
    "status": { "type": "string", "enum": ["running", "completed", "negative-cycle"] }
  },
  "additionalProperties": false,
  "$defs": {
    "vector": {
      "type": "array",
      "items": {
        "oneOf": [
          { "type": "integer" },
          { "const": "inf" }
        ]
      }
    }
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func stateSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(stateSchemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("snapshot: unmarshal state schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err = c.AddResource(SchemaURL, doc); err != nil {
			schemaErr = fmt.Errorf("snapshot: add state schema: %w", err)
			return
		}
		schema, schemaErr = c.Compile(SchemaURL)
	})

	return schema, schemaErr
}

// Encode serializes s as indented JSON.
func Encode(s bellmanford.State) ([]byte, error) {
	data, err := json.MarshalIndent(bellmanford.Serialize(s), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}

	return data, nil
}

// Decode parses, validates and restores a State from data produced by Encode
// (or any document in the same layout).
func Decode(data []byte) (bellmanford.State, error) {
	sch, err := stateSchema()
	if err != nil {
		return bellmanford.State{}, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return bellmanford.State{}, fmt.Errorf("%w: %v", bellmanford.ErrMalformedState, err)
	}
	if err = sch.Validate(doc); err != nil {
		return bellmanford.State{}, fmt.Errorf("%w: %v", bellmanford.ErrMalformedState, err)
	}

	var rec bellmanford.Record
	if err = json.Unmarshal(data, &rec); err != nil {
		return bellmanford.State{}, fmt.Errorf("%w: %v", bellmanford.ErrMalformedState, err)
	}

	return bellmanford.Deserialize(rec)
}
