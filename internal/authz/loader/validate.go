// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package loader

import (
	"bytes"
	"encoding/json"
	"sync"

	"github.com/samber/oops"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const schemaResourceName = "policy-document.json"

var (
	schemaOnce  sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr   error
)

func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := GenerateSchema()
		if err != nil {
			schemaErr = oops.Code("SCHEMA_GENERATION_FAILED").Wrap(err)
			return
		}
		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			schemaErr = oops.Code("SCHEMA_GENERATION_FAILED").Wrap(err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaResourceName, doc); err != nil {
			schemaErr = oops.Code("SCHEMA_COMPILE_FAILED").Wrap(err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaResourceName)
	})
	return compiledSchema, schemaErr
}

// Validate checks data (in the given format) against the policy document
// JSON Schema before any conversion into the domain tree is attempted.
func Validate(data []byte, format Format) error {
	schema, err := compiled()
	if err != nil {
		return oops.Code("SCHEMA_UNAVAILABLE").Wrap(err)
	}

	instance, err := decodeToJSONCompatible(data, format)
	if err != nil {
		return oops.Code("POLICY_DOCUMENT_PARSE_FAILED").Wrap(err)
	}

	if err := schema.Validate(instance); err != nil {
		return oops.Code("POLICY_DOCUMENT_SCHEMA_VIOLATION").Wrap(err)
	}
	return nil
}

// decodeToJSONCompatible parses data into a generic map[string]any/[]any
// tree the jsonschema validator can walk, round-tripping YAML documents
// through JSON so map keys are always string-typed.
func decodeToJSONCompatible(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON:
		var v any
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	case FormatYAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		asJSON, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		var out any
		dec := json.NewDecoder(bytes.NewReader(asJSON))
		dec.UseNumber()
		if err := dec.Decode(&out); err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, oops.Code("UNKNOWN_DOCUMENT_FORMAT").Errorf("unknown policy document format %q", format)
	}
}
