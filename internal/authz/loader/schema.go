// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 abac-authz Contributors

package loader

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/samber/oops"
)

// GenerateSchema reflects RootDocument into a JSON Schema document. The
// authzctl schema subcommand exposes this so policy authors can feed it to
// editor tooling; Validate uses the same schema internally.
func GenerateSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		DoNotReference:            false,
		ExpandedStruct:            true,
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(&RootDocument{})
	schema.Title = "Access Control Policy Document"
	schema.Description = "A single policy or policy-set document for the abac-authz policy decision point."

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, oops.Code("SCHEMA_MARSHAL_FAILED").Wrap(err)
	}
	return out, nil
}
