/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

const credentialSchema = `
{
  "type": "object",
  "required": ["id", "type", "issuer", "issuanceDate", "credentialSubject", "proof"],
  "properties": {
    "id": {"type": "string"},
    "type": {"type": "array"},
    "issuer": {"type": "string"},
    "issuanceDate": {"type": "string"},
    "credentialSubject": {
      "type": "object",
      "required": ["id"],
      "properties": {
        "id": {"type": "string"}
      }
    },
    "proof": {
      "type": "object",
      "required": ["type", "created", "verificationMethod", "proofPurpose", "proofValue"],
      "properties": {
        "type": {"type": "string"},
        "created": {"type": "string"},
        "verificationMethod": {"type": "string"},
        "proofPurpose": {"type": "string"},
        "proofValue": {"type": "string"}
      }
    }
  }
}
`

// The proof of a presentation is deliberately left out.
const presentationSchema = `
{
  "type": "object",
  "required": ["type"],
  "properties": {
    "type": {"type": ["array", "string"]},
    "verifiableCredential": {"type": "array"},
    "holder": {"type": "string"}
  }
}
`

//nolint:gochecknoglobals
var (
	credentialSchemaLoader   = mustSchema(credentialSchema)
	presentationSchemaLoader = mustSchema(presentationSchema)
)

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}

	return schema
}

// checkShape runs schema against doc and records the outcome as the "shape" check.
func checkShape(r *Result, schema *gojsonschema.Schema, doc interface{}) {
	const name = "shape"

	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		r.fail(name, "%v", err)

		return
	}

	if result.Valid() {
		r.pass(name)

		return
	}

	reason := ""

	for i, desc := range result.Errors() {
		if i > 0 {
			reason += "; "
		}

		reason += desc.String()
	}

	r.fail(name, "%s", reason)
}
