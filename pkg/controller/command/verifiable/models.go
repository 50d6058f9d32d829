/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"encoding/json"

	"github.com/solid/vc-go/pkg/doc/verifiable"
)

// CredentialRequest is model for validating a verifiable credential.
type CredentialRequest struct {
	Credential json.RawMessage `json:"credential,omitempty"`
}

// PresentationRequest is model for validating a verifiable presentation.
type PresentationRequest struct {
	Presentation json.RawMessage `json:"presentation,omitempty"`
}

// ValidationResponse is model for the outcome of a validation.
// Every check is listed, failed ones carry a reason.
type ValidationResponse struct {
	Valid  bool               `json:"valid"`
	Checks []verifiable.Check `json:"checks"`
}

// ContextsRequest is model for merging JSON-LD contexts.
//
// Each entry is a context or a list of contexts.
type ContextsRequest struct {
	Contexts []interface{} `json:"contexts"`
}

// ContextsResponse is model for the merged context list.
type ContextsResponse struct {
	Context []interface{} `json:"@context"`
}
