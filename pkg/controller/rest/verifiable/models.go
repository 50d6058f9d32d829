/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"github.com/solid/vc-go/pkg/controller/command/verifiable"
)

// validateCredentialReq model
//
// swagger:parameters validateCredentialReq
type validateCredentialReq struct { // nolint: unused,deadcode
	// in: body
	Params verifiable.CredentialRequest
}

// validatePresentationReq model
//
// swagger:parameters validatePresentationReq
type validatePresentationReq struct { // nolint: unused,deadcode
	// in: body
	Params verifiable.PresentationRequest
}

// validationRes model
//
// swagger:response validationRes
type validationRes struct { // nolint: unused,deadcode
	// in: body
	verifiable.ValidationResponse
}

// concatenateContextsReq model
//
// swagger:parameters concatenateContextsReq
type concatenateContextsReq struct { // nolint: unused,deadcode
	// in: body
	Params verifiable.ContextsRequest
}

// concatenateContextsRes model
//
// swagger:response concatenateContextsRes
type concatenateContextsRes struct { // nolint: unused,deadcode
	// in: body
	verifiable.ContextsResponse
}
