/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"net/http"

	"github.com/solid/vc-go/pkg/controller/command/verifiable"
	"github.com/solid/vc-go/pkg/controller/internal/cmdutil"
	"github.com/solid/vc-go/pkg/controller/rest"
)

const (
	verifiableOperationID    = "/verifiable"
	validateCredentialPath   = verifiableOperationID + "/credential/validate"
	validatePresentationPath = verifiableOperationID + "/presentation/validate"
	concatenateContextsPath  = verifiableOperationID + "/context/concatenate"
)

// Operation contains basic common operations provided by controller REST API.
type Operation struct {
	handlers []rest.Handler
	command  *verifiable.Command
}

// New returns new credential validation rest client instance.
func New() *Operation {
	o := &Operation{command: verifiable.New()}
	o.registerHandler()

	return o
}

// GetRESTHandlers get all controller API handler available for this service.
func (o *Operation) GetRESTHandlers() []rest.Handler {
	return o.handlers
}

// registerHandler register handlers to be exposed from this protocol service as REST API endpoints.
func (o *Operation) registerHandler() {
	o.handlers = []rest.Handler{
		cmdutil.NewHTTPHandler(validateCredentialPath, http.MethodPost, o.ValidateCredential),
		cmdutil.NewHTTPHandler(validatePresentationPath, http.MethodPost, o.ValidatePresentation),
		cmdutil.NewHTTPHandler(concatenateContextsPath, http.MethodPost, o.ConcatenateContexts),
	}
}

// ValidateCredential swagger:route POST /verifiable/credential/validate verifiable validateCredentialReq
//
// Checks the shape of a verifiable credential.
//
// Responses:
//    default: genericError
//        200: validationRes
func (o *Operation) ValidateCredential(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.ValidateCredential, rw, req.Body)
}

// ValidatePresentation swagger:route POST /verifiable/presentation/validate verifiable validatePresentationReq
//
// Checks the shape of a verifiable presentation and of its credentials.
//
// Responses:
//    default: genericError
//        200: validationRes
func (o *Operation) ValidatePresentation(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.ValidatePresentation, rw, req.Body)
}

// ConcatenateContexts swagger:route POST /verifiable/context/concatenate verifiable concatenateContextsReq
//
// Merges JSON-LD contexts without duplicates.
//
// Responses:
//    default: genericError
//        200: concatenateContextsRes
func (o *Operation) ConcatenateContexts(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.ConcatenateContexts, rw, req.Body)
}
