/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vcconfig

import (
	"net/http"

	"github.com/solid/vc-go/pkg/client/vcconfig"
	vcconfigcmd "github.com/solid/vc-go/pkg/controller/command/vcconfig"
	"github.com/solid/vc-go/pkg/controller/internal/cmdutil"
	"github.com/solid/vc-go/pkg/controller/rest"
)

const (
	vcconfigOperationID = "/vcconfig"
	discoverPath        = vcconfigOperationID + "/discover"
)

// Operation contains VC service discovery operations provided by controller REST API.
type Operation struct {
	handlers []rest.Handler
	command  *vcconfigcmd.Command
}

// New returns new VC service discovery rest client instance.
func New(client *vcconfig.Client) *Operation {
	o := &Operation{command: vcconfigcmd.New(client)}
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
		cmdutil.NewHTTPHandler(discoverPath, http.MethodPost, o.GetConfiguration),
	}
}

// GetConfiguration swagger:route POST /vcconfig/discover vcconfig discoverReq
//
// Discovers the VC services advertised in the /.well-known/vc-configuration of a server.
//
// Responses:
//    default: genericError
//        200: discoverRes
func (o *Operation) GetConfiguration(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.GetConfiguration, rw, req.Body)
}
