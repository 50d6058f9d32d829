/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vcconfig

import (
	"github.com/solid/vc-go/pkg/client/vcconfig"
	vcconfigcmd "github.com/solid/vc-go/pkg/controller/command/vcconfig"
)

// discoverReq model
//
// swagger:parameters discoverReq
type discoverReq struct { // nolint: unused,deadcode
	// in: body
	Params vcconfigcmd.DiscoverRequest
}

// discoverRes model
//
// swagger:response discoverRes
type discoverRes struct { // nolint: unused,deadcode
	// in: body
	vcconfig.Configuration
}
