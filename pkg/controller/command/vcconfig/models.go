/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vcconfig

// DiscoverRequest is model for discovering the VC services of a server.
type DiscoverRequest struct {
	// ServiceURL is any URL of the server, only its origin is used.
	ServiceURL string `json:"serviceURL"`
}
