/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package vc validates W3C verifiable credentials and presentations and talks to the VC services
// advertised by Solid pods.
//
// Packages for end developer usage
//
// pkg/doc/verifiable: Checks credentials and presentations, returning a result per named check.
//
// pkg/doc/ldcontext: Merges JSON-LD @context values.
//
// pkg/client/vcconfig: Discovers the VC service configuration published in a server's .well-known document.
//
// pkg/client/vcservice: Issues, revokes and queries credentials through those services.
//
// pkg/controller: Exposes the above as commands and REST handlers. cmd/vc-rest serves the REST handlers.
//
// Basic workflow
//
//      1) Discover the VC configuration of a service with vcconfig.Client.GetConfiguration.
//      2) Issue a credential at the advertised issuer with vcservice.Client.IssueCredential.
//      3) Validate what you receive with verifiable.ValidateCredential.
package vc
