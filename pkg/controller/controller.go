/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package controller assembles the command and REST handlers of the credential validation and
// VC service discovery controllers.
package controller

import (
	"net/http"

	"github.com/piprate/json-gold/ld"

	"github.com/solid/vc-go/pkg/client/vcconfig"
	"github.com/solid/vc-go/pkg/controller/command"
	vcconfigcmd "github.com/solid/vc-go/pkg/controller/command/vcconfig"
	"github.com/solid/vc-go/pkg/controller/command/verifiable"
	"github.com/solid/vc-go/pkg/controller/rest"
	vcconfigrest "github.com/solid/vc-go/pkg/controller/rest/vcconfig"
	verifiablerest "github.com/solid/vc-go/pkg/controller/rest/verifiable"
)

type allOpts struct {
	httpClient     *http.Client
	documentLoader ld.DocumentLoader
	strictSubject  bool
}

// Opt represents a controller option.
type Opt func(opts *allOpts)

// WithHTTPClient is an option for the HTTP client used to fetch VC configurations.
func WithHTTPClient(client *http.Client) Opt {
	return func(opts *allOpts) {
		opts.httpClient = client
	}
}

// WithJSONLDDocumentLoader is an option for the loader of @context documents of VC configurations.
func WithJSONLDDocumentLoader(loader ld.DocumentLoader) Opt {
	return func(opts *allOpts) {
		opts.documentLoader = loader
	}
}

// WithStrictSubject makes discovery reject configurations with several anonymous subjects.
func WithStrictSubject() Opt {
	return func(opts *allOpts) {
		opts.strictSubject = true
	}
}

func newConfigurationClient(opts ...Opt) *vcconfig.Client {
	restAPIOpts := &allOpts{}
	// Apply options
	for _, opt := range opts {
		opt(restAPIOpts)
	}

	var clientOpts []vcconfig.Option

	if restAPIOpts.httpClient != nil {
		clientOpts = append(clientOpts, vcconfig.WithHTTPClient(restAPIOpts.httpClient))
	}

	if restAPIOpts.documentLoader != nil {
		clientOpts = append(clientOpts, vcconfig.WithJSONLDDocumentLoader(restAPIOpts.documentLoader))
	}

	if restAPIOpts.strictSubject {
		clientOpts = append(clientOpts, vcconfig.WithStrictSubject())
	}

	return vcconfig.New(clientOpts...)
}

// GetRESTHandlers returns all REST handlers provided by controller.
func GetRESTHandlers(opts ...Opt) ([]rest.Handler, error) {
	// verifiable REST operation
	verifiableOp := verifiablerest.New()

	// vcconfig REST operation
	vcconfigOp := vcconfigrest.New(newConfigurationClient(opts...))

	var allHandlers []rest.Handler
	allHandlers = append(allHandlers, verifiableOp.GetRESTHandlers()...)
	allHandlers = append(allHandlers, vcconfigOp.GetRESTHandlers()...)

	return allHandlers, nil
}

// GetCommandHandlers returns all command handlers provided by controller.
func GetCommandHandlers(opts ...Opt) ([]command.Handler, error) {
	// verifiable command operation
	verifiablecmd := verifiable.New()

	// vcconfig command operation
	vcconfigCmd := vcconfigcmd.New(newConfigurationClient(opts...))

	var allHandlers []command.Handler
	allHandlers = append(allHandlers, verifiablecmd.GetHandlers()...)
	allHandlers = append(allHandlers, vcconfigCmd.GetHandlers()...)

	return allHandlers, nil
}
