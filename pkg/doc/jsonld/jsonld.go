/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package jsonld loads the JSON-LD context documents needed to expand linked-data documents.
package jsonld

import (
	"fmt"
	"net/http"

	"github.com/piprate/json-gold/ld"
)

// NewRemoteDocumentLoader returns json-gold's default loader fetching context documents with client.
// A nil client means http.DefaultClient.
func NewRemoteDocumentLoader(client *http.Client) ld.DocumentLoader {
	if client == nil {
		client = http.DefaultClient
	}

	return ld.NewDefaultDocumentLoader(client)
}

// NewOfflineDocumentLoader returns a loader that refuses every network request. json-gold still resolves
// inline contexts with it.
func NewOfflineDocumentLoader() ld.DocumentLoader {
	return ld.NewDefaultDocumentLoader(&http.Client{Transport: &disabledNetworkTransport{}})
}

type disabledNetworkTransport struct{}

func (*disabledNetworkTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	return nil, fmt.Errorf("network is disabled [%s]", r.URL)
}
