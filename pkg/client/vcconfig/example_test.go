/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package vcconfig_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/solid/vc-go/pkg/client/vcconfig"
	"github.com/solid/vc-go/pkg/doc/jsonld"
)

func ExampleClient_GetConfiguration() {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/ld+json")
		fmt.Fprint(w, `{
		  "@context": {"issuerService": {"@id": "http://www.w3.org/ns/solid/vc#issuerService", "@type": "@id"}},
		  "issuerService": "https://vc.example/issue"
		}`)
	}))
	defer srv.Close()

	client := vcconfig.New(vcconfig.WithJSONLDDocumentLoader(jsonld.NewOfflineDocumentLoader()))

	config, err := client.GetConfiguration(context.Background(), srv.URL+"/alice/profile")
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(config.IssuerService)
	fmt.Printf("%q\n", config.VerifierService)

	// Output:
	// https://vc.example/issue
	// ""
}
