/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ldcontext_test

import (
	"fmt"

	"github.com/solid/vc-go/pkg/doc/ldcontext"
)

func ExampleConcatenate() {
	merged := ldcontext.Concatenate(
		ldcontext.Default(),
		"https://w3id.org/security/v2",
		[]interface{}{ldcontext.CredentialsV1, "https://schema.inrupt.com/credentials/v1.jsonld"},
	)

	for _, ctx := range merged {
		fmt.Println(ctx)
	}

	// Output:
	// https://www.w3.org/2018/credentials/v1
	// https://w3id.org/security/v2
	// https://schema.inrupt.com/credentials/v1.jsonld
}
