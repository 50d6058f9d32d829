/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solid/vc-go/pkg/controller/command"
)

const sampleVC = `{
  "@context": ["https://www.w3.org/2018/credentials/v1"],
  "id": "https://vc.example/credentials/1872",
  "type": ["VerifiableCredential", "SolidCredential"],
  "issuer": "https://vc.example/issuer",
  "issuanceDate": "2021-06-01T12:00:00Z",
  "credentialSubject": {"id": "https://pod.example/alice/profile#me"},
  "proof": {
    "type": "Ed25519Signature2018",
    "created": "2021-06-01T12:00:00Z",
    "verificationMethod": "https://vc.example/issuer#key-1",
    "proofPurpose": "assertionMethod",
    "proofValue": "z58DAdFfa9SkqZMVPxAQpic7ndSayn1PzZs6ZjWp1CktyGesjuTSwRdo"
  }
}`

func TestNew(t *testing.T) {
	cmd := New()
	require.NotNil(t, cmd)

	handlers := cmd.GetHandlers()
	require.Len(t, handlers, 3)

	for _, h := range handlers {
		require.Equal(t, CommandName, h.Name())
	}
}

func TestCommand_ValidateCredential(t *testing.T) {
	t.Run("valid credential", func(t *testing.T) {
		var b bytes.Buffer

		cmdErr := New().ValidateCredential(&b, strings.NewReader(`{"credential":`+sampleVC+`}`))
		require.NoError(t, cmdErr)

		response := ValidationResponse{}
		require.NoError(t, json.Unmarshal(b.Bytes(), &response))
		require.True(t, response.Valid)
		require.Len(t, response.Checks, 3)
	})

	t.Run("invalid credential", func(t *testing.T) {
		var b bytes.Buffer

		cmdErr := New().ValidateCredential(&b, strings.NewReader(
			`{"credential":`+strings.Replace(sampleVC, "2021-06-01T12:00:00Z", "2021-13-40", 1)+`}`))
		require.NoError(t, cmdErr)

		response := ValidationResponse{}
		require.NoError(t, json.Unmarshal(b.Bytes(), &response))
		require.False(t, response.Valid)
		require.Equal(t, "issuanceDate", response.Checks[1].Name)
		require.False(t, response.Checks[1].Passed)
		require.NotEmpty(t, response.Checks[1].Reason)
	})

	t.Run("invalid request", func(t *testing.T) {
		var b bytes.Buffer

		cmdErr := New().ValidateCredential(&b, strings.NewReader("--"))
		require.Error(t, cmdErr)
		require.Equal(t, InvalidRequestErrorCode, cmdErr.Code())
		require.Equal(t, command.ValidationError, cmdErr.Type())
	})

	t.Run("missing credential", func(t *testing.T) {
		var b bytes.Buffer

		cmdErr := New().ValidateCredential(&b, strings.NewReader(`{}`))
		require.Error(t, cmdErr)
		require.Equal(t, MissingDocumentErrorCode, cmdErr.Code())
		require.Contains(t, cmdErr.Error(), errEmptyCredential)
	})
}

func TestCommand_ValidatePresentation(t *testing.T) {
	t.Run("bare presentation", func(t *testing.T) {
		var b bytes.Buffer

		cmdErr := New().ValidatePresentation(&b, strings.NewReader(
			`{"presentation": {"type": "VerifiablePresentation"}}`))
		require.NoError(t, cmdErr)

		response := ValidationResponse{}
		require.NoError(t, json.Unmarshal(b.Bytes(), &response))
		require.True(t, response.Valid)
	})

	t.Run("holder is not a URL", func(t *testing.T) {
		var b bytes.Buffer

		cmdErr := New().ValidatePresentation(&b, strings.NewReader(
			`{"presentation": {"type": "VerifiablePresentation", "holder": "not a url",
			  "verifiableCredential": [`+sampleVC+`]}}`))
		require.NoError(t, cmdErr)

		response := ValidationResponse{}
		require.NoError(t, json.Unmarshal(b.Bytes(), &response))
		require.False(t, response.Valid)
		require.Equal(t, "holder", response.Checks[2].Name)
		require.True(t, response.Checks[1].Passed)
	})

	t.Run("invalid request", func(t *testing.T) {
		cmdErr := New().ValidatePresentation(&bytes.Buffer{}, strings.NewReader("--"))
		require.Error(t, cmdErr)
		require.Equal(t, InvalidRequestErrorCode, cmdErr.Code())
	})

	t.Run("missing presentation", func(t *testing.T) {
		cmdErr := New().ValidatePresentation(&bytes.Buffer{}, strings.NewReader(`{}`))
		require.Error(t, cmdErr)
		require.Equal(t, MissingDocumentErrorCode, cmdErr.Code())
	})
}

func TestCommand_ConcatenateContexts(t *testing.T) {
	t.Run("flatten and deduplicate", func(t *testing.T) {
		var b bytes.Buffer

		cmdErr := New().ConcatenateContexts(&b, strings.NewReader(
			`{"contexts": [["https://a"], "https://b", ["https://a", "https://c"]]}`))
		require.NoError(t, cmdErr)
		require.JSONEq(t, `{"@context": ["https://a", "https://b", "https://c"]}`, b.String())
	})

	t.Run("nothing to merge", func(t *testing.T) {
		var b bytes.Buffer

		cmdErr := New().ConcatenateContexts(&b, strings.NewReader(`{"contexts": [null, []]}`))
		require.NoError(t, cmdErr)
		require.JSONEq(t, `{"@context": []}`, b.String())
	})

	t.Run("invalid request", func(t *testing.T) {
		cmdErr := New().ConcatenateContexts(&bytes.Buffer{}, strings.NewReader(`{"contexts": "x"}`))
		require.Error(t, cmdErr)
		require.Equal(t, InvalidRequestErrorCode, cmdErr.Code())
	})
}
