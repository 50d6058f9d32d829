/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package vcservice calls the issuer, status and derivation services found with package vcconfig.
package vcservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/solid/vc-go/pkg/common/log"
	"github.com/solid/vc-go/pkg/doc/ldcontext"
	"github.com/solid/vc-go/pkg/doc/verifiable"
)

var logger = log.New("solid-vc/client/vcservice")

const (
	defaultTimeout = time.Minute

	contextKey = "@context"
	typeKey    = "type"

	// RevocationStatusType is the status entry type sent to revoke a credential.
	RevocationStatusType = "RevocationList2020Status"
	revokedStatus        = "1"
)

// httpClient represents an HTTP client.
type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a VC services SDK client.
type Client struct {
	httpClient httpClient
}

// Option configures the VC services client.
type Option func(opts *Client)

// WithHTTPClient option is for custom http client.
func WithHTTPClient(httpClient httpClient) Option {
	return func(opts *Client) {
		opts.httpClient = httpClient
	}
}

// New creates new VC services client.
func New(opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

type issueRequest struct {
	Credential verifiable.JSONObject `json:"credential"`
}

type statusEntry struct {
	Type   string `json:"type"`
	Status string `json:"status"`
}

type statusRequest struct {
	CredentialID     string        `json:"credentialId"`
	CredentialStatus []statusEntry `json:"credentialStatus"`
}

type deriveRequest struct {
	VerifiableCredential verifiable.JSONObject `json:"verifiableCredential"`
}

// IssueCredential asks the issuer service to issue a credential about subjectID.
//
// subjectClaims become the credentialSubject; credentialClaims are the other fields of the credential.
// The "@context" of both is merged with the default credentials context, and the "type" of credentialClaims
// is appended to the default credential types. The issued credential must be well formed.
func (c *Client) IssueCredential(ctx context.Context, issuerEndpoint, subjectID string,
	subjectClaims, credentialClaims map[string]interface{}) (*verifiable.Credential, error) {
	credential := verifiable.JSONObject{}

	for k, v := range credentialClaims {
		if k != contextKey && k != typeKey {
			credential[k] = v
		}
	}

	subject := verifiable.JSONObject{}

	for k, v := range subjectClaims {
		if k != contextKey {
			subject[k] = v
		}
	}

	subject["id"] = subjectID

	credential[contextKey] = ldcontext.Concatenate(ldcontext.Default(),
		subjectClaims[contextKey], credentialClaims[contextKey])
	credential[typeKey] = credentialTypes(credentialClaims[typeKey])
	credential["credentialSubject"] = subject

	respBytes, err := c.post(ctx, issuerEndpoint, &issueRequest{Credential: credential})
	if err != nil {
		return nil, fmt.Errorf("issue credential: %w", err)
	}

	vc, err := verifiable.ParseCredential(json.RawMessage(respBytes))
	if err != nil {
		return nil, fmt.Errorf("issuer %s returned an invalid credential: %w", issuerEndpoint, err)
	}

	logger.Debugf("issued credential %s for %s", vc.ID, subjectID)

	return vc, nil
}

func credentialTypes(extra interface{}) []interface{} {
	var types []interface{}

	for _, t := range verifiable.DefaultCredentialTypes() {
		types = append(types, t)
	}

	switch v := extra.(type) {
	case nil:
	case []interface{}:
		types = append(types, v...)
	case []string:
		for _, t := range v {
			types = append(types, t)
		}
	default:
		types = append(types, v)
	}

	return types
}

// RevokeCredential asks the status service to mark credentialID as revoked.
func (c *Client) RevokeCredential(ctx context.Context, statusEndpoint, credentialID string) error {
	_, err := c.post(ctx, statusEndpoint, &statusRequest{
		CredentialID:     credentialID,
		CredentialStatus: []statusEntry{{Type: RevocationStatusType, Status: revokedStatus}},
	})
	if err != nil {
		return fmt.Errorf("revoke credential %s: %w", credentialID, err)
	}

	return nil
}

// GetCredentialsFromShape asks the derivation service for the credentials matching shape, a partial
// credential. The "@context" of shape is merged with the default credentials context.
func (c *Client) GetCredentialsFromShape(ctx context.Context, derivationEndpoint string,
	shape map[string]interface{}) ([]*verifiable.Credential, error) {
	query := verifiable.JSONObject{}

	for k, v := range shape {
		query[k] = v
	}

	query[contextKey] = ldcontext.Concatenate(ldcontext.Default(), shape[contextKey])

	respBytes, err := c.post(ctx, derivationEndpoint, &deriveRequest{VerifiableCredential: query})
	if err != nil {
		return nil, fmt.Errorf("derive credentials: %w", err)
	}

	vp, err := verifiable.ParsePresentation(json.RawMessage(respBytes))
	if err != nil {
		return nil, fmt.Errorf("derivation service %s returned an invalid presentation: %w", derivationEndpoint, err)
	}

	return vp.Credentials, nil
}

func (c *Client) post(ctx context.Context, endpoint string, body interface{}) ([]byte, error) {
	reqBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBytes))
	if err != nil {
		return nil, fmt.Errorf("new HTTP request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer closeResponseBody(resp.Body)

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("endpoint %s returned status '%d' and message '%s'",
			endpoint, resp.StatusCode, respBytes)
	}

	return respBytes, nil
}

func closeResponseBody(respBody io.Closer) {
	e := respBody.Close()
	if e != nil {
		logger.Warnf("failed to close response body: %v", e)
	}
}
