/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package vcconfig discovers the Verifiable Credential services a server advertises in its
// /.well-known/vc-configuration resource.
package vcconfig

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/piprate/json-gold/ld"

	"github.com/solid/vc-go/pkg/common/log"
	"github.com/solid/vc-go/pkg/doc/dataset"
)

var logger = log.New("solid-vc/client/vcconfig")

const (
	defaultTimeout = time.Minute

	// WellKnownPath is where a server publishes its VC service configuration.
	WellKnownPath = "/.well-known/vc-configuration"

	// Namespace of the VC service predicates.
	Namespace = "http://www.w3.org/ns/solid/vc#"

	derivationService = Namespace + "derivationService"
	issuerService     = Namespace + "issuerService"
	statusService     = Namespace + "statusService"
	verifierService   = Namespace + "verifierService"
)

// ErrAmbiguousConfiguration is returned in strict mode when the configuration resource has more than one
// anonymous subject.
var ErrAmbiguousConfiguration = errors.New("ambiguous VC configuration: more than one blank node subject")

// Configuration lists the endpoints of the VC services. An empty field means the service is not advertised.
type Configuration struct {
	DerivationService string `json:"derivationService,omitempty"`
	IssuerService     string `json:"issuerService,omitempty"`
	StatusService     string `json:"statusService,omitempty"`
	VerifierService   string `json:"verifierService,omitempty"`
}

//go:generate mockgen -destination ../../internal/gomocks/client/vcconfig/mocks.gen.go -package vcconfig . DatasetFetcher

// DatasetFetcher retrieves a linked-data resource as an RDF dataset.
type DatasetFetcher interface {
	Fetch(ctx context.Context, iri string) (*dataset.Dataset, error)
}

// httpClient represents an HTTP client.
type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a VC service discovery SDK client.
type Client struct {
	httpClient     httpClient
	documentLoader ld.DocumentLoader
	fetcher        DatasetFetcher
	strict         bool
}

// Option configures the discovery client.
type Option func(opts *Client)

// WithHTTPClient option is for custom http client.
func WithHTTPClient(httpClient httpClient) Option {
	return func(opts *Client) {
		opts.httpClient = httpClient
	}
}

// WithJSONLDDocumentLoader defines a JSON-LD document loader for the @context of configuration resources.
func WithJSONLDDocumentLoader(documentLoader ld.DocumentLoader) Option {
	return func(opts *Client) {
		opts.documentLoader = documentLoader
	}
}

// WithDatasetFetcher replaces the HTTP fetcher. The HTTP client and document loader options are then unused.
func WithDatasetFetcher(fetcher DatasetFetcher) Option {
	return func(opts *Client) {
		opts.fetcher = fetcher
	}
}

// WithStrictSubject makes GetConfiguration fail with ErrAmbiguousConfiguration instead of using the first
// of several anonymous subjects.
func WithStrictSubject() Option {
	return func(opts *Client) {
		opts.strict = true
	}
}

// New creates new VC service discovery client.
func New(opts ...Option) *Client {
	client := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.fetcher == nil {
		var parserOpts []dataset.JSONLDParserOpt

		if client.documentLoader != nil {
			parserOpts = append(parserOpts, dataset.WithDocumentLoader(client.documentLoader))
		}

		client.fetcher = dataset.NewFetcher(
			map[string]dataset.Parser{dataset.MediaTypeJSONLD: dataset.NewJSONLDParser(parserOpts...)},
			dataset.WithHTTPClient(client.httpClient),
		)
	}

	return client
}

// WellKnownIRI returns the configuration resource of the server at serviceURL. Only the origin of
// serviceURL is kept.
func WellKnownIRI(serviceURL string) (string, error) {
	u, err := url.Parse(serviceURL)
	if err != nil {
		return "", fmt.Errorf("parse service URL: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("parse service URL: %q is not an absolute URL", serviceURL)
	}

	origin := url.URL{Scheme: u.Scheme, Host: u.Host, Path: WellKnownPath}

	return origin.String(), nil
}

// GetConfiguration fetches the VC service configuration advertised by the server at serviceURL.
// Fetch and parse failures are returned; a resource without an anonymous subject gives an empty Configuration.
func (c *Client) GetConfiguration(ctx context.Context, serviceURL string) (*Configuration, error) {
	iri, err := WellKnownIRI(serviceURL)
	if err != nil {
		return nil, err
	}

	logger.Debugf("fetching VC configuration from %s", iri)

	ds, err := c.fetcher.Fetch(ctx, iri)
	if err != nil {
		return nil, fmt.Errorf("fetch VC configuration: %w", err)
	}

	config := &Configuration{}

	subjects := ds.BlankNodes()

	switch {
	case len(subjects) == 0:
		logger.Debugf("no VC configuration subject in %s", iri)

		return config, nil
	case len(subjects) > 1 && c.strict:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousConfiguration, iri)
	case len(subjects) > 1:
		logger.Warnf("%d anonymous subjects in %s, using %s", len(subjects), iri, subjects[0])
	}

	subject := subjects[0]

	config.DerivationService, _ = ds.IRI(subject, derivationService)
	config.IssuerService, _ = ds.IRI(subject, issuerService)
	config.StatusService, _ = ds.IRI(subject, statusService)
	config.VerifierService, _ = ds.IRI(subject, verifierService)

	return config, nil
}
