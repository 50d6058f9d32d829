/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"sort"
	"strings"

	"github.com/solid/vc-go/pkg/common/log"
)

var logger = log.New("solid-vc/dataset")

// ErrUnsupportedContentType is returned when no parser is registered for the media type of a response.
var ErrUnsupportedContentType = errors.New("unsupported content type")

// HTTPError is returned when a resource is answered with a non-2xx status.
type HTTPError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("endpoint %s returned status '%d' and message '%s'", e.URL, e.StatusCode, e.Body)
}

// httpClient represents an HTTP client.
type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher retrieves resources over HTTP and parses them with the parser registered for their media type.
type Fetcher struct {
	parsers    map[string]Parser
	accept     string
	httpClient httpClient
}

// FetcherOpt configures Fetcher.
type FetcherOpt func(f *Fetcher)

// WithHTTPClient option is for custom http client.
func WithHTTPClient(client httpClient) FetcherOpt {
	return func(f *Fetcher) {
		f.httpClient = client
	}
}

// NewFetcher returns a Fetcher for the media types in parsers.
func NewFetcher(parsers map[string]Parser, opts ...FetcherOpt) *Fetcher {
	f := &Fetcher{
		parsers:    make(map[string]Parser, len(parsers)),
		httpClient: http.DefaultClient,
	}

	types := make([]string, 0, len(parsers))

	for mediaType, p := range parsers {
		mediaType = strings.ToLower(mediaType)
		f.parsers[mediaType] = p
		types = append(types, mediaType)
	}

	sort.Strings(types)
	f.accept = strings.Join(types, ", ")

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch issues one GET for iri and parses the response body.
func (f *Fetcher) Fetch(ctx context.Context, iri string) (*Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, iri, nil)
	if err != nil {
		return nil, fmt.Errorf("new HTTP request: %w", err)
	}

	if f.accept != "" {
		req.Header.Set("Accept", f.accept)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer closeResponseBody(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)) //nolint:errcheck

		return nil, &HTTPError{URL: iri, StatusCode: resp.StatusCode, Body: string(body)}
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedContentType, resp.Header.Get("Content-Type"))
	}

	p, ok := f.parsers[mediaType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
	}

	baseIRI := iri
	if resp.Request != nil && resp.Request.URL != nil {
		baseIRI = resp.Request.URL.String()
	}

	ds, err := p.Parse(resp.Body, baseIRI)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", iri, err)
	}

	return ds, nil
}

const maxErrorBody = 1 << 10

func closeResponseBody(respBody io.Closer) {
	e := respBody.Close()
	if e != nil {
		logger.Warnf("failed to close response body: %v", e)
	}
}
