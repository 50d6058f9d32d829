/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package dataset_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solid/vc-go/pkg/doc/dataset"
	"github.com/solid/vc-go/pkg/doc/jsonld"
)

func jsonldParsers() map[string]dataset.Parser {
	return map[string]dataset.Parser{
		dataset.MediaTypeJSONLD: dataset.NewJSONLDParser(dataset.WithDocumentLoader(jsonld.NewOfflineDocumentLoader())),
	}
}

func TestFetcher_Fetch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "application/ld+json", r.Header.Get("Accept"))

			w.Header().Set("Content-Type", "application/ld+json; charset=utf-8")
			fmt.Fprint(w, profileDoc)
		}))
		defer srv.Close()

		ds, err := dataset.NewFetcher(jsonldParsers()).Fetch(context.Background(), srv.URL+"/profile")
		require.NoError(t, err)
		require.Equal(t, srv.URL+"/profile", ds.BaseIRI())
		require.Equal(t, []string{"_:b0"}, ds.BlankNodes())
	})

	t.Run("accept header lists every parser", func(t *testing.T) {
		var accept string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accept = r.Header.Get("Accept")
			w.Header().Set("Content-Type", "application/ld+json")
			fmt.Fprint(w, `{}`)
		}))
		defer srv.Close()

		parsers := jsonldParsers()
		parsers["application/json"] = parsers[dataset.MediaTypeJSONLD]

		_, err := dataset.NewFetcher(parsers).Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		require.Equal(t, "application/json, application/ld+json", accept)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "no such resource", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := dataset.NewFetcher(jsonldParsers()).Fetch(context.Background(), srv.URL)
		require.Error(t, err)

		var httpErr *dataset.HTTPError

		require.True(t, errors.As(err, &httpErr))
		require.Equal(t, http.StatusNotFound, httpErr.StatusCode)
		require.Contains(t, httpErr.Body, "no such resource")
	})

	t.Run("unsupported content type", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/turtle")
			fmt.Fprint(w, `<#me> a <#Person> .`)
		}))
		defer srv.Close()

		_, err := dataset.NewFetcher(jsonldParsers()).Fetch(context.Background(), srv.URL)
		require.True(t, errors.Is(err, dataset.ErrUnsupportedContentType))
		require.Contains(t, err.Error(), "text/turtle")
	})

	t.Run("missing content type", func(t *testing.T) {
		_, err := dataset.NewFetcher(jsonldParsers(), dataset.WithHTTPClient(&mockHTTPClient{
			DoFunc: func(req *http.Request) (*http.Response, error) {
				return response(http.StatusOK, "", `{}`), nil
			},
		})).Fetch(context.Background(), "https://pod.example/")
		require.True(t, errors.Is(err, dataset.ErrUnsupportedContentType))
	})

	t.Run("unparseable body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/ld+json")
			fmt.Fprint(w, `{not json`)
		}))
		defer srv.Close()

		_, err := dataset.NewFetcher(jsonldParsers()).Fetch(context.Background(), srv.URL)
		require.Error(t, err)
		require.Contains(t, err.Error(), "parse "+srv.URL)
	})

	t.Run("transport error", func(t *testing.T) {
		transportErr := errors.New("connection refused")

		_, err := dataset.NewFetcher(jsonldParsers(), dataset.WithHTTPClient(&mockHTTPClient{
			DoFunc: func(req *http.Request) (*http.Response, error) {
				return nil, transportErr
			},
		})).Fetch(context.Background(), "https://pod.example/")
		require.True(t, errors.Is(err, transportErr))
	})

	t.Run("invalid IRI", func(t *testing.T) {
		_, err := dataset.NewFetcher(jsonldParsers()).Fetch(context.Background(), "://no-scheme")
		require.Error(t, err)
		require.Contains(t, err.Error(), "new HTTP request")
	})

	t.Run("cancelled context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := dataset.NewFetcher(jsonldParsers()).Fetch(ctx, srv.URL)
		require.True(t, errors.Is(err, context.Canceled))
	})
}
