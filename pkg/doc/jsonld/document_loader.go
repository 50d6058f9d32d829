/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jsonld

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/bluele/gcache"
	"github.com/piprate/json-gold/ld"

	"github.com/solid/vc-go/pkg/common/log"
)

const defaultCacheSize = 100

var logger = log.New("solid-vc/jsonld")

// ErrContextNotFound is returned when a JSON-LD context document is neither preloaded nor allowed to be
// fetched from its remote URL.
var ErrContextNotFound = errors.New("context document not found")

// DocumentLoader is an ld.DocumentLoader that serves preloaded context documents and keeps remote ones in
// a bounded LRU cache.
type DocumentLoader struct {
	preloaded map[string]*ld.RemoteDocument
	remote    gcache.Cache
}

// NewDocumentLoader returns a new DocumentLoader instance.
//
// Contexts passed with WithExtraContexts() are served without network access. Any other context is fetched
// with the remote loader (by default json-gold's DefaultDocumentLoader) and cached; WithoutRemoteLoading()
// turns remote fetching off.
func NewDocumentLoader(opts ...DocumentLoaderOpts) (*DocumentLoader, error) {
	options := &documentLoaderOpts{
		cacheSize:            defaultCacheSize,
		remoteDocumentLoader: NewRemoteDocumentLoader(nil),
	}

	for i := range opts {
		opts[i](options)
	}

	preloaded, err := preload(options.extraContexts)
	if err != nil {
		return nil, fmt.Errorf("new document loader: %w", err)
	}

	loader := &DocumentLoader{preloaded: preloaded}

	if options.remoteDocumentLoader != nil {
		remote := options.remoteDocumentLoader

		loader.remote = gcache.New(options.cacheSize).LRU().
			LoaderFunc(func(key interface{}) (interface{}, error) {
				u := key.(string) //nolint:forcetypeassert

				logger.Debugf("fetching remote context document %s", u)

				return remote.LoadDocument(u)
			}).
			Build()
	}

	return loader, nil
}

func preload(docs []ContextDocument) (map[string]*ld.RemoteDocument, error) {
	preloaded := make(map[string]*ld.RemoteDocument, len(docs))

	for _, doc := range docs {
		content, err := ld.DocumentFromReader(bytes.NewReader(doc.Content))
		if err != nil {
			return nil, fmt.Errorf("document from reader %s: %w", doc.URL, err)
		}

		documentURL := doc.DocumentURL
		if documentURL == "" {
			documentURL = doc.URL
		}

		preloaded[doc.URL] = &ld.RemoteDocument{
			DocumentURL: documentURL,
			Document:    content,
		}
	}

	return preloaded, nil
}

// LoadDocument resolves a JSON-LD context document by its URL (u), from the preloaded documents first and
// then from the remote URL. ErrContextNotFound is returned when remote loading is disabled.
func (l *DocumentLoader) LoadDocument(u string) (*ld.RemoteDocument, error) {
	if rd, ok := l.preloaded[u]; ok {
		return rd, nil
	}

	if l.remote == nil {
		return nil, fmt.Errorf("%w: %s", ErrContextNotFound, u)
	}

	v, err := l.remote.Get(u)
	if err != nil {
		return nil, fmt.Errorf("load remote context document: %w", err)
	}

	return v.(*ld.RemoteDocument), nil //nolint:forcetypeassert
}

type documentLoaderOpts struct {
	remoteDocumentLoader ld.DocumentLoader
	extraContexts        []ContextDocument
	cacheSize            int
}

// DocumentLoaderOpts configures DocumentLoader during creation.
type DocumentLoaderOpts func(opts *documentLoaderOpts)

// ContextDocument is a JSON-LD context document with associated metadata.
type ContextDocument struct {
	URL         string `json:"url"`                   // URL is a context URL that shows up in the documents.
	DocumentURL string `json:"documentURL,omitempty"` // The final URL of the loaded context document.
	Content     []byte `json:"content"`               // Content of the context document.
}

// WithExtraContexts sets the context documents served without network access.
func WithExtraContexts(contexts ...ContextDocument) DocumentLoaderOpts {
	return func(opts *documentLoaderOpts) {
		opts.extraContexts = append(opts.extraContexts, contexts...)
	}
}

// WithRemoteDocumentLoader specifies loader for fetching JSON-LD context documents from remote URLs.
// Documents are fetched with this loader only if they are not preloaded.
func WithRemoteDocumentLoader(loader ld.DocumentLoader) DocumentLoaderOpts {
	return func(opts *documentLoaderOpts) {
		opts.remoteDocumentLoader = loader
	}
}

// WithoutRemoteLoading restricts the loader to preloaded context documents.
func WithoutRemoteLoading() DocumentLoaderOpts {
	return func(opts *documentLoaderOpts) {
		opts.remoteDocumentLoader = nil
	}
}

// WithCacheSize sets how many remote context documents are kept. Non-positive sizes are ignored.
func WithCacheSize(size int) DocumentLoaderOpts {
	return func(opts *documentLoaderOpts) {
		if size > 0 {
			opts.cacheSize = size
		}
	}
}
