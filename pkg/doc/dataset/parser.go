/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package dataset

import (
	"fmt"
	"io"

	"github.com/piprate/json-gold/ld"
)

// Media types with a parser in this package.
const (
	MediaTypeJSONLD = "application/ld+json"
)

// Parser reads a serialized RDF resource into a Dataset. baseIRI resolves relative IRIs.
type Parser interface {
	Parse(r io.Reader, baseIRI string) (*Dataset, error)
}

// JSONLDParser parses JSON-LD documents with json-gold.
type JSONLDParser struct {
	documentLoader ld.DocumentLoader
}

// JSONLDParserOpt configures JSONLDParser.
type JSONLDParserOpt func(p *JSONLDParser)

// WithDocumentLoader sets the loader for remote @context documents. json-gold's default loader is used
// otherwise.
func WithDocumentLoader(loader ld.DocumentLoader) JSONLDParserOpt {
	return func(p *JSONLDParser) {
		p.documentLoader = loader
	}
}

// NewJSONLDParser returns a Parser for application/ld+json.
func NewJSONLDParser(opts ...JSONLDParserOpt) *JSONLDParser {
	p := &JSONLDParser{}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse converts the JSON-LD document read from r into RDF.
func (p *JSONLDParser) Parse(r io.Reader, baseIRI string) (*Dataset, error) {
	doc, err := ld.DocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("read JSON-LD document: %w", err)
	}

	options := ld.NewJsonLdOptions(baseIRI)
	options.ProcessingMode = ld.JsonLd_1_1

	if p.documentLoader != nil {
		options.DocumentLoader = p.documentLoader
	}

	out, err := ld.NewJsonLdProcessor().ToRDF(doc, options)
	if err != nil {
		return nil, fmt.Errorf("convert JSON-LD to RDF: %w", err)
	}

	rdf, ok := out.(*ld.RDFDataset)
	if !ok {
		return nil, fmt.Errorf("convert JSON-LD to RDF: unexpected result %T", out)
	}

	return New(baseIRI, rdf), nil
}
