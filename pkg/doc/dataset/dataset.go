/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package dataset fetches linked-data resources and queries them as RDF datasets.
package dataset

import (
	"sort"

	"github.com/piprate/json-gold/ld"
)

const defaultGraph = "@default"

// Dataset is an in-memory RDF dataset parsed from one resource.
type Dataset struct {
	baseIRI string
	quads   []*ld.Quad
}

// New builds a Dataset from a json-gold RDF dataset. The default graph comes first, named graphs follow
// in name order.
func New(baseIRI string, rdf *ld.RDFDataset) *Dataset {
	ds := &Dataset{baseIRI: baseIRI}

	if rdf == nil {
		return ds
	}

	ds.quads = append(ds.quads, rdf.Graphs[defaultGraph]...)

	names := make([]string, 0, len(rdf.Graphs))

	for name := range rdf.Graphs {
		if name != defaultGraph {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	for _, name := range names {
		ds.quads = append(ds.quads, rdf.Graphs[name]...)
	}

	return ds
}

// BaseIRI returns the IRI the dataset was fetched from.
func (d *Dataset) BaseIRI() string {
	return d.baseIRI
}

// Len returns the number of quads in the dataset.
func (d *Dataset) Len() int {
	return len(d.quads)
}

type subjectOpts struct {
	blankNodes bool
}

// SubjectOpt configures Subjects.
type SubjectOpt func(opts *subjectOpts)

// WithBlankNodes includes blank node subjects, labelled "_:b0", "_:b1", ...
func WithBlankNodes() SubjectOpt {
	return func(opts *subjectOpts) {
		opts.blankNodes = true
	}
}

// Subjects returns the distinct subjects of the dataset in the order they first appear.
// Blank nodes are skipped unless WithBlankNodes() is given.
func (d *Dataset) Subjects(opts ...SubjectOpt) []string {
	options := &subjectOpts{}

	for _, opt := range opts {
		opt(options)
	}

	seen := make(map[string]struct{})
	subjects := []string{}

	for _, q := range d.quads {
		if q.Subject == nil || (ld.IsBlankNode(q.Subject) && !options.blankNodes) {
			continue
		}

		s := q.Subject.GetValue()
		if _, ok := seen[s]; ok {
			continue
		}

		seen[s] = struct{}{}
		subjects = append(subjects, s)
	}

	return subjects
}

// BlankNodes returns the blank node subjects of the dataset in the order they first appear.
func (d *Dataset) BlankNodes() []string {
	var nodes []string

	for _, s := range d.Subjects(WithBlankNodes()) {
		if isBlankLabel(s) {
			nodes = append(nodes, s)
		}
	}

	return nodes
}

// IRI returns the first IRI-valued object of subject's predicate.
func (d *Dataset) IRI(subject, predicate string) (string, bool) {
	for _, q := range d.quads {
		if q.Subject == nil || q.Predicate == nil || q.Object == nil {
			continue
		}

		if q.Subject.GetValue() != subject || q.Predicate.GetValue() != predicate {
			continue
		}

		if ld.IsIRI(q.Object) {
			return q.Object.GetValue(), true
		}
	}

	return "", false
}

func isBlankLabel(s string) bool {
	return len(s) > 2 && s[:2] == "_:"
}
