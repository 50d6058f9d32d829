/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"fmt"
	"strings"
)

// Check is the outcome of one named validation rule.
type Check struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Reason string `json:"reason,omitempty"`
}

// Result holds the checks run against a document, in the order they ran.
type Result struct {
	what   string
	Checks []Check `json:"checks"`
}

func newResult(what string) *Result {
	return &Result{what: what}
}

func (r *Result) pass(name string) {
	r.Checks = append(r.Checks, Check{Name: name, Passed: true})
}

func (r *Result) fail(name, reason string, args ...interface{}) {
	r.Checks = append(r.Checks, Check{Name: name, Reason: fmt.Sprintf(reason, args...)})
}

// Valid reports whether every check passed.
func (r *Result) Valid() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}

	return true
}

// Failed returns the checks that did not pass.
func (r *Result) Failed() []Check {
	var failed []Check

	for _, c := range r.Checks {
		if !c.Passed {
			failed = append(failed, c)
		}
	}

	return failed
}

// Err returns nil for a valid document and a *ValidationError otherwise.
func (r *Result) Err() error {
	if r.Valid() {
		return nil
	}

	return &ValidationError{What: r.what, Failed: r.Failed()}
}

// ValidationError describes why a document is not a valid credential or presentation.
type ValidationError struct {
	What   string
	Failed []Check
}

func (e *ValidationError) Error() string {
	var b strings.Builder

	b.WriteString(e.What + " is not valid:")

	for _, c := range e.Failed {
		b.WriteString("\n- " + c.Name + ": " + c.Reason)
	}

	return b.String()
}
