/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"encoding/json"
	"fmt"
	"strings"
)

const credentialsField = "verifiableCredential"

// Presentation is a Verifiable Presentation that passed ValidatePresentation.
type Presentation struct {
	Context     []interface{} `mapstructure:"@context"`
	ID          string        `mapstructure:"id"`
	Types       []string      `mapstructure:"type"`
	Credentials []*Credential `mapstructure:"-"`
	Holder      string        `mapstructure:"holder"`
	// Proof is kept as received, presentation proofs are not checked.
	Proof        interface{} `mapstructure:"proof"`
	CustomFields JSONObject  `mapstructure:",remain"`
}

// ValidatePresentation runs the presentation checks against data: the "shape" of the document,
// each embedded credential under "verifiableCredential", and "holder" as an absolute URL.
// The proof is not checked.
func ValidatePresentation(data interface{}) *Result {
	r := newResult("verifiable presentation")

	doc, err := normalize(data)
	if err != nil {
		r.fail("shape", "%v", err)

		return r
	}

	checkShape(r, presentationSchemaLoader, doc)

	obj, _ := doc.(JSONObject) //nolint:errcheck

	checkCredentials(r, obj)
	checkHolder(r, obj)

	return r
}

func checkCredentials(r *Result, obj JSONObject) {
	value, ok := obj[credentialsField]
	if !ok {
		r.pass(credentialsField)

		return
	}

	list, ok := value.([]interface{})
	if !ok {
		r.fail(credentialsField, "not an array")

		return
	}

	var reasons []string

	for i, vc := range list {
		res := ValidateCredential(vc)
		if res.Valid() {
			continue
		}

		var names []string
		for _, c := range res.Failed() {
			names = append(names, c.Name)
		}

		reasons = append(reasons, fmt.Sprintf("%s[%d]: %s", credentialsField, i, strings.Join(names, ", ")))
	}

	if len(reasons) > 0 {
		r.fail(credentialsField, "%s", strings.Join(reasons, "; "))

		return
	}

	r.pass(credentialsField)
}

func checkHolder(r *Result, obj JSONObject) {
	const name = "holder"

	value, ok := obj[name]
	if !ok {
		r.pass(name)

		return
	}

	s, ok := value.(string)
	if !ok {
		r.fail(name, "not a string")

		return
	}

	if !IsURL(s) {
		r.fail(name, "%q is not an absolute URL", s)

		return
	}

	r.pass(name)
}

// IsPresentation reports whether data has the shape of a Verifiable Presentation.
func IsPresentation(data interface{}) bool {
	return ValidatePresentation(data).Valid()
}

// ParsePresentation validates data and decodes it into a Presentation with typed credentials.
func ParsePresentation(data interface{}) (*Presentation, error) {
	doc, err := normalize(data)
	if err != nil {
		return nil, fmt.Errorf("parse presentation: %w", err)
	}

	if err = ValidatePresentation(doc).Err(); err != nil {
		return nil, err
	}

	obj := doc.(JSONObject) //nolint:forcetypeassert
	vp := &Presentation{}

	if err = decode(obj, vp); err != nil {
		return nil, fmt.Errorf("decode presentation: %w", err)
	}

	delete(vp.CustomFields, credentialsField)

	list, _ := obj[credentialsField].([]interface{}) //nolint:errcheck

	vp.Credentials = make([]*Credential, 0, len(list))

	for i, raw := range list {
		vc, err := ParseCredential(raw)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", credentialsField, i, err)
		}

		vp.Credentials = append(vp.Credentials, vc)
	}

	return vp, nil
}

// JSONObject returns the presentation in its JSON form.
func (vp *Presentation) JSONObject() JSONObject {
	obj := JSONObject{"type": vp.Types}

	if len(vp.Context) > 0 {
		obj["@context"] = vp.Context
	}

	if vp.ID != "" {
		obj["id"] = vp.ID
	}

	if vp.Holder != "" {
		obj["holder"] = vp.Holder
	}

	if vp.Proof != nil {
		obj["proof"] = vp.Proof
	}

	if len(vp.Credentials) > 0 {
		creds := make([]interface{}, len(vp.Credentials))
		for i, vc := range vp.Credentials {
			creds[i] = vc.JSONObject()
		}

		obj[credentialsField] = creds
	}

	return merge(obj, vp.CustomFields)
}

// MarshalJSON converts the presentation back to JSON.
func (vp Presentation) MarshalJSON() ([]byte, error) {
	return json.Marshal(vp.JSONObject())
}
