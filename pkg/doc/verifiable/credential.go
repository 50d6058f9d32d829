/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package verifiable

import (
	"encoding/json"
	"fmt"
	"time"
)

// Credential is a Verifiable Credential that passed ValidateCredential.
type Credential struct {
	Context      []interface{} `mapstructure:"@context"`
	ID           string        `mapstructure:"id"`
	Types        []string      `mapstructure:"type"`
	Issuer       string        `mapstructure:"issuer"`
	IssuanceDate string        `mapstructure:"issuanceDate"`
	Subject      Subject       `mapstructure:"credentialSubject"`
	Proof        Proof         `mapstructure:"proof"`
	CustomFields JSONObject    `mapstructure:",remain"`
}

// Subject is the entity a credential makes claims about.
type Subject struct {
	ID     string     `mapstructure:"id"`
	Claims JSONObject `mapstructure:",remain"`
}

// Proof is the proof section of a credential or presentation. It is carried, not verified.
type Proof struct {
	Type               string     `mapstructure:"type"`
	Created            string     `mapstructure:"created"`
	VerificationMethod string     `mapstructure:"verificationMethod"`
	ProofPurpose       string     `mapstructure:"proofPurpose"`
	ProofValue         string     `mapstructure:"proofValue"`
	CustomFields       JSONObject `mapstructure:",remain"`
}

// ValidateCredential runs the credential checks against data: the "shape" of the document,
// then "issuanceDate" and "proof.created" against the date grammar.
func ValidateCredential(data interface{}) *Result {
	r := newResult("verifiable credential")

	doc, err := normalize(data)
	if err != nil {
		r.fail("shape", "%v", err)

		return r
	}

	checkShape(r, credentialSchemaLoader, doc)

	obj, _ := doc.(JSONObject) //nolint:errcheck

	issued, ok := obj["issuanceDate"]
	checkDate(r, "issuanceDate", issued, ok)

	proof, _ := obj["proof"].(JSONObject) //nolint:errcheck

	created, ok := proof["created"]
	checkDate(r, "proof.created", created, ok)

	return r
}

// IsCredential reports whether data has the shape of a Verifiable Credential.
func IsCredential(data interface{}) bool {
	return ValidateCredential(data).Valid()
}

// ParseCredential validates data and decodes it into a Credential.
// A document that fails validation is reported as a *ValidationError.
func ParseCredential(data interface{}) (*Credential, error) {
	doc, err := normalize(data)
	if err != nil {
		return nil, fmt.Errorf("parse credential: %w", err)
	}

	if err = ValidateCredential(doc).Err(); err != nil {
		return nil, err
	}

	vc := &Credential{}

	if err := decode(doc.(JSONObject), vc); err != nil { //nolint:forcetypeassert
		return nil, fmt.Errorf("decode credential: %w", err)
	}

	return vc, nil
}

// Issued returns the parsed issuance date.
func (vc *Credential) Issued() time.Time {
	t, _ := ParseDate(vc.IssuanceDate) //nolint:errcheck

	return t
}

// HasType reports whether the credential declares type t.
func (vc *Credential) HasType(t string) bool {
	for _, v := range vc.Types {
		if v == t {
			return true
		}
	}

	return false
}

// JSONObject returns the credential in its JSON form.
func (vc *Credential) JSONObject() JSONObject {
	obj := JSONObject{
		"id":                vc.ID,
		"type":              vc.Types,
		"issuer":            vc.Issuer,
		"issuanceDate":      vc.IssuanceDate,
		"credentialSubject": vc.Subject.JSONObject(),
		"proof":             vc.Proof.JSONObject(),
	}

	if len(vc.Context) > 0 {
		obj["@context"] = vc.Context
	}

	return merge(obj, vc.CustomFields)
}

// MarshalJSON converts the credential back to JSON, custom fields included.
func (vc Credential) MarshalJSON() ([]byte, error) {
	return json.Marshal(vc.JSONObject())
}

// JSONObject returns the subject with its claims.
func (s *Subject) JSONObject() JSONObject {
	return merge(JSONObject{"id": s.ID}, s.Claims)
}

// MarshalJSON converts the subject to JSON.
func (s Subject) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.JSONObject())
}

// JSONObject returns the proof in its JSON form.
func (p *Proof) JSONObject() JSONObject {
	return merge(JSONObject{
		"type":               p.Type,
		"created":            p.Created,
		"verificationMethod": p.VerificationMethod,
		"proofPurpose":       p.ProofPurpose,
		"proofValue":         p.ProofValue,
	}, p.CustomFields)
}

// MarshalJSON converts the proof to JSON.
func (p Proof) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.JSONObject())
}
