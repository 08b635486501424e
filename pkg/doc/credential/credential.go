/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package credential provides the W3C verifiable credential model used by
// the exchange format services.
package credential

import (
	"encoding/json"
	"errors"
	"fmt"

	jsongold "github.com/piprate/json-gold/ld"
	"github.com/xeipuuv/gojsonschema"

	"github.com/vcxchange/framework-go/pkg/common/log"
	docld "github.com/vcxchange/framework-go/pkg/doc/ld"
)

var logger = log.New("vcx-framework/doc/credential")

// ErrProofArrayUnsupported signals that a credential carries an array of
// proofs, a shape the linked-data format services do not support.
var ErrProofArrayUnsupported = errors.New("credentials with multiple proofs are not supported")

// ErrProofMissing signals that a credential carries no proof at all.
var ErrProofMissing = errors.New("credential has no proof")

// Credential is a W3C verifiable credential in its generic JSON form.
// The map form keeps unknown claim structure intact, which matters for the
// byte-for-byte content checks between protocol phases.
type Credential map[string]interface{}

type parseOpts struct {
	disableSchemaValidation bool
	schemaLoader            gojsonschema.JSONLoader
	documentLoader          jsongold.DocumentLoader
}

// ParseOpt configures ParseCredential.
type ParseOpt func(*parseOpts)

// WithDisabledSchemaValidation skips JSON schema validation.
func WithDisabledSchemaValidation() ParseOpt {
	return func(o *parseOpts) {
		o.disableSchemaValidation = true
	}
}

// WithSchemaLoader validates against a custom JSON schema instead of the
// default credential schema.
func WithSchemaLoader(loader gojsonschema.JSONLoader) ParseOpt {
	return func(o *parseOpts) {
		o.schemaLoader = loader
	}
}

// WithJSONLDValidation additionally expands the credential as a JSON-LD
// document using the given loader, failing on unresolvable contexts.
func WithJSONLDValidation(loader jsongold.DocumentLoader) ParseOpt {
	return func(o *parseOpts) {
		o.documentLoader = loader
	}
}

// ParseCredential parses raw JSON into a Credential and validates it.
func ParseCredential(raw []byte, opts ...ParseOpt) (Credential, error) {
	options := &parseOpts{}

	for _, opt := range opts {
		opt(options)
	}

	var cred Credential
	if err := json.Unmarshal(raw, &cred); err != nil {
		return nil, fmt.Errorf("unmarshal credential: %w", err)
	}

	if !options.disableSchemaValidation {
		if err := validateSchema(raw, options.schemaLoader); err != nil {
			return nil, err
		}
	}

	if options.documentLoader != nil {
		if err := docld.ValidateDocument(cred, options.documentLoader); err != nil {
			return nil, fmt.Errorf("JSON-LD validation: %w", err)
		}
	}

	return cred, nil
}

// MarshalJSON marshals the credential back to its raw JSON form.
func (c Credential) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}(c))
}

// ID returns the credential's id, if any.
func (c Credential) ID() string {
	id, _ := c["id"].(string) // nolint: errcheck
	return id
}

// Types returns the credential's type entries.
func (c Credential) Types() []string {
	return stringSlice(c["type"])
}

// Contexts returns the credential's @context entries.
func (c Credential) Contexts() []string {
	return stringSlice(c["@context"])
}

// SubjectID returns the id of the credential subject, if any.
func (c Credential) SubjectID() string {
	switch subject := c["credentialSubject"].(type) {
	case string:
		return subject
	case map[string]interface{}:
		id, _ := subject["id"].(string) // nolint: errcheck
		return id
	}

	return ""
}

// Issuer returns the credential's issuer in its normalized form.
// The issuer is either a bare identifier string or an object whose id field
// is the identifier.
func (c Credential) Issuer() (*Issuer, error) {
	raw, ok := c["issuer"]
	if !ok {
		return nil, errors.New("credential has no issuer")
	}

	bits, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshal issuer: %w", err)
	}

	issuer := &Issuer{}
	if err := issuer.UnmarshalJSON(bits); err != nil {
		return nil, err
	}

	return issuer, nil
}

// Proof returns the credential's single proof.
// A proof array fails with ErrProofArrayUnsupported, even when it holds a
// single element, since the array shape itself is ambiguous for matching.
func (c Credential) Proof() (*Proof, error) {
	raw, ok := c["proof"]
	if !ok || raw == nil {
		return nil, ErrProofMissing
	}

	switch p := raw.(type) {
	case []interface{}:
		return nil, ErrProofArrayUnsupported
	case map[string]interface{}:
		return newProof(p), nil
	default:
		return nil, fmt.Errorf("unexpected proof shape %T", raw)
	}
}

// WithoutProof returns a shallow copy of the credential with the proof
// removed.
func (c Credential) WithoutProof() Credential {
	stripped := make(Credential, len(c))

	for k, v := range c {
		if k == "proof" {
			continue
		}

		stripped[k] = v
	}

	return stripped
}

func stringSlice(raw interface{}) []string {
	var result []string

	switch v := raw.(type) {
	case string:
		result = append(result, v)
	case []interface{}:
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				result = append(result, s)
			}
		}
	}

	return result
}
