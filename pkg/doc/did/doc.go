/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package did contains the model of a resolved DID document.
package did

import "time"

// Doc DID document.
type Doc struct {
	Context            []string             `json:"@context,omitempty"`
	ID                 string               `json:"id,omitempty"`
	VerificationMethod []VerificationMethod `json:"verificationMethod,omitempty"`
	Authentication     []string             `json:"authentication,omitempty"`
	AssertionMethod    []string             `json:"assertionMethod,omitempty"`
	Service            []Service            `json:"service,omitempty"`
	Created            *time.Time           `json:"created,omitempty"`
	Updated            *time.Time           `json:"updated,omitempty"`
}

// VerificationMethod DID doc verification method.
type VerificationMethod struct {
	ID         string `json:"id,omitempty"`
	Type       string `json:"type,omitempty"`
	Controller string `json:"controller,omitempty"`

	PublicKeyBase58    string                 `json:"publicKeyBase58,omitempty"`
	PublicKeyMultibase string                 `json:"publicKeyMultibase,omitempty"`
	PublicKeyJwk       map[string]interface{} `json:"publicKeyJwk,omitempty"`
}

// Service DID doc service endpoint.
type Service struct {
	ID              string `json:"id,omitempty"`
	Type            string `json:"type,omitempty"`
	ServiceEndpoint string `json:"serviceEndpoint,omitempty"`
}

// VerificationMethods returns the document's verification methods of the
// given type, preserving document order. An empty type matches all methods.
func (doc *Doc) VerificationMethods(vmType string) []VerificationMethod {
	var result []VerificationMethod

	for i := range doc.VerificationMethod {
		if vmType == "" || doc.VerificationMethod[i].Type == vmType {
			result = append(result, doc.VerificationMethod[i])
		}
	}

	return result
}
