/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ldproof

import (
	"errors"
	"fmt"
)

// ErrUnsupportedProofType signals a proof type with no known compatible
// verification method type.
var ErrUnsupportedProofType = errors.New("unsupported proof type")

// ErrVerificationMethodNotFound signals that the issuer's DID document holds
// no verification method compatible with the requested proof type.
var ErrVerificationMethodNotFound = errors.New("no compatible verification method found")

// resolveVerificationMethod resolves the issuer's DID document and selects
// the verification method to sign with: the first method of the first
// compatible verification method type for the proof type. First-match keeps
// key selection reproducible when a document has several eligible keys.
func (s *Service) resolveVerificationMethod(issuerID, proofType string) (string, error) {
	spec, supported := DefaultSuiteSpecs[proofType]
	if !supported {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedProofType, proofType)
	}

	doc, err := s.vdr.Resolve(issuerID)
	if err != nil {
		return "", fmt.Errorf("resolve issuer DID %s: %w", issuerID, err)
	}

	methodType := spec.VerificationMethodTypes[0]

	methods := doc.VerificationMethods(methodType)
	if len(methods) == 0 {
		return "", fmt.Errorf("%w: issuer %s has no method of type %s",
			ErrVerificationMethodNotFound, issuerID, methodType)
	}

	return methods[0].ID, nil
}
