/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package signature defines the signing and verification contract consumed
// by the credential exchange format services. Format services own no
// cryptography; proof suites live behind this interface.
package signature

import (
	"time"

	"github.com/vcxchange/framework-go/pkg/doc/credential"
)

// ProofContext holds the parameters for the linked-data proof to be
// attached to a credential.
type ProofContext struct {
	// SignatureType is the proof type, eg Ed25519Signature2018.
	SignatureType string
	// VerificationMethod is the key reference the proof is bound to.
	VerificationMethod string
	// Purpose is the proof purpose, eg assertionMethod.
	Purpose string
	// Created is the asserted creation time of the proof.
	Created *time.Time
	// Challenge is the optional holder-supplied challenge.
	Challenge string
	// Domain is the optional domain restriction.
	Domain string
}

// VerificationResult is the outcome of a cryptographic credential check.
type VerificationResult struct {
	Verified bool
	// Error carries the verifier's reported reason when Verified is false.
	Error string
}

// Service signs and verifies verifiable credentials.
type Service interface {
	// SignCredential attaches a proof described by ctx to the credential and
	// returns the signed credential.
	SignCredential(cred credential.Credential, ctx *ProofContext) (credential.Credential, error)
	// VerifyCredential cryptographically verifies the credential's proof.
	// The error return reports a failure to run the check; a negative
	// outcome is reported through the result.
	VerifyCredential(cred credential.Credential) (*VerificationResult, error)
}
