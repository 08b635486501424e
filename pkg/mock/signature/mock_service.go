/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package signature contains a mock signing service.
package signature

import (
	"github.com/vcxchange/framework-go/pkg/crypto/signature"
	"github.com/vcxchange/framework-go/pkg/doc/credential"
)

// MockService mock implementation of the signing service to be used only
// for unit tests.
type MockService struct {
	SignErr     error
	SignValue   credential.Credential
	SignFunc    func(credential.Credential, *signature.ProofContext) (credential.Credential, error)
	VerifyErr   error
	VerifyValue *signature.VerificationResult
	VerifyFunc  func(credential.Credential) (*signature.VerificationResult, error)
}

// SignCredential attaches a mock proof to the credential.
// Without SignFunc or SignValue, the input credential is returned with a
// proof object assembled from the proof context.
func (m *MockService) SignCredential(
	cred credential.Credential, ctx *signature.ProofContext) (credential.Credential, error) {
	if m.SignErr != nil {
		return nil, m.SignErr
	}

	if m.SignFunc != nil {
		return m.SignFunc(cred, ctx)
	}

	if m.SignValue != nil {
		return m.SignValue, nil
	}

	signed := make(credential.Credential, len(cred)+1)
	for k, v := range cred {
		signed[k] = v
	}

	proof := map[string]interface{}{
		"type":               ctx.SignatureType,
		"verificationMethod": ctx.VerificationMethod,
		"proofPurpose":       ctx.Purpose,
		"proofValue":         "mock-proof-value",
	}

	if ctx.Created != nil {
		proof["created"] = ctx.Created.Format("2006-01-02T15:04:05Z07:00")
	}

	if ctx.Challenge != "" {
		proof["challenge"] = ctx.Challenge
	}

	if ctx.Domain != "" {
		proof["domain"] = ctx.Domain
	}

	signed["proof"] = proof

	return signed, nil
}

// VerifyCredential reports the configured verification outcome, verified by
// default.
func (m *MockService) VerifyCredential(cred credential.Credential) (*signature.VerificationResult, error) {
	if m.VerifyErr != nil {
		return nil, m.VerifyErr
	}

	if m.VerifyFunc != nil {
		return m.VerifyFunc(cred)
	}

	if m.VerifyValue != nil {
		return m.VerifyValue, nil
	}

	return &signature.VerificationResult{Verified: true}, nil
}
