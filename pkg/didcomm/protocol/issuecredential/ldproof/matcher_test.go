/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ldproof

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vcxchange/framework-go/pkg/didcomm/protocol/issuecredential"
	"github.com/vcxchange/framework-go/pkg/doc/credential"
)

const matcherTemplate = `{
  "@context": ["https://www.w3.org/2018/credentials/v1"],
  "type": ["VerifiableCredential"],
  "credentialSubject": {"id": "did:example:subject", "name": "Alice"},
  "issuer": "did:example:issuer",
  "issuanceDate": "2024-02-03T19:23:24Z"
}`

func TestMatchCredential(t *testing.T) {
	t.Run("matching credential passes", func(t *testing.T) {
		require.NoError(t, matchCredential(issuedCredential(t, nil), request(nil)))
	})

	t.Run("proof array always fails", func(t *testing.T) {
		vc := issuedCredential(t, nil)
		vc["proof"] = []interface{}{vc["proof"]}

		err := matchCredential(vc, request(nil))
		require.ErrorIs(t, err, credential.ErrProofArrayUnsupported)
	})

	t.Run("missing proof fails the proof rule", func(t *testing.T) {
		vc := issuedCredential(t, nil)
		delete(vc, "proof")

		requireMismatch(t, matchCredential(vc, request(nil)), "proof")
	})

	t.Run("created absent in request ignores proof created", func(t *testing.T) {
		// Deliberate leniency: the request never asked for a specific
		// creation time, so whatever the issuer stamped is acceptable.
		vc := issuedCredential(t, func(proof map[string]interface{}) {
			proof["created"] = "2030-01-01T00:00:00Z"
		})

		require.NoError(t, matchCredential(vc, request(nil)))
	})

	t.Run("created present in request must match", func(t *testing.T) {
		created := "2024-02-03T19:23:24Z"

		vc := issuedCredential(t, func(proof map[string]interface{}) {
			proof["created"] = created
		})
		require.NoError(t, matchCredential(vc, request(func(o *CredentialSpecOptions) {
			o.Created = &created
		})))

		mismatched := issuedCredential(t, func(proof map[string]interface{}) {
			proof["created"] = "2030-01-01T00:00:00Z"
		})
		requireMismatch(t, matchCredential(mismatched, request(func(o *CredentialSpecOptions) {
			o.Created = &created
		})), "created")
	})

	t.Run("domain must match including absence", func(t *testing.T) {
		domainA := "a"

		vc := issuedCredential(t, func(proof map[string]interface{}) {
			proof["domain"] = "b"
		})
		requireMismatch(t, matchCredential(vc, request(func(o *CredentialSpecOptions) {
			o.Domain = &domainA
		})), "domain")

		// domain in the proof but not in the request is also a mismatch
		requireMismatch(t, matchCredential(vc, request(nil)), "domain")
	})

	t.Run("challenge must match", func(t *testing.T) {
		challenge := "c1"

		vc := issuedCredential(t, nil)
		requireMismatch(t, matchCredential(vc, request(func(o *CredentialSpecOptions) {
			o.Challenge = &challenge
		})), "challenge")
	})

	t.Run("proof type must match", func(t *testing.T) {
		vc := issuedCredential(t, func(proof map[string]interface{}) {
			proof["type"] = "BbsBlsSignature2020"
		})

		requireMismatch(t, matchCredential(vc, request(nil)), "proofType")
	})

	t.Run("proof purpose must match", func(t *testing.T) {
		vc := issuedCredential(t, func(proof map[string]interface{}) {
			proof["proofPurpose"] = "authentication"
		})

		requireMismatch(t, matchCredential(vc, request(nil)), "proofPurpose")
	})

	t.Run("credential content must equal request template", func(t *testing.T) {
		vc := issuedCredential(t, nil)
		vc["credentialSubject"].(map[string]interface{})["name"] = "Mallory"

		requireMismatch(t, matchCredential(vc, request(nil)), "credential")
	})

	t.Run("rule order: proof shape wins over content", func(t *testing.T) {
		vc := issuedCredential(t, nil)
		vc["credentialSubject"] = "tampered"
		vc["proof"] = []interface{}{map[string]interface{}{}}

		err := matchCredential(vc, request(nil))
		require.ErrorIs(t, err, credential.ErrProofArrayUnsupported)
	})
}

func requireMismatch(t *testing.T, err error, rule string) {
	t.Helper()

	require.Error(t, err)

	mismatchErr := &issuecredential.CredentialMismatchError{}
	require.True(t, errors.As(err, &mismatchErr))
	require.Equal(t, rule, mismatchErr.Rule)
}

// request returns a CredentialSpec for the matcher template, options
// adjusted by mutate.
func request(mutate func(*CredentialSpecOptions)) *CredentialSpec {
	options := &CredentialSpecOptions{ProofType: "Ed25519Signature2018"}

	if mutate != nil {
		mutate(options)
	}

	return &CredentialSpec{
		Credential: json.RawMessage(matcherTemplate),
		Options:    options,
	}
}

// issuedCredential returns the matcher template with a matching proof
// attached, optionally adjusted by mutate.
func issuedCredential(t *testing.T, mutate func(proof map[string]interface{})) credential.Credential {
	t.Helper()

	var vc credential.Credential
	require.NoError(t, json.Unmarshal([]byte(matcherTemplate), &vc))

	proof := map[string]interface{}{
		"type":               "Ed25519Signature2018",
		"verificationMethod": "did:example:issuer#key-1",
		"proofPurpose":       "assertionMethod",
		"proofValue":         "test-proof-value",
	}

	if mutate != nil {
		mutate(proof)
	}

	vc["proof"] = proof

	return vc
}
