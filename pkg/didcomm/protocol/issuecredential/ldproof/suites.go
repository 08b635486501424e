/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ldproof

// SuiteSpec describes how a proof type binds to verification material.
type SuiteSpec struct {
	// VerificationMethodTypes lists the verification method types compatible
	// with the proof type, in selection preference order.
	VerificationMethodTypes []string
}

// DefaultSuiteSpecs are the proof types supported by this format service.
// Key selection is deterministic: for a given proof type, the first
// compatible verification method type is the one searched for in the
// resolved DID document.
var DefaultSuiteSpecs = map[string]SuiteSpec{ // nolint: gochecknoglobals
	"Ed25519Signature2018": {
		VerificationMethodTypes: []string{"Ed25519VerificationKey2018"},
	},
	"Ed25519Signature2020": {
		VerificationMethodTypes: []string{
			"Ed25519VerificationKey2020",
			"Ed25519VerificationKey2018",
		},
	},
	"EcdsaSecp256k1Signature2019": {
		VerificationMethodTypes: []string{"EcdsaSecp256k1VerificationKey2019"},
	},
	"BbsBlsSignature2020": {
		VerificationMethodTypes: []string{"Bls12381G2Key2020"},
	},
}
