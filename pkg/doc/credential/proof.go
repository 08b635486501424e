/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

// Proof is a typed view over a credential's linked-data proof object.
// Suite-specific signature material stays in Raw.
type Proof struct {
	Type               string
	Created            string
	VerificationMethod string
	ProofPurpose       string
	Domain             string
	Challenge          string

	Raw map[string]interface{}
}

func newProof(raw map[string]interface{}) *Proof {
	return &Proof{
		Type:               stringField(raw, "type"),
		Created:            stringField(raw, "created"),
		VerificationMethod: stringField(raw, "verificationMethod"),
		ProofPurpose:       stringField(raw, "proofPurpose"),
		Domain:             stringField(raw, "domain"),
		Challenge:          stringField(raw, "challenge"),
		Raw:                raw,
	}
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string) // nolint: errcheck
	return s
}
