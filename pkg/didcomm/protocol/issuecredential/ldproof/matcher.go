/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ldproof

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vcxchange/framework-go/pkg/didcomm/protocol/issuecredential"
	"github.com/vcxchange/framework-go/pkg/doc/credential"
)

// Matching rule identifiers, reported through CredentialMismatchError.
const (
	matchRuleProof        = "proof"
	matchRuleCreated      = "created"
	matchRuleDomain       = "domain"
	matchRuleChallenge    = "challenge"
	matchRuleProofType    = "proofType"
	matchRuleProofPurpose = "proofPurpose"
	matchRuleCredential   = "credential"
)

// matchCredential checks that an issued credential is consistent with the
// request that produced it. Rules are evaluated in a fixed order and the
// first violation is reported.
//
// The created rule is one-sided on purpose: it applies only when the request
// set options.created. A credential that carries a proof creation time
// against a request that omitted it passes.
func matchCredential(vc credential.Credential, request *CredentialSpec) error {
	proof, err := vc.Proof()
	if err != nil {
		if errors.Is(err, credential.ErrProofArrayUnsupported) {
			return err
		}

		return &issuecredential.CredentialMismatchError{Rule: matchRuleProof}
	}

	options := request.Options

	if options.Created != nil && *options.Created != proof.Created {
		return &issuecredential.CredentialMismatchError{Rule: matchRuleCreated}
	}

	if optionalString(options.Domain) != proof.Domain {
		return &issuecredential.CredentialMismatchError{Rule: matchRuleDomain}
	}

	if optionalString(options.Challenge) != proof.Challenge {
		return &issuecredential.CredentialMismatchError{Rule: matchRuleChallenge}
	}

	if options.ProofType != proof.Type {
		return &issuecredential.CredentialMismatchError{Rule: matchRuleProofType}
	}

	expectedPurpose := options.ProofPurpose
	if expectedPurpose == "" {
		expectedPurpose = defaultProofPurpose
	}

	if expectedPurpose != proof.ProofPurpose {
		return &issuecredential.CredentialMismatchError{Rule: matchRuleProofPurpose}
	}

	var requested credential.Credential
	if err := json.Unmarshal(request.Credential, &requested); err != nil {
		return fmt.Errorf("unmarshal requested credential: %w", err)
	}

	if !credential.Equal(vc.WithoutProof(), requested) {
		logger.Debugf("credential differs from request: %s", credential.Diff(vc.WithoutProof(), requested))

		return &issuecredential.CredentialMismatchError{Rule: matchRuleCredential}
	}

	return nil
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
