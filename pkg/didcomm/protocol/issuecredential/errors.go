/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingPayload signals that a required attachment is absent.
var ErrMissingPayload = errors.New("missing attachment payload")

// ErrNotImplemented signals an operation that is out of scope for the
// format service and deliberately unsupported.
var ErrNotImplemented = errors.New("not implemented")

// UnsupportedOptionError rejects proof options that the format service
// cannot honor at issuance time. Fields enumerates every offending option,
// not just the first.
type UnsupportedOptionError struct {
	Fields []string
}

func (e *UnsupportedOptionError) Error() string {
	return fmt.Sprintf("cannot issue credential with unsupported options: [%s]",
		strings.Join(e.Fields, ", "))
}

// CredentialMismatchError signals that an issued credential is inconsistent
// with the request that produced it. Rule names the first violated matching
// rule.
type CredentialMismatchError struct {
	Rule string
}

func (e *CredentialMismatchError) Error() string {
	return fmt.Sprintf("credential does not match request: rule %q violated", e.Rule)
}

// VerificationError signals a negative cryptographic verification outcome,
// carrying the verifier's reported reason.
type VerificationError struct {
	Reason string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("credential verification failed: %s", e.Reason)
}
