/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExchangeRecord_AppendCredential(t *testing.T) {
	record := &ExchangeRecord{ThreadID: "thread-1"}

	record.AppendCredential("w3c", "rec-1")
	record.AppendCredential("w3c", "rec-2")

	require.Equal(t, []CredentialReference{
		{RecordType: "w3c", RecordID: "rec-1"},
		{RecordType: "w3c", RecordID: "rec-2"},
	}, record.Credentials)
}

func TestErrors(t *testing.T) {
	t.Run("unsupported options lists every field", func(t *testing.T) {
		err := &UnsupportedOptionError{Fields: []string{"challenge", "domain"}}

		require.EqualError(t, err, "cannot issue credential with unsupported options: [challenge, domain]")
	})

	t.Run("mismatch names the failing rule", func(t *testing.T) {
		err := &CredentialMismatchError{Rule: "proofType"}

		require.Contains(t, err.Error(), "proofType")
	})

	t.Run("verification carries the reason", func(t *testing.T) {
		err := &VerificationError{Reason: "invalid signature"}

		require.Contains(t, err.Error(), "invalid signature")
	})

	t.Run("sentinels wrap", func(t *testing.T) {
		err := errors.New("wrapped")

		require.NotErrorIs(t, err, ErrMissingPayload)
		require.ErrorIs(t, ErrMissingPayload, ErrMissingPayload)
	})
}
