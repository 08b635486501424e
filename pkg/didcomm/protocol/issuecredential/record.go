/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

// CredentialReference points at a credential produced during an exchange.
type CredentialReference struct {
	RecordType string `json:"credentialRecordType"`
	RecordID   string `json:"credentialRecordId"`
}

// ExchangeRecord is the engine-owned durable state of one credential
// exchange. Format services only ever append credential references to it.
type ExchangeRecord struct {
	// ThreadID correlates the record with the protocol thread.
	ThreadID string `json:"threadId,omitempty"`
	// Credentials accumulates references to the credentials produced during
	// the exchange.
	Credentials []CredentialReference `json:"credentials,omitempty"`
}

// AppendCredential adds a credential reference to the record.
func (r *ExchangeRecord) AppendCredential(recordType, recordID string) {
	r.Credentials = append(r.Credentials, CredentialReference{
		RecordType: recordType,
		RecordID:   recordID,
	})
}
