/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package credential contains the credential record store consumed by the
// exchange format services, and a bolt-backed implementation of it.
package credential

import (
	"errors"

	doccredential "github.com/vcxchange/framework-go/pkg/doc/credential"
)

// ErrNotFound signals that no credential is stored under the given key.
var ErrNotFound = errors.New("credential not found")

// Record describes a stored credential.
type Record struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name,omitempty"`
	Context   []string `json:"context,omitempty"`
	Type      []string `json:"type,omitempty"`
	SubjectID string   `json:"subjectId,omitempty"`
}

// Store stores verifiable credentials.
type Store interface {
	// SaveCredential saves the credential under a friendly name and returns
	// the id of the stored record.
	SaveCredential(name string, cred doccredential.Credential) (string, error)
	// GetCredential retrieves a credential by record id.
	GetCredential(id string) (doccredential.Credential, error)
	// GetCredentialIDByName resolves a friendly name to a record id.
	GetCredentialIDByName(name string) (string, error)
	// GetCredentials returns the records of all stored credentials.
	GetCredentials() ([]*Record, error)
}
