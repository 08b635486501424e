/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package storage contains a mock credential record store.
package storage

import (
	"github.com/google/uuid"

	"github.com/vcxchange/framework-go/pkg/doc/credential"
	credentialstore "github.com/vcxchange/framework-go/pkg/store/credential"
)

// MockCredentialStore mock implementation of the credential record store to
// be used only for unit tests.
type MockCredentialStore struct {
	SaveErr   error
	SaveFunc  func(name string, cred credential.Credential) (string, error)
	Stored    map[string]credential.Credential
	Names     map[string]string
	GetErr    error
	GetAllErr error
}

// SaveCredential stores the credential in memory under a fresh record id.
func (m *MockCredentialStore) SaveCredential(name string, cred credential.Credential) (string, error) {
	if m.SaveErr != nil {
		return "", m.SaveErr
	}

	if m.SaveFunc != nil {
		return m.SaveFunc(name, cred)
	}

	if m.Stored == nil {
		m.Stored = make(map[string]credential.Credential)
	}

	if m.Names == nil {
		m.Names = make(map[string]string)
	}

	id := uuid.New().String()
	m.Stored[id] = cred
	m.Names[name] = id

	return id, nil
}

// GetCredential retrieves a credential by record id.
func (m *MockCredentialStore) GetCredential(id string) (credential.Credential, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	cred, ok := m.Stored[id]
	if !ok {
		return nil, credentialstore.ErrNotFound
	}

	return cred, nil
}

// GetCredentialIDByName resolves a friendly name to a record id.
func (m *MockCredentialStore) GetCredentialIDByName(name string) (string, error) {
	if m.GetErr != nil {
		return "", m.GetErr
	}

	id, ok := m.Names[name]
	if !ok {
		return "", credentialstore.ErrNotFound
	}

	return id, nil
}

// GetCredentials returns the records of all stored credentials.
func (m *MockCredentialStore) GetCredentials() ([]*credentialstore.Record, error) {
	if m.GetAllErr != nil {
		return nil, m.GetAllErr
	}

	var records []*credentialstore.Record

	for name, id := range m.Names {
		cred := m.Stored[id]

		records = append(records, &credentialstore.Record{
			ID:        id,
			Name:      name,
			Context:   cred.Contexts(),
			Type:      cred.Types(),
			SubjectID: cred.SubjectID(),
		})
	}

	return records, nil
}
