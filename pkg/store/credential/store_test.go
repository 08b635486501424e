/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	doccredential "github.com/vcxchange/framework-go/pkg/doc/credential"
	credentialstore "github.com/vcxchange/framework-go/pkg/store/credential"
)

func TestBoltStore(t *testing.T) {
	store := openStore(t)

	cred := testCredential(t)

	t.Run("save and get round trip", func(t *testing.T) {
		id, err := store.SaveCredential("degree", cred)
		require.NoError(t, err)
		require.NotEmpty(t, id)

		stored, err := store.GetCredential(id)
		require.NoError(t, err)
		require.True(t, doccredential.Equal(cred, stored))

		resolved, err := store.GetCredentialIDByName("degree")
		require.NoError(t, err)
		require.Equal(t, id, resolved)
	})

	t.Run("records listing", func(t *testing.T) {
		records, err := store.GetCredentials()
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, "degree", records[0].Name)
		require.Equal(t, []string{"VerifiableCredential"}, records[0].Type)
		require.Equal(t, "did:example:subject", records[0].SubjectID)
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		_, err := store.SaveCredential("degree", cred)
		require.Error(t, err)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := store.SaveCredential("", cred)
		require.Error(t, err)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.GetCredential("does-not-exist")
		require.ErrorIs(t, err, credentialstore.ErrNotFound)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := store.GetCredentialIDByName("does-not-exist")
		require.ErrorIs(t, err, credentialstore.ErrNotFound)
	})
}

func openStore(t *testing.T) *credentialstore.BoltStore {
	t.Helper()

	store, err := credentialstore.OpenBoltStore(filepath.Join(t.TempDir(), "credentials.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func testCredential(t *testing.T) doccredential.Credential {
	t.Helper()

	var cred doccredential.Credential

	require.NoError(t, json.Unmarshal([]byte(`{
		"@context": ["https://www.w3.org/2018/credentials/v1"],
		"id": "http://example.edu/credentials/1872",
		"type": "VerifiableCredential",
		"credentialSubject": {"id": "did:example:subject"},
		"issuer": "did:example:issuer",
		"issuanceDate": "2024-02-03T19:23:24Z"
	}`), &cred))

	return cred
}
