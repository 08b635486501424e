/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ldproof

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vcxchange/framework-go/pkg/doc/did"
	mockvdr "github.com/vcxchange/framework-go/pkg/mock/vdr"
	vdrapi "github.com/vcxchange/framework-go/pkg/vdr"
)

func TestResolveVerificationMethod(t *testing.T) {
	t.Run("picks first method of first compatible type", func(t *testing.T) {
		s := &Service{vdr: &mockvdr.MockVDRegistry{ResolveValue: &did.Doc{
			ID: "did:example:123",
			VerificationMethod: []did.VerificationMethod{
				{ID: "did:example:123#secp", Type: "EcdsaSecp256k1VerificationKey2019"},
				{ID: "did:example:123#ed1", Type: "Ed25519VerificationKey2018"},
				{ID: "did:example:123#ed2", Type: "Ed25519VerificationKey2018"},
			},
		}}}

		method, err := s.resolveVerificationMethod("did:example:123", "Ed25519Signature2018")
		require.NoError(t, err)
		require.Equal(t, "did:example:123#ed1", method)
	})

	t.Run("only the first compatible type is searched", func(t *testing.T) {
		// Ed25519Signature2020 prefers 2020 keys. A document holding only a
		// 2018 key fails: later entries in the compatibility ordering are
		// not fallbacks, they only decide ties in the table itself.
		s := &Service{vdr: &mockvdr.MockVDRegistry{ResolveValue: &did.Doc{
			ID: "did:example:123",
			VerificationMethod: []did.VerificationMethod{
				{ID: "did:example:123#old", Type: "Ed25519VerificationKey2018"},
			},
		}}}

		_, err := s.resolveVerificationMethod("did:example:123", "Ed25519Signature2020")
		require.ErrorIs(t, err, ErrVerificationMethodNotFound)
	})

	t.Run("no compatible method", func(t *testing.T) {
		s := &Service{vdr: &mockvdr.MockVDRegistry{ResolveValue: &did.Doc{
			ID: "did:example:123",
			VerificationMethod: []did.VerificationMethod{
				{ID: "did:example:123#secp", Type: "EcdsaSecp256k1VerificationKey2019"},
			},
		}}}

		_, err := s.resolveVerificationMethod("did:example:123", "Ed25519Signature2018")
		require.ErrorIs(t, err, ErrVerificationMethodNotFound)
	})

	t.Run("unknown proof type", func(t *testing.T) {
		s := &Service{vdr: &mockvdr.MockVDRegistry{}}

		_, err := s.resolveVerificationMethod("did:example:123", "TotallyMadeUpSignature9000")
		require.ErrorIs(t, err, ErrUnsupportedProofType)
	})

	t.Run("resolver failure propagates", func(t *testing.T) {
		resolverErr := errors.New("resolver exploded")

		s := &Service{vdr: &mockvdr.MockVDRegistry{ResolveErr: resolverErr}}

		_, err := s.resolveVerificationMethod("did:example:123", "Ed25519Signature2018")
		require.ErrorIs(t, err, resolverErr)
	})

	t.Run("unknown DID propagates not-found", func(t *testing.T) {
		s := &Service{vdr: &mockvdr.MockVDRegistry{}}

		_, err := s.resolveVerificationMethod("did:example:missing", "Ed25519Signature2018")
		require.ErrorIs(t, err, vdrapi.ErrNotFound)
	})
}
