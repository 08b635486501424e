/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package ld_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	docld "github.com/vcxchange/framework-go/pkg/doc/ld"
	mockld "github.com/vcxchange/framework-go/pkg/mock/ld"
)

func TestValidateDocument(t *testing.T) {
	const contextURL = "https://example.org/context/v1"

	loader := &mockld.MockDocumentLoader{}
	loader.AddDocument(contextURL, map[string]interface{}{
		"@context": map[string]interface{}{
			"name": "https://schema.org/name",
		},
	})

	t.Run("valid document", func(t *testing.T) {
		err := docld.ValidateDocument(map[string]interface{}{
			"@context": contextURL,
			"name":     "Alice",
		}, loader)
		require.NoError(t, err)
	})

	t.Run("unresolvable context", func(t *testing.T) {
		err := docld.ValidateDocument(map[string]interface{}{
			"@context": "https://example.org/unknown/v1",
			"name":     "Alice",
		}, loader)
		require.Error(t, err)
	})

	t.Run("document expands to nothing", func(t *testing.T) {
		err := docld.ValidateDocument(map[string]interface{}{
			"@context": contextURL,
			"bogus":    "dropped on expansion",
		}, loader)
		require.Error(t, err)
		require.Contains(t, err.Error(), "no terms")
	})

	t.Run("loader failure", func(t *testing.T) {
		failing := &mockld.MockDocumentLoader{LoadErr: errors.New("boom")}

		err := docld.ValidateDocument(map[string]interface{}{
			"@context": contextURL,
			"name":     "Alice",
		}, failing)
		require.Error(t, err)
	})
}
