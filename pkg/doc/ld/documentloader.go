/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ld provides JSON-LD document loading and expansion helpers.
package ld

import (
	"fmt"
	"net/http"

	"github.com/piprate/json-gold/ld"
)

// NewCachingDocumentLoader returns a document loader that caches remote
// contexts across calls. A nil client uses http.DefaultClient.
func NewCachingDocumentLoader(client *http.Client) ld.DocumentLoader {
	return ld.NewCachingDocumentLoader(ld.NewDefaultDocumentLoader(client))
}

// ValidateDocument expands the given JSON-LD document with the loader and
// fails if the document's contexts cannot be resolved or the document does
// not expand to any terms.
func ValidateDocument(doc map[string]interface{}, loader ld.DocumentLoader) error {
	proc := ld.NewJsonLdProcessor()

	opts := ld.NewJsonLdOptions("")
	opts.DocumentLoader = loader

	expanded, err := proc.Expand(doc, opts)
	if err != nil {
		return fmt.Errorf("expand JSON-LD document: %w", err)
	}

	if len(expanded) == 0 {
		return fmt.Errorf("JSON-LD document expands to no terms")
	}

	return nil
}
