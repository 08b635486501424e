/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ld contains a mock JSON-LD document loader.
package ld

import (
	"fmt"

	"github.com/piprate/json-gold/ld"
)

// MockDocumentLoader serves preloaded JSON-LD contexts without network
// access, to be used only for unit tests.
type MockDocumentLoader struct {
	Documents map[string]interface{}
	LoadErr   error
}

// AddDocument preloads a context document under the given URL.
func (m *MockDocumentLoader) AddDocument(url string, doc interface{}) {
	if m.Documents == nil {
		m.Documents = make(map[string]interface{})
	}

	m.Documents[url] = doc
}

// LoadDocument returns the preloaded document for the URL.
func (m *MockDocumentLoader) LoadDocument(url string) (*ld.RemoteDocument, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}

	doc, ok := m.Documents[url]
	if !ok {
		return nil, fmt.Errorf("document not preloaded: %s", url)
	}

	return &ld.RemoteDocument{
		DocumentURL: url,
		Document:    doc,
	}, nil
}
