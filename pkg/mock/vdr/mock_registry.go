/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package vdr contains a mock DID resolver registry.
package vdr

import (
	"github.com/vcxchange/framework-go/pkg/doc/did"
	vdrapi "github.com/vcxchange/framework-go/pkg/vdr"
)

// MockVDRegistry mock implementation of vdr to be used only for unit tests.
type MockVDRegistry struct {
	ResolveErr   error
	ResolveValue *did.Doc
	ResolveFunc  func(didID string) (*did.Doc, error)
}

// Resolve did document.
func (m *MockVDRegistry) Resolve(didID string) (*did.Doc, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(didID)
	}

	if m.ResolveErr != nil {
		return nil, m.ResolveErr
	}

	if m.ResolveValue == nil {
		return nil, vdrapi.ErrNotFound
	}

	return m.ResolveValue, nil
}
