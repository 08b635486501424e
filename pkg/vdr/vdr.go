/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package vdr defines the verifiable data registry contract consumed by the
// credential exchange format services.
package vdr

import (
	"errors"

	"github.com/vcxchange/framework-go/pkg/doc/did"
)

// ErrNotFound is returned when a DID resolver does not find the DID.
var ErrNotFound = errors.New("DID not found")

// Registry resolves DID documents.
// Creation, update, and deactivation of DIDs belong to the protocol engine's
// registry; format services only ever read.
type Registry interface {
	Resolve(didID string) (*did.Doc, error)
}
