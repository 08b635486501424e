/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package framework enables Go developers to exchange W3C verifiable
// credentials over the issue-credential protocol using linked-data proofs.
//
// Packages for end developer usage
//
// pkg/didcomm/protocol/issuecredential: Defines the format-service contract
// of the issue-credential protocol.
// Reference: https://pkg.go.dev/github.com/vcxchange/framework-go/pkg/didcomm/protocol/issuecredential
//
// pkg/didcomm/protocol/issuecredential/ldproof: The linked-data proof format
// service. It renders and consumes the attachments of the four protocol
// phases.
// Reference: https://pkg.go.dev/github.com/vcxchange/framework-go/pkg/didcomm/protocol/issuecredential/ldproof
//
// pkg/store/credential: Persists verified credentials and their queryable
// records.
// Reference: https://pkg.go.dev/github.com/vcxchange/framework-go/pkg/store/credential
//
// Basic workflow
//
//      1) Implement the ldproof.Provider interface with your DID resolver,
//         signing service, credential store, and JSON-LD document loader.
//      2) Create a format service with ldproof.New, passing the provider.
//      3) Register the service with your protocol engine; it renders and
//         consumes the attachments of each phase.
//      4) Inspect the exchange record for references to issued credentials.
package framework
