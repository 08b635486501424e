/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package issuecredential defines the format-service contract of the
// issue-credential protocol. The protocol engine sequences the four phases
// (proposal, offer, request, issuance) over a transport; a FormatService
// renders and consumes the attachment of a single credential encoding.
package issuecredential

import (
	"github.com/vcxchange/framework-go/pkg/didcomm/protocol/decorator"
)

// Format contains the value of the attachment id and the verifiable
// credential format of the attachment.
type Format struct {
	AttachID string `json:"attach_id,omitempty"`
	Format   string `json:"format,omitempty"`
}

// CreateProposalOptions are the inputs to FormatService.CreateProposal.
type CreateProposalOptions struct {
	// AttachID to assign to the attachment. A fresh id is minted when empty.
	AttachID string
	// Payload is the format-specific proposal payload. Services accept their
	// own payload type or its generic JSON rendering.
	Payload interface{}
}

// CreateOfferOptions are the inputs to FormatService.CreateOffer.
type CreateOfferOptions struct {
	AttachID string
	Payload  interface{}
}

// CreateRequestOptions are the inputs to FormatService.CreateRequest.
type CreateRequestOptions struct {
	AttachID string
	Payload  interface{}
}

// ProcessOptions are the inputs to the Process* operations.
type ProcessOptions struct {
	Attachment *decorator.Attachment
}

// AcceptProposalOptions are the inputs to FormatService.AcceptProposal.
type AcceptProposalOptions struct {
	// AttachID to reuse for the offer attachment. A fresh id is minted when
	// empty.
	AttachID           string
	ProposalAttachment *decorator.Attachment
}

// AcceptOfferOptions are the inputs to FormatService.AcceptOffer.
type AcceptOfferOptions struct {
	AttachID        string
	OfferAttachment *decorator.Attachment
}

// AcceptRequestOptions are the inputs to FormatService.AcceptRequest.
type AcceptRequestOptions struct {
	AttachID          string
	RequestAttachment *decorator.Attachment
	// VerificationMethod, when set, is used verbatim to sign the credential
	// and no resolution takes place.
	VerificationMethod string
}

// ProcessCredentialOptions are the inputs to FormatService.ProcessCredential.
type ProcessCredentialOptions struct {
	// Record is the engine-owned exchange record; a reference to the stored
	// credential is appended to it once verification succeeds.
	Record               *ExchangeRecord
	CredentialAttachment *decorator.Attachment
	// RequestAttachment is the request that produced the credential.
	RequestAttachment *decorator.Attachment
	// Name is the friendly name to store the credential under. The stored
	// record id is used when empty.
	Name string
}

// FormatService adapts one credential encoding to the issue-credential
// protocol. Implementations are stateless; every call is a function of its
// inputs plus the injected collaborators.
type FormatService interface {
	// FormatKey returns the key identifying this format family.
	FormatKey() string

	// SupportsFormat reports whether the service recognizes the given
	// attachment format identifier.
	SupportsFormat(format string) bool

	CreateProposal(options CreateProposalOptions) (*Format, *decorator.Attachment, error)
	ProcessProposal(options ProcessOptions) error
	AcceptProposal(options AcceptProposalOptions) (*Format, *decorator.Attachment, error)

	CreateOffer(options CreateOfferOptions) (*Format, *decorator.Attachment, error)
	ProcessOffer(options ProcessOptions) error
	AcceptOffer(options AcceptOfferOptions) (*Format, *decorator.Attachment, error)

	CreateRequest(options CreateRequestOptions) (*Format, *decorator.Attachment, error)
	ProcessRequest(options ProcessOptions) error
	AcceptRequest(options AcceptRequestOptions) (*Format, *decorator.Attachment, error)

	ProcessCredential(options ProcessCredentialOptions) error

	// The auto-respond heuristics feed automated accept decisions. They never
	// fail; a message that cannot be matched yields false.
	ShouldAutoRespondToProposal(proposalAttachment, offerAttachment *decorator.Attachment) bool
	ShouldAutoRespondToOffer(offerAttachment, proposalAttachment *decorator.Attachment) bool
	ShouldAutoRespondToRequest(requestAttachment, offerAttachment *decorator.Attachment) bool
	ShouldAutoRespondToCredential(credentialAttachment, requestAttachment *decorator.Attachment) bool

	// DeleteCredentialByID removes a stored credential.
	DeleteCredentialByID(id string) error
}
