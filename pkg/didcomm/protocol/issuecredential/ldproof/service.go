/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ldproof adapts linked-data proof credentials to the
// issue-credential protocol. It renders and consumes the detail and
// credential attachments of the four protocol phases; cryptography, DID
// resolution, and persistence stay behind the injected collaborators.
package ldproof

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	jsongold "github.com/piprate/json-gold/ld"

	"github.com/vcxchange/framework-go/pkg/common/log"
	"github.com/vcxchange/framework-go/pkg/crypto/signature"
	"github.com/vcxchange/framework-go/pkg/didcomm/protocol/decorator"
	"github.com/vcxchange/framework-go/pkg/didcomm/protocol/issuecredential"
	"github.com/vcxchange/framework-go/pkg/doc/credential"
	credentialstore "github.com/vcxchange/framework-go/pkg/store/credential"
	"github.com/vcxchange/framework-go/pkg/vdr"
)

const (
	// ProofVCDetailFormat is the attachment format used in the proposal,
	// offer, and request message attachments.
	ProofVCDetailFormat = "aries/ld-proof-vc-detail@v1.0"
	// ProofVCFormat is the attachment format used in the issue-credential
	// message attachment.
	ProofVCFormat = "aries/ld-proof-vc@v1.0"

	// CredentialRecordType tags stored credential references appended to the
	// exchange record.
	CredentialRecordType = "w3c"

	formatKey = "ldproof"

	defaultProofPurpose = "assertionMethod"
)

var logger = log.New("vcx-framework/issuecredential/ldproof")

// CredentialSpec is the attachment payload of the proposal, offer, and
// request phases: an unsigned credential template plus issuance options.
type CredentialSpec struct {
	Credential json.RawMessage        `json:"credential"`
	Options    *CredentialSpecOptions `json:"options"`
}

// CredentialSpecOptions are the options for issuance of the credential.
// Created, Domain, and Challenge are pointers: their presence is
// semantically significant, not just their value.
type CredentialSpecOptions struct {
	ProofType          string            `json:"proofType"`
	VerificationMethod string            `json:"verificationMethod,omitempty"`
	ProofPurpose       string            `json:"proofPurpose,omitempty"`
	Created            *string           `json:"created,omitempty"`
	Domain             *string           `json:"domain,omitempty"`
	Challenge          *string           `json:"challenge,omitempty"`
	Status             *CredentialStatus `json:"credentialStatus,omitempty"`
}

// CredentialStatus is the requested status mechanism for the credential.
type CredentialStatus struct {
	Type string `json:"type,omitempty"`
}

// Provider contains the collaborators of the format service.
type Provider interface {
	VDRegistry() vdr.Registry
	SignatureService() signature.Service
	CredentialStore() credentialstore.Store
	JSONLDDocumentLoader() jsongold.DocumentLoader
}

// Service is the linked-data proof format service. It holds no mutable
// state; concurrent use for independent exchanges needs no synchronization.
type Service struct {
	vdr            vdr.Registry
	signer         signature.Service
	store          credentialstore.Store
	documentLoader jsongold.DocumentLoader
}

var _ issuecredential.FormatService = (*Service)(nil)

// New returns a new linked-data proof format service.
func New(p Provider) *Service {
	return &Service{
		vdr:            p.VDRegistry(),
		signer:         p.SignatureService(),
		store:          p.CredentialStore(),
		documentLoader: p.JSONLDDocumentLoader(),
	}
}

// FormatKey returns the key identifying the linked-data proof format family.
func (s *Service) FormatKey() string {
	return formatKey
}

// SupportsFormat reports whether the given attachment format identifier is
// one of the two formats this service recognizes.
func (s *Service) SupportsFormat(format string) bool {
	return format == ProofVCDetailFormat || format == ProofVCFormat
}

// CreateProposal validates the proposed credential spec and encodes it as a
// detail attachment.
func (s *Service) CreateProposal(
	options issuecredential.CreateProposalOptions) (*issuecredential.Format, *decorator.Attachment, error) {
	return s.createDetailAttachment(options.AttachID, options.Payload)
}

// ProcessProposal decodes and validates an inbound proposal attachment.
func (s *Service) ProcessProposal(options issuecredential.ProcessOptions) error {
	return s.processDetailAttachment(options.Attachment)
}

// AcceptProposal replays the proposed credential spec as an offer
// attachment. The spec content is not modified between proposal and offer.
func (s *Service) AcceptProposal(
	options issuecredential.AcceptProposalOptions) (*issuecredential.Format, *decorator.Attachment, error) {
	return s.replayDetailAttachment(options.AttachID, options.ProposalAttachment)
}

// CreateOffer validates the offered credential spec and encodes it as a
// detail attachment, for offers authored without a prior proposal.
func (s *Service) CreateOffer(
	options issuecredential.CreateOfferOptions) (*issuecredential.Format, *decorator.Attachment, error) {
	return s.createDetailAttachment(options.AttachID, options.Payload)
}

// ProcessOffer decodes and validates an inbound offer attachment.
func (s *Service) ProcessOffer(options issuecredential.ProcessOptions) error {
	return s.processDetailAttachment(options.Attachment)
}

// AcceptOffer replays the offered credential spec as a request attachment.
func (s *Service) AcceptOffer(
	options issuecredential.AcceptOfferOptions) (*issuecredential.Format, *decorator.Attachment, error) {
	return s.replayDetailAttachment(options.AttachID, options.OfferAttachment)
}

// CreateRequest validates a freshly authored credential spec and encodes it
// as a request attachment.
func (s *Service) CreateRequest(
	options issuecredential.CreateRequestOptions) (*issuecredential.Format, *decorator.Attachment, error) {
	return s.createDetailAttachment(options.AttachID, options.Payload)
}

// ProcessRequest decodes and validates an inbound request attachment.
func (s *Service) ProcessRequest(options issuecredential.ProcessOptions) error {
	return s.processDetailAttachment(options.Attachment)
}

// AcceptRequest turns a request into a signed credential attachment.
//
// The verification method supplied by the caller always wins; the issuer DID
// is resolved only when none is given. Requests that set challenge, domain,
// credentialStatus, or created are rejected with an error enumerating every
// offending option.
func (s *Service) AcceptRequest(
	options issuecredential.AcceptRequestOptions) (*issuecredential.Format, *decorator.Attachment, error) {
	spec, template, err := s.fetchValidatedSpec(options.RequestAttachment)
	if err != nil {
		return nil, nil, err
	}

	if offending := unsupportedOptions(spec.Options); len(offending) > 0 {
		return nil, nil, &issuecredential.UnsupportedOptionError{Fields: offending}
	}

	verificationMethod := options.VerificationMethod
	if verificationMethod == "" {
		issuer, issuerErr := template.Issuer()
		if issuerErr != nil {
			return nil, nil, fmt.Errorf("get issuer of requested credential: %w", issuerErr)
		}

		verificationMethod, err = s.resolveVerificationMethod(issuer.ID, spec.Options.ProofType)
		if err != nil {
			return nil, nil, err
		}
	}

	proofPurpose := spec.Options.ProofPurpose
	if proofPurpose == "" {
		proofPurpose = defaultProofPurpose
	}

	vc, err := s.signer.SignCredential(template, &signature.ProofContext{
		SignatureType:      spec.Options.ProofType,
		VerificationMethod: verificationMethod,
		Purpose:            proofPurpose,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("sign credential: %w", err)
	}

	attachID := options.AttachID
	if attachID == "" {
		attachID = uuid.New().String()
	}

	attachment, err := decorator.NewAttachment(attachID, vc)
	if err != nil {
		return nil, nil, fmt.Errorf("encode credential attachment: %w", err)
	}

	return &issuecredential.Format{AttachID: attachID, Format: ProofVCFormat}, attachment, nil
}

// ProcessCredential verifies an issued credential against the request that
// produced it, cryptographically verifies it, stores it, and appends a
// reference to the exchange record. Matching runs before the cryptographic
// check; a structurally wrong credential is never verified.
func (s *Service) ProcessCredential(options issuecredential.ProcessCredentialOptions) error {
	if options.Record == nil {
		return fmt.Errorf("exchange record is required")
	}

	vc, err := s.fetchCredential(options.CredentialAttachment)
	if err != nil {
		return err
	}

	request, _, err := s.fetchValidatedSpec(options.RequestAttachment)
	if err != nil {
		return err
	}

	if err := matchCredential(vc, request); err != nil {
		return err
	}

	result, err := s.signer.VerifyCredential(vc)
	if err != nil {
		return fmt.Errorf("verify credential: %w", err)
	}

	if !result.Verified {
		return &issuecredential.VerificationError{Reason: result.Error}
	}

	name := options.Name
	if name == "" {
		name = vc.ID()
	}

	if name == "" {
		name = uuid.New().String()
	}

	recordID, err := s.store.SaveCredential(name, vc)
	if err != nil {
		return fmt.Errorf("save credential: %w", err)
	}

	options.Record.AppendCredential(CredentialRecordType, recordID)

	return nil
}

// ShouldAutoRespondToProposal reports whether the proposal matches the offer
// this agent would make, by deep structural equality of the decoded
// payloads.
func (s *Service) ShouldAutoRespondToProposal(proposalAttachment, offerAttachment *decorator.Attachment) bool {
	return s.attachmentsEqual(proposalAttachment, offerAttachment)
}

// ShouldAutoRespondToOffer reports whether the offer matches the earlier
// proposal by deep structural equality of the decoded payloads.
func (s *Service) ShouldAutoRespondToOffer(offerAttachment, proposalAttachment *decorator.Attachment) bool {
	return s.attachmentsEqual(offerAttachment, proposalAttachment)
}

// ShouldAutoRespondToRequest reports whether the request matches the earlier
// offer by deep structural equality of the decoded payloads.
func (s *Service) ShouldAutoRespondToRequest(requestAttachment, offerAttachment *decorator.Attachment) bool {
	return s.attachmentsEqual(requestAttachment, offerAttachment)
}

// ShouldAutoRespondToCredential runs the full credential-to-request match
// and reports the outcome as a boolean. Failures never propagate: a
// legitimately mismatched credential is a negative decision, not a crash.
func (s *Service) ShouldAutoRespondToCredential(credentialAttachment, requestAttachment *decorator.Attachment) bool {
	vc, err := s.fetchCredential(credentialAttachment)
	if err != nil {
		logger.Debugf("auto-respond: unable to decode credential: %s", err.Error())

		return false
	}

	request, _, err := s.fetchValidatedSpec(requestAttachment)
	if err != nil {
		logger.Debugf("auto-respond: unable to decode request: %s", err.Error())

		return false
	}

	if err := matchCredential(vc, request); err != nil {
		logger.Debugf("auto-respond: credential does not match request: %s", err.Error())

		return false
	}

	return true
}

// DeleteCredentialByID is deliberately unsupported for this format service.
func (s *Service) DeleteCredentialByID(string) error {
	return fmt.Errorf("%w: delete credential", issuecredential.ErrNotImplemented)
}

func (s *Service) createDetailAttachment(
	attachID string, payload interface{}) (*issuecredential.Format, *decorator.Attachment, error) {
	spec, err := decodeSpecPayload(payload)
	if err != nil {
		return nil, nil, err
	}

	if _, err := s.validateSpec(spec); err != nil {
		return nil, nil, err
	}

	return s.encodeDetailAttachment(attachID, spec)
}

func (s *Service) processDetailAttachment(attachment *decorator.Attachment) error {
	_, _, err := s.fetchValidatedSpec(attachment)

	return err
}

// replayDetailAttachment re-encodes the validated inbound spec unchanged as
// the next phase's attachment.
func (s *Service) replayDetailAttachment(
	attachID string, attachment *decorator.Attachment) (*issuecredential.Format, *decorator.Attachment, error) {
	spec, _, err := s.fetchValidatedSpec(attachment)
	if err != nil {
		return nil, nil, err
	}

	return s.encodeDetailAttachment(attachID, spec)
}

func (s *Service) encodeDetailAttachment(
	attachID string, spec *CredentialSpec) (*issuecredential.Format, *decorator.Attachment, error) {
	if attachID == "" {
		attachID = uuid.New().String()
	}

	attachment, err := decorator.NewAttachment(attachID, spec)
	if err != nil {
		return nil, nil, fmt.Errorf("encode detail attachment: %w", err)
	}

	return &issuecredential.Format{AttachID: attachID, Format: ProofVCDetailFormat}, attachment, nil
}

func (s *Service) fetchValidatedSpec(
	attachment *decorator.Attachment) (*CredentialSpec, credential.Credential, error) {
	if attachment == nil {
		return nil, nil, issuecredential.ErrMissingPayload
	}

	spec := &CredentialSpec{}
	if err := decorator.DecodeAttachment(attachment, spec); err != nil {
		return nil, nil, err
	}

	template, err := s.validateSpec(spec)
	if err != nil {
		return nil, nil, err
	}

	return spec, template, nil
}

func (s *Service) fetchCredential(attachment *decorator.Attachment) (credential.Credential, error) {
	if attachment == nil {
		return nil, issuecredential.ErrMissingPayload
	}

	raw, err := attachment.Data.Fetch()
	if err != nil {
		return nil, fmt.Errorf("fetch credential attachment: %w", err)
	}

	vc, err := credential.ParseCredential(raw, s.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("parse credential: %w", err)
	}

	return vc, nil
}

// validateSpec validates the spec's credential template against the
// credential schema and its options, returning every offending field in one
// error. The parsed template is returned for further use.
func (s *Service) validateSpec(spec *CredentialSpec) (credential.Credential, error) {
	var fields []string

	var template credential.Credential

	if len(spec.Credential) == 0 {
		fields = append(fields, "credential")
	} else {
		parsed, err := credential.ParseCredential(spec.Credential, s.parseOpts()...)

		var validationErr *credential.ValidationError

		switch {
		case errors.As(err, &validationErr):
			fields = append(fields, validationErr.Fields...)
		case err != nil:
			return nil, fmt.Errorf("parse credential template: %w", err)
		default:
			template = parsed
		}
	}

	if spec.Options == nil || spec.Options.ProofType == "" {
		fields = append(fields, "options.proofType")
	}

	if len(fields) > 0 {
		return nil, &credential.ValidationError{Fields: fields}
	}

	return template, nil
}

func (s *Service) parseOpts() []credential.ParseOpt {
	var opts []credential.ParseOpt

	if s.documentLoader != nil {
		opts = append(opts, credential.WithJSONLDValidation(s.documentLoader))
	}

	return opts
}

func (s *Service) attachmentsEqual(a, b *decorator.Attachment) bool {
	if a == nil || b == nil {
		return false
	}

	left, err := a.Data.Fetch()
	if err != nil {
		logger.Debugf("auto-respond: unable to fetch attachment %s: %s", a.ID, err.Error())

		return false
	}

	right, err := b.Data.Fetch()
	if err != nil {
		logger.Debugf("auto-respond: unable to fetch attachment %s: %s", b.ID, err.Error())

		return false
	}

	var leftPayload, rightPayload interface{}

	if err := json.Unmarshal(left, &leftPayload); err != nil {
		return false
	}

	if err := json.Unmarshal(right, &rightPayload); err != nil {
		return false
	}

	return credential.Equal(leftPayload, rightPayload)
}

// unsupportedOptions returns the option names that cannot be honored at
// issuance time, in their canonical order.
func unsupportedOptions(options *CredentialSpecOptions) []string {
	var offending []string

	if options.Challenge != nil {
		offending = append(offending, "challenge")
	}

	if options.Domain != nil {
		offending = append(offending, "domain")
	}

	if options.Status != nil {
		offending = append(offending, "credentialStatus")
	}

	if options.Created != nil {
		offending = append(offending, "created")
	}

	return offending
}

// decodeSpecPayload accepts the service's own payload type or its generic
// JSON rendering, as handed over by the protocol engine.
func decodeSpecPayload(payload interface{}) (*CredentialSpec, error) {
	switch p := payload.(type) {
	case nil:
		return nil, issuecredential.ErrMissingPayload
	case *CredentialSpec:
		return p, nil
	case CredentialSpec:
		return &p, nil
	}

	spec := &CredentialSpec{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    "json",
		Result:     spec,
		DecodeHook: rawMessageHookFunc(),
	})
	if err != nil {
		return nil, fmt.Errorf("new payload decoder: %w", err)
	}

	if err := decoder.Decode(payload); err != nil {
		return nil, fmt.Errorf("decode spec payload: %w", err)
	}

	return spec, nil
}

// rawMessageHookFunc renders map-shaped values back to raw JSON when the
// target field is a json.RawMessage.
func rawMessageHookFunc() mapstructure.DecodeHookFuncType {
	rawMessageType := reflect.TypeOf(json.RawMessage{})

	return func(_, to reflect.Type, data interface{}) (interface{}, error) {
		if to != rawMessageType {
			return data, nil
		}

		bits, err := json.Marshal(data)
		if err != nil {
			return nil, err
		}

		return json.RawMessage(bits), nil
	}
}
