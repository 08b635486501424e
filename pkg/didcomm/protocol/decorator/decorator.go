/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package decorator provides the attachment decorator used to carry
// phase payloads across the issue-credential protocol.
package decorator

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// MediaTypeJSON is the media type assigned to attachments built by NewAttachment.
const MediaTypeJSON = "application/json"

// ErrMalformedAttachment signals that an attachment body is not valid
// base64-encoded JSON.
var ErrMalformedAttachment = errors.New("malformed attachment")

// Attachment is the wire-level container carrying a phase's payload.
type Attachment struct {
	// ID identifies the attachment within a message and correlates it with
	// its format descriptor. Stable across the phases of one exchange.
	ID string `json:"id,omitempty"`
	// Description is an optional human readable description of the content.
	Description string `json:"description,omitempty"`
	// MediaType describes the content of the attachment data.
	MediaType string `json:"media_type,omitempty"`
	// Data contains the attachment payload.
	Data AttachmentData `json:"data,omitempty"`
}

// AttachmentData contains attachment payload in one of its supported
// representations.
type AttachmentData struct {
	// Base64 contains the base64-encoded bytes of the payload.
	Base64 string `json:"base64,omitempty"`
	// JSON contains the payload directly, without encoding.
	JSON interface{} `json:"json,omitempty"`
}

// Fetch returns the raw bytes of the attachment payload.
func (d *AttachmentData) Fetch() ([]byte, error) {
	if d.JSON != nil {
		bits, err := json.Marshal(d.JSON)
		if err != nil {
			return nil, fmt.Errorf("json marshal: %w", err)
		}

		return bits, nil
	}

	if d.Base64 != "" {
		bits, err := base64.StdEncoding.DecodeString(d.Base64)
		if err != nil {
			return nil, fmt.Errorf("%w: decode base64: %s", ErrMalformedAttachment, err.Error())
		}

		return bits, nil
	}

	return nil, errors.New("no contents in this attachment")
}

// NewAttachment serializes payload to JSON, base64-encodes it, and wraps it
// in an Attachment with the given id and the JSON media type.
func NewAttachment(id string, payload interface{}) (*Attachment, error) {
	bits, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal attachment payload: %w", err)
	}

	return &Attachment{
		ID:        id,
		MediaType: MediaTypeJSON,
		Data: AttachmentData{
			Base64: base64.StdEncoding.EncodeToString(bits),
		},
	}, nil
}

// DecodeAttachment unmarshals the attachment payload into v.
// It fails with ErrMalformedAttachment if the body is not valid
// base64-encoded JSON.
func DecodeAttachment(a *Attachment, v interface{}) error {
	contents, err := a.Data.Fetch()
	if err != nil {
		return fmt.Errorf("fetch attachment contents: %w", err)
	}

	if err := json.Unmarshal(contents, v); err != nil {
		return fmt.Errorf("%w: unmarshal contents: %s", ErrMalformedAttachment, err.Error())
	}

	return nil
}
