/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Issuer of a verifiable credential.
// On the wire the issuer is either a bare identifier string or an object
// carrying an id plus extra metadata; both forms expose the identifier
// through ID.
type Issuer struct {
	ID string `json:"id,omitempty"`

	CustomFields map[string]interface{} `json:"-"`
}

// MarshalJSON marshals Issuer to JSON, as a string when there is no extra
// metadata and as an object otherwise.
func (i Issuer) MarshalJSON() ([]byte, error) {
	if len(i.CustomFields) == 0 {
		// as string
		return json.Marshal(i.ID)
	}

	// as object
	fields := make(map[string]interface{}, len(i.CustomFields)+1)

	for k, v := range i.CustomFields {
		fields[k] = v
	}

	fields["id"] = i.ID

	data, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("marshal issuer: %w", err)
	}

	return data, nil
}

// UnmarshalJSON unmarshals issuer from JSON.
func (i *Issuer) UnmarshalJSON(bits []byte) error {
	var issuerID string

	if err := json.Unmarshal(bits, &issuerID); err == nil {
		// as string
		i.ID = issuerID
		return nil
	}

	// as object
	fields := make(map[string]interface{})
	if err := json.Unmarshal(bits, &fields); err != nil {
		return fmt.Errorf("unmarshal issuer: %w", err)
	}

	id, ok := fields["id"].(string)
	if !ok || id == "" {
		return errors.New("issuer object has no id")
	}

	delete(fields, "id")

	i.ID = id
	i.CustomFields = fields

	return nil
}
