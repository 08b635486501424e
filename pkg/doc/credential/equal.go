/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"encoding/json"

	"github.com/google/go-cmp/cmp"
)

// Equal reports deep structural equality of two JSON-serializable values.
// Both values are normalized through a JSON round trip first, so struct,
// map, and raw-message renderings of the same document compare as equal.
func Equal(a, b interface{}) bool {
	left, err := normalize(a)
	if err != nil {
		return false
	}

	right, err := normalize(b)
	if err != nil {
		return false
	}

	return cmp.Equal(left, right)
}

// Diff renders a human-readable diff of two JSON-serializable values for
// diagnostics. Empty when the values are equal.
func Diff(a, b interface{}) string {
	left, err := normalize(a)
	if err != nil {
		return err.Error()
	}

	right, err := normalize(b)
	if err != nil {
		return err.Error()
	}

	return cmp.Diff(left, right)
}

func normalize(v interface{}) (interface{}, error) {
	bits, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var normalized interface{}
	if err := json.Unmarshal(bits, &normalized); err != nil {
		return nil, err
	}

	return normalized, nil
}
