/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package credential

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// defaultSchema validates that a credential conforms to the serialization of
// the verifiable credential data model
// (https://w3c.github.io/vc-data-model/#basic-concepts).
const defaultSchema = `{
  "required": [
    "@context",
    "type",
    "credentialSubject",
    "issuer",
    "issuanceDate"
  ],
  "properties": {
    "@context": {
      "oneOf": [
        {
          "type": "string"
        },
        {
          "type": "array",
          "items": [
            {
              "type": "string",
              "pattern": "^https://www.w3.org/2018/credentials/v1$"
            }
          ],
          "uniqueItems": true,
          "additionalItems": {
            "oneOf": [
              {
                "type": "object"
              },
              {
                "type": "string"
              }
            ]
          }
        }
      ]
    },
    "id": {
      "type": "string"
    },
    "type": {
      "oneOf": [
        {
          "type": "array",
          "minItems": 1,
          "contains": {
            "type": "string",
            "pattern": "^VerifiableCredential$"
          }
        },
        {
          "type": "string",
          "pattern": "^VerifiableCredential$"
        }
      ]
    },
    "credentialSubject": {
      "anyOf": [
        {
          "type": "array"
        },
        {
          "type": "object"
        },
        {
          "type": "string"
        }
      ]
    },
    "issuer": {
      "anyOf": [
        {
          "type": "string",
          "format": "uri"
        },
        {
          "type": "object",
          "required": [
            "id"
          ],
          "properties": {
            "id": {
              "type": "string"
            }
          }
        }
      ]
    },
    "issuanceDate": {
      "type": "string",
      "format": "date-time"
    },
    "proof": {
      "anyOf": [
        {
          "type": "object"
        },
        {
          "type": "array"
        }
      ]
    },
    "expirationDate": {
      "type": "string",
      "format": "date-time"
    },
    "credentialStatus": {
      "type": "object",
      "required": [
        "id",
        "type"
      ]
    },
    "credentialSchema": {
      "type": "object",
      "required": [
        "id",
        "type"
      ]
    }
  }
}`

// ValidationError is a JSON schema violation. Fields names every offending
// field, not just the first one found.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("credential does not satisfy its schema, offending fields: [%s]",
		strings.Join(e.Fields, ", "))
}

// DefaultSchemaLoader returns the loader for the default credential schema.
func DefaultSchemaLoader() gojsonschema.JSONLoader {
	return gojsonschema.NewStringLoader(defaultSchema)
}

func validateSchema(data []byte, schemaLoader gojsonschema.JSONLoader) error {
	if schemaLoader == nil {
		schemaLoader = DefaultSchemaLoader()
	}

	loader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, loader)
	if err != nil {
		return fmt.Errorf("validation of verifiable credential: %w", err)
	}

	if !result.Valid() {
		logger.Debugf("schema validation failed: %v", result.Errors())

		return &ValidationError{Fields: offendingFields(result)}
	}

	return nil
}

func offendingFields(result *gojsonschema.Result) []string {
	seen := make(map[string]struct{})

	var fields []string

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "(root)" {
			// required-property violations name the property in details
			if property, ok := desc.Details()["property"].(string); ok {
				field = property
			}
		}

		if _, ok := seen[field]; ok {
			continue
		}

		seen[field] = struct{}{}

		fields = append(fields, field)
	}

	sort.Strings(fields)

	return fields
}
