// Package models defines the strongly typed records the client works with
// and the mapping from loosely typed gateway documents into them. Documents
// missing required fields are rejected here so undefined values never reach
// the view layer.
package models

import (
	"errors"
	"fmt"

	"github.com/Guru-25/FreeFusion/internal/client/gateway"
)

// ErrInvalidDocument marks a gateway document that cannot be mapped into a
// typed record, e.g. a required field is absent or not a string.
var ErrInvalidDocument = errors.New("invalid document")

// stringField extracts a string-valued field from a document payload.
func stringField(doc gateway.Document, name string) (string, error) {
	v, ok := doc.Fields[name]
	if !ok {
		return "", fmt.Errorf("%w: missing field %q", ErrInvalidDocument, name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q is not a string", ErrInvalidDocument, name)
	}
	return s, nil
}

// optionalStringField extracts a string-valued field, returning "" when the
// field is absent or has a non-string type.
func optionalStringField(doc gateway.Document, name string) string {
	if s, ok := doc.Fields[name].(string); ok {
		return s
	}
	return ""
}
