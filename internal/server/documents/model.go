package documents

import "time"

// Document is one schemaless record inside a named collection. Fields holds
// the record body as stored in the jsonb column.
type Document struct {
	ID         string
	Collection string
	Fields     map[string]any
	CreatedAt  time.Time
}
