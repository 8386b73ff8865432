package models

import "fmt"

// SchemaError reports a document that violates the shape this
// application enforces over the schemaless store. It is returned by the
// data-access boundary so malformed documents fail fast instead of
// propagating undefined fields into rendering.
type SchemaError struct {
	Collection string
	ID         string
	Reason     string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("malformed %s document %s: %s", e.Collection, e.ID, e.Reason)
}
