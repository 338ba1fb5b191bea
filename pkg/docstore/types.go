package docstore

import "encoding/json"

// Document is a single JSON document in a collection.
type Document struct {
	ID         string          `json:"id"`
	Collection string          `json:"collection"`
	Data       json.RawMessage `json:"data"`
	CreateTime string          `json:"create_time,omitempty"` // RFC3339, set by the store
	UpdateTime string          `json:"update_time,omitempty"`
}

// ListOptions narrows a collection listing. Filter keys match
// top-level fields of the document data.
type ListOptions struct {
	Filter map[string]string
	Limit  int
}

// createRequest is the wire body for document creation and update.
type createRequest struct {
	Data json.RawMessage `json:"data"`
}

// listResponse is the wire body for collection listings.
type listResponse struct {
	Documents []Document `json:"documents"`
}
