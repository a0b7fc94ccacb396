package domain

import "github.com/google/uuid"

// Identifiable is implemented by entities keyed by a server-assigned id.
// The client never originates ids.
type Identifiable interface {
	Identity() uuid.UUID
}

// PageMetadata describes one page of a paginated collection.
type PageMetadata struct {
	Page      int `json:"page"`
	Per       int `json:"per"`
	Total     int `json:"total"`
	PageCount int `json:"pageCount"`
}

// HasMorePages reports whether a page beyond this one exists.
func (m PageMetadata) HasMorePages() bool {
	return m.Page < m.PageCount
}

// Page is one fetched slice of a paginated collection.
type Page[T any] struct {
	Items    []T          `json:"items"`
	Metadata PageMetadata `json:"metadata"`
}
