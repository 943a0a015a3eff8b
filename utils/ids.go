package utils

import (
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// GenerateID returns a new unique identifier string
func GenerateID() string {
	return uuid.New().String()
}

// GenerateSortableID returns a ULID: unique and lexicographically ordered
// by creation time. Used for threads and messages, where storage-order
// listing matters.
func GenerateSortableID() string {
	return ulid.Make().String()
}
