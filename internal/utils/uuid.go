package utils

import "github.com/google/uuid"

// IDGenerator issues the identifiers of entity types, entities and stored
// blobs.
type IDGenerator interface {
	Generate() string
}

type uuidGenerator struct{}

// NewUUIDGenerator returns a generator of time-ordered (v7) UUIDs.
func NewUUIDGenerator() IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// IsUUID reports whether id is a well-formed UUID. Anything else can never
// name a stored row.
func IsUUID(id string) bool {
	return uuid.Validate(id) == nil
}
