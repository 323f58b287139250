package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrDefaultTypeNotDeletable   = errors.New("default entity types cannot be deleted")
	ErrEntityTypeNotMaterialized = errors.New("entity type has not been saved yet")
)

// ErrReservedSlug is returned when a custom type is saved under a slug
// reserved for a default type.
var ErrReservedSlug = errors.New("slug is reserved for a default entity type")
