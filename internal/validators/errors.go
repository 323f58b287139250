package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTypeName     = errors.New("type name is required")
	ErrEmptyTypeSlug     = errors.New("type slug is required")
	ErrEmptyFieldKey     = errors.New("field key is required")
	ErrEmptyFieldLabel   = errors.New("field label is required")
	ErrDuplicateFieldKey = errors.New("duplicate field key")
	ErrInvalidFieldType  = errors.New("invalid field type")

	ErrEmptyEntityName = errors.New("name is required")
	ErrEmptyTypeID     = errors.New("type id is required")
	ErrEmptyEntityID   = errors.New("entity id is required")
)
