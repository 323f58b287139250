// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-schema-keeper/models"
)

// EntityValidator checks the schema-independent parts of an entity: its
// trimmed name and its type reference.
type EntityValidator struct {
}

// NewEntityValidator constructs a new EntityValidator
// and returns it as the Validator interface.
func NewEntityValidator() Validator {
	return &EntityValidator{}
}

// Validate accepts models.EntityDraft and models.Entity, as values or
// pointers. Default fields are name and type_id; FieldID is opt-in.
func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EntityDraft:
		return v.validateEntity(ctx, "", value.TypeID, value.Name, fields...)
	case *models.EntityDraft:
		return v.validateEntity(ctx, "", value.TypeID, value.Name, fields...)

	case models.Entity:
		return v.validateEntity(ctx, value.ID, value.TypeID, value.Name, fields...)
	case *models.Entity:
		return v.validateEntity(ctx, value.ID, value.TypeID, value.Name, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntityValidator) validateEntity(_ context.Context, id, typeID, name string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldTypeID}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(name) == "" {
				return ErrEmptyEntityName
			}
		case FieldTypeID:
			if strings.TrimSpace(typeID) == "" {
				return ErrEmptyTypeID
			}
		case FieldID:
			if strings.TrimSpace(id) == "" {
				return ErrEmptyEntityID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
