// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-schema-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the display name of a type or an entity.
	FieldName = "name"

	// FieldSlug targets the slug of an entity type.
	FieldSlug = "slug"

	// FieldFields targets the field definition list of an entity type.
	FieldFields = "fields"

	// FieldTypeID targets the owning type reference of an entity.
	FieldTypeID = "type_id"

	// FieldID targets the identifier of a stored entity.
	FieldID = "id"
)

// EntityTypeValidator checks entity types before they are saved: name and
// slug present, every field complete, keys unique after trimming and types
// drawn from the supported set.
type EntityTypeValidator struct {
}

// NewEntityTypeValidator constructs a new EntityTypeValidator
// and returns it as the Validator interface.
func NewEntityTypeValidator() Validator {
	return &EntityTypeValidator{}
}

// Validate accepts models.EntityType, models.EntityTypePayload (values or
// pointers) and a bare []models.FieldDefinition.
func (v *EntityTypeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EntityType:
		return v.validateEntityType(ctx, value.Name, value.Slug, value.Fields, fields...)
	case *models.EntityType:
		return v.validateEntityType(ctx, value.Name, value.Slug, value.Fields, fields...)

	case models.EntityTypePayload:
		return v.validateEntityType(ctx, value.Name, value.Slug, value.FieldSchema, fields...)
	case *models.EntityTypePayload:
		return v.validateEntityType(ctx, value.Name, value.Slug, value.FieldSchema, fields...)

	case []models.FieldDefinition:
		return validateFieldDefinitions(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntityTypeValidator) validateEntityType(_ context.Context, name, slug string, defs []models.FieldDefinition, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldSlug, FieldFields}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(name) == "" {
				return ErrEmptyTypeName
			}
		case FieldSlug:
			if strings.TrimSpace(slug) == "" {
				return ErrEmptyTypeSlug
			}
		case FieldFields:
			if err := validateFieldDefinitions(defs); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateFieldDefinitions reports a duplicated key first, wherever it
// occurs in the list, then the first incomplete or mistyped field. Keys are
// compared trimmed.
func validateFieldDefinitions(defs []models.FieldDefinition) error {
	seen := make(map[string]int, len(defs))
	for i, def := range defs {
		key := strings.TrimSpace(def.Key)
		if key == "" {
			continue
		}
		if first, dup := seen[key]; dup {
			return fmt.Errorf("%w %q (fields %d and %d)", ErrDuplicateFieldKey, key, first+1, i+1)
		}
		seen[key] = i
	}

	for i, def := range defs {
		key := strings.TrimSpace(def.Key)
		if key == "" {
			return fmt.Errorf("field %d: %w", i+1, ErrEmptyFieldKey)
		}
		if strings.TrimSpace(def.Label) == "" {
			return fmt.Errorf("field %q: %w", key, ErrEmptyFieldLabel)
		}
		if !def.Type.IsValid() {
			return fmt.Errorf("field %q: %w %q", key, ErrInvalidFieldType, def.Type)
		}
	}

	return nil
}
