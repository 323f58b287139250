// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/json"
	"math"

	"github.com/MKhiriev/go-schema-keeper/models"
)

// Validate checks one field's value at submit time. Absence on a required
// field is an error; a present value is then type-checked: numbers must be
// finite, json text must parse. Every other present value is accepted.
func Validate(def models.FieldDefinition, v models.TypedValue) error {
	if v.IsAbsent() {
		if def.Required {
			return fieldError(def, ErrFieldRequired)
		}
		return nil
	}

	switch def.Type {
	case models.FieldNumber:
		if _, ok := numberOf(v); !ok {
			return fieldError(def, ErrInvalidNumber)
		}
	case models.FieldJSON:
		if s, isText := v.AsText(); isText && !json.Valid([]byte(s)) {
			return fieldError(def, ErrInvalidJSON)
		}
	}

	return nil
}

// ValidateAll runs [Validate] for every definition in order against the
// value stored under its key and returns the first failure.
func ValidateAll(defs []models.FieldDefinition, metadata models.Metadata) error {
	for _, def := range defs {
		if err := Validate(def, metadata[def.Key]); err != nil {
			return err
		}
	}
	return nil
}

// Normalize converts a validated value into its transport form: numeric
// text of a number field becomes a number and json text becomes the parsed
// object or array. Values that would not validate are returned unchanged.
func Normalize(def models.FieldDefinition, v models.TypedValue) models.TypedValue {
	switch def.Type {
	case models.FieldNumber:
		if f, ok := numberOf(v); ok {
			return models.NumberValue(f)
		}
	case models.FieldJSON:
		if s, isText := v.AsText(); isText && s != "" {
			var parsed any
			if err := json.Unmarshal([]byte(s), &parsed); err != nil {
				return v
			}
			switch parsed.(type) {
			case map[string]any, []any:
				return models.JSONValue(parsed)
			}
		}
	}
	return v
}

func numberOf(v models.TypedValue) (float64, bool) {
	if f, ok := v.AsNumber(); ok {
		return f, !math.IsNaN(f) && !math.IsInf(f, 0)
	}
	if s, ok := v.AsText(); ok {
		return parseFloat(s)
	}
	return 0, false
}

func fieldError(def models.FieldDefinition, err error) error {
	return &FieldError{Key: def.Key, Label: def.DisplayName(), Err: err}
}
