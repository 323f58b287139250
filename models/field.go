// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldType is the declared type of a [FieldDefinition]. It decides how raw
// input is parsed, how stored values are displayed and how values are
// validated before they are sent to the remote store.
type FieldType string

const (
	FieldText        FieldType = "text"
	FieldTextarea    FieldType = "textarea"
	FieldNumber      FieldType = "number"
	FieldDate        FieldType = "date"
	FieldBoolean     FieldType = "boolean"
	FieldSelect      FieldType = "select"
	FieldMultiselect FieldType = "multiselect"
	FieldURL         FieldType = "url"
	FieldJSON        FieldType = "json"
	FieldImage       FieldType = "image"
)

// FieldTypes lists every supported field type in the order the editor cycles
// through them.
var FieldTypes = []FieldType{
	FieldText,
	FieldTextarea,
	FieldNumber,
	FieldDate,
	FieldBoolean,
	FieldSelect,
	FieldMultiselect,
	FieldURL,
	FieldJSON,
	FieldImage,
}

// IsValid reports whether t is one of [FieldTypes].
func (t FieldType) IsValid() bool {
	for _, ft := range FieldTypes {
		if ft == t {
			return true
		}
	}
	return false
}

// HasOptions reports whether the options list is meaningful for t.
func (t FieldType) HasOptions() bool {
	return t == FieldSelect || t == FieldMultiselect
}

// FieldDefinition is one typed, labeled slot within an [EntityType].
// Key must be non-empty and unique within its owning schema.
type FieldDefinition struct {
	// Key is the metadata map key the field's value is stored under.
	Key string `json:"key"`

	// Label is the human-readable name shown in forms and error messages.
	Label string `json:"label"`

	// Type is the declared value type.
	Type FieldType `json:"type"`

	// Required marks the field as mandatory at submit time.
	Required bool `json:"required"`

	// Private hides the value from listings.
	Private bool `json:"private"`

	// Options is the ordered list of allowed values for select and
	// multiselect fields. Ignored for all other types.
	Options []string `json:"options,omitempty"`
}

// DisplayName returns the label, falling back to the key when the label is
// blank.
func (f FieldDefinition) DisplayName() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Key
}
