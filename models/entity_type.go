// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EntityType is a named, versionless schema: the ordered list of fields that
// records of one category carry.
type EntityType struct {
	// ID is assigned by the remote store. Empty for a default type that has
	// not been materialized yet.
	ID string `json:"id,omitempty"`

	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`

	// Fields is serialized as "fieldSchema" on the wire.
	Fields []FieldDefinition `json:"fieldSchema"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Materialized reports whether the type exists in the remote store.
func (t EntityType) Materialized() bool {
	return t.ID != ""
}

// Payload returns the create/update request body for t.
func (t EntityType) Payload() EntityTypePayload {
	fields := t.Fields
	if fields == nil {
		fields = []FieldDefinition{}
	}

	return EntityTypePayload{
		Name:        t.Name,
		Slug:        t.Slug,
		Description: t.Description,
		FieldSchema: fields,
	}
}

// EntityTypePayload is the JSON body of entity type create and update calls.
type EntityTypePayload struct {
	Name        string            `json:"name"`
	Slug        string            `json:"slug"`
	Description string            `json:"description"`
	FieldSchema []FieldDefinition `json:"fieldSchema"`
}

// EntityTypeEntry is one element of the registry listing. Every default
// type is present, materialized or not; custom types follow.
type EntityTypeEntry struct {
	EntityType

	// Default is true when the slug is reserved in [DefaultTypes].
	Default bool
}

// DefaultType is a reserved schema identity.
type DefaultType struct {
	Slug string
	Name string
}

// DefaultTypes is the fixed table of built-in record categories. Their name
// and slug never change; only their field lists are editable.
var DefaultTypes = []DefaultType{
	{Slug: "projects", Name: "Projects"},
	{Slug: "experience", Name: "Experience"},
	{Slug: "education", Name: "Education"},
	{Slug: "certifications", Name: "Certifications"},
	{Slug: "skills", Name: "Skills"},
}

// LookupDefaultType returns the default type registered under slug.
func LookupDefaultType(slug string) (DefaultType, bool) {
	for _, dt := range DefaultTypes {
		if dt.Slug == slug {
			return dt, true
		}
	}
	return DefaultType{}, false
}

// IsDefaultSlug reports whether slug is reserved by a default type.
func IsDefaultSlug(slug string) bool {
	_, ok := LookupDefaultType(slug)
	return ok
}
