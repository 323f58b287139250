// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Entity is a record stored under an [EntityType]. Metadata is expected,
// but not enforced at rest, to match the type's current field list.
type Entity struct {
	ID       string   `json:"id"`
	TypeID   string   `json:"type_id"`
	Name     string   `json:"name"`
	Metadata Metadata `json:"metadata"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// EntityDraft is the editor state submitted to create or update an entity.
type EntityDraft struct {
	// TypeID references the owning entity type.
	TypeID string

	// Name is validated on its own and never part of Metadata.
	Name string

	// Metadata holds the values parsed from schema-bound fields.
	Metadata Metadata

	// LooseMetadata is an optional JSON object text with ad-hoc keys
	// produced by the metadata builder. Schema-bound values win on
	// key collisions.
	LooseMetadata string

	// Schema is the owning type as the caller already holds it. When it is
	// set and its id equals TypeID the store validates against it without
	// resolving the type first.
	Schema *EntityType
}
