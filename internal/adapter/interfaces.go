// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client core and
// the remote data store.
//
// The primary abstraction is [ServerAdapter], which decouples the schema
// registry and entity store from the underlying protocol. The package ships
// an HTTP/REST implementation ([NewHTTPServerAdapter]) speaking JSON for
// entity types and multipart forms for entities.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-schema-keeper/internal/envelope"
	"github.com/MKhiriev/go-schema-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the remote data store.
// Implementations are responsible for serialisation, normalising listing
// shapes and mapping transport-level errors to the sentinel values defined
// in this package. No call is retried.
type ServerAdapter interface {
	// ListEntityTypes fetches every stored entity type. A bare array and a
	// {"data": [...]} object are both accepted; any other shape yields an
	// empty list.
	ListEntityTypes(ctx context.Context) ([]models.EntityType, error)

	// CreateEntityType stores a new entity type and returns it with its id.
	CreateEntityType(ctx context.Context, payload models.EntityTypePayload) (models.EntityType, error)

	// UpdateEntityType replaces the entity type identified by id.
	UpdateEntityType(ctx context.Context, id string, payload models.EntityTypePayload) (models.EntityType, error)

	// DeleteEntityType removes the type. The store deletes its entities too.
	DeleteEntityType(ctx context.Context, id string) error

	// ListEntities fetches the entities of one type. Same shape tolerance as
	// ListEntityTypes.
	ListEntities(ctx context.Context, typeID string) ([]models.Entity, error)

	// CreateEntity posts env as a multipart form.
	CreateEntity(ctx context.Context, env envelope.Envelope) (models.Entity, error)

	// UpdateEntity puts env as a multipart form to the entity identified by id.
	UpdateEntity(ctx context.Context, id string, env envelope.Envelope) (models.Entity, error)

	// DeleteEntity removes one entity.
	DeleteEntity(ctx context.Context, id string) error

	// Version returns the version string reported by the store.
	Version(ctx context.Context) (string, error)
}
