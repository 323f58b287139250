// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence layer of both binaries: the PostgreSQL
// repositories and file blob storage of the reference data store, and the
// SQLite listing cache of the terminal client.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-schema-keeper/models"
)

// EntityTypeRepository persists entity types. Ids are assigned by the caller.
type EntityTypeRepository interface {
	ListEntityTypes(ctx context.Context) ([]models.EntityType, error)
	GetEntityType(ctx context.Context, id string) (models.EntityType, error)
	CreateEntityType(ctx context.Context, entityType models.EntityType) (models.EntityType, error)
	UpdateEntityType(ctx context.Context, entityType models.EntityType) (models.EntityType, error)
	// DeleteEntityType removes the type together with all of its entities.
	DeleteEntityType(ctx context.Context, id string) error
}

// EntityRepository persists entities scoped to their owning type.
type EntityRepository interface {
	ListEntities(ctx context.Context, typeID string) ([]models.Entity, error)
	GetEntity(ctx context.Context, id string) (models.Entity, error)
	CreateEntity(ctx context.Context, entity models.Entity) (models.Entity, error)
	UpdateEntity(ctx context.Context, entity models.Entity) (models.Entity, error)
	DeleteEntity(ctx context.Context, id string) error
}

// BlobStorage keeps uploaded files outside the database.
type BlobStorage interface {
	// SaveBlob writes blob and returns the generated name it is served under.
	SaveBlob(ctx context.Context, blob models.Blob) (string, error)
	LoadBlob(ctx context.Context, name string) ([]byte, error)
}
