package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-schema-keeper/models"
)

// SchemaRegistry is the client-side contract for managing entity types.
type SchemaRegistry interface {
	// List returns every default type (as a placeholder when it has not been
	// materialized yet) followed by the custom types in server order.
	List(ctx context.Context) ([]models.EntityTypeEntry, error)

	// Resolve returns the materialized type with the given id.
	Resolve(ctx context.Context, typeID string) (models.EntityType, error)

	// Save validates entityType and creates or updates it. Default types keep
	// their reserved name and slug whatever the caller passes.
	Save(ctx context.Context, entityType models.EntityType) (models.EntityType, error)

	// Delete removes a custom type. The server cascades to its entities.
	Delete(ctx context.Context, entityType models.EntityType) error
}

// EntityStore is the client-side contract for entity CRUD scoped by type.
type EntityStore interface {
	List(ctx context.Context, typeID string) ([]models.Entity, error)

	// Create validates draft against its type's field list and submits it.
	// Nothing is sent when validation fails.
	Create(ctx context.Context, draft models.EntityDraft) (models.Entity, error)
	Update(ctx context.Context, id string, draft models.EntityDraft) (models.Entity, error)

	// Delete removes the entity; typeID only selects the listing to refresh.
	Delete(ctx context.Context, id, typeID string) error
}
