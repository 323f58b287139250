// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-schema-keeper/models"
)

// ListingCache keeps the last fetched listings on the client device. The
// boolean result of the Get methods reports a cache hit.
type ListingCache interface {
	GetEntityTypes(ctx context.Context) ([]models.EntityType, bool, error)
	SaveEntityTypes(ctx context.Context, types []models.EntityType) error
	InvalidateEntityTypes(ctx context.Context) error

	GetEntities(ctx context.Context, typeID string) ([]models.Entity, bool, error)
	SaveEntities(ctx context.Context, typeID string, entities []models.Entity) error
	InvalidateEntities(ctx context.Context, typeID string) error
}
