package service

import (
	"github.com/MKhiriev/go-schema-keeper/internal/adapter"
	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/internal/store"
)

type ClientServices struct {
	SchemaRegistry SchemaRegistry
	EntityStore    EntityStore
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	registry := NewSchemaRegistry(storages, serverAdapter, logger)

	return &ClientServices{
		SchemaRegistry: registry,
		EntityStore:    NewEntityStore(storages, serverAdapter, registry, logger),
	}
}
