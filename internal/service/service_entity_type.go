// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/internal/store"
	"github.com/MKhiriev/go-schema-keeper/internal/utils"
	"github.com/MKhiriev/go-schema-keeper/internal/validators"
	"github.com/MKhiriev/go-schema-keeper/models"
)

type entityTypeService struct {
	repo      store.EntityTypeRepository
	validator validators.Validator
	generator utils.IDGenerator
	logger    *logger.Logger
}

func NewEntityTypeService(repo store.EntityTypeRepository, logger *logger.Logger) EntityTypeService {
	return &entityTypeService{
		repo:      repo,
		validator: validators.NewEntityTypeValidator(),
		generator: utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

func (s *entityTypeService) List(ctx context.Context) ([]models.EntityType, error) {
	return s.repo.ListEntityTypes(ctx)
}

func (s *entityTypeService) Get(ctx context.Context, id string) (models.EntityType, error) {
	return s.repo.GetEntityType(ctx, id)
}

func (s *entityTypeService) Create(ctx context.Context, payload models.EntityTypePayload) (models.EntityType, error) {
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.EntityType{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.repo.CreateEntityType(ctx, entityTypeFromPayload(s.generator.Generate(), payload))
}

func (s *entityTypeService) Update(ctx context.Context, id string, payload models.EntityTypePayload) (models.EntityType, error) {
	if err := s.validator.Validate(ctx, payload); err != nil {
		return models.EntityType{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.repo.UpdateEntityType(ctx, entityTypeFromPayload(id, payload))
}

func (s *entityTypeService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteEntityType(ctx, id)
}

func entityTypeFromPayload(id string, payload models.EntityTypePayload) models.EntityType {
	return models.EntityType{
		ID:          id,
		Name:        payload.Name,
		Slug:        payload.Slug,
		Description: payload.Description,
		Fields:      payload.FieldSchema,
	}
}
