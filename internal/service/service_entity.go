// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"path"

	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/internal/store"
	"github.com/MKhiriev/go-schema-keeper/internal/utils"
	"github.com/MKhiriev/go-schema-keeper/internal/validators"
	"github.com/MKhiriev/go-schema-keeper/models"
)

// FilesRoute is the path prefix stored blobs are served under.
const FilesRoute = "/api/files"

type entityService struct {
	repo      store.EntityRepository
	blobs     store.BlobStorage
	validator validators.Validator
	generator utils.IDGenerator
	logger    *logger.Logger
}

func NewEntityService(repo store.EntityRepository, blobs store.BlobStorage, logger *logger.Logger) EntityService {
	return &entityService{
		repo:      repo,
		blobs:     blobs,
		validator: validators.NewEntityValidator(),
		generator: utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

func (s *entityService) List(ctx context.Context, typeID string) ([]models.Entity, error) {
	if err := s.validator.Validate(ctx, models.EntityDraft{TypeID: typeID}, validators.FieldTypeID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.repo.ListEntities(ctx, typeID)
}

func (s *entityService) Create(ctx context.Context, draft models.EntityDraft) (models.Entity, error) {
	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.Entity{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	metadata, err := s.storeBlobs(ctx, draft.Metadata)
	if err != nil {
		return models.Entity{}, err
	}

	return s.repo.CreateEntity(ctx, models.Entity{
		ID:       s.generator.Generate(),
		TypeID:   draft.TypeID,
		Name:     draft.Name,
		Metadata: metadata,
	})
}

func (s *entityService) Update(ctx context.Context, id string, draft models.EntityDraft) (models.Entity, error) {
	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.Entity{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	metadata, err := s.storeBlobs(ctx, draft.Metadata)
	if err != nil {
		return models.Entity{}, err
	}

	return s.repo.UpdateEntity(ctx, models.Entity{
		ID:       id,
		TypeID:   draft.TypeID,
		Name:     draft.Name,
		Metadata: metadata,
	})
}

func (s *entityService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteEntity(ctx, id)
}

// storeBlobs writes every blob value to file storage and replaces it by its
// reference: one blob becomes text, several become a list.
func (s *entityService) storeBlobs(ctx context.Context, metadata models.Metadata) (models.Metadata, error) {
	out := make(models.Metadata, len(metadata))

	for key, v := range metadata {
		blobs, ok := v.AsBlobs()
		if !ok {
			out[key] = v
			continue
		}

		refs := make([]string, 0, len(blobs))
		for _, blob := range blobs {
			name, err := s.blobs.SaveBlob(ctx, blob)
			if err != nil {
				s.logger.Err(err).Str("func", "*entityService.storeBlobs").Str("key", key).Msg("error storing blob")
				return nil, fmt.Errorf("store %q: %w", key, err)
			}
			refs = append(refs, path.Join(FilesRoute, name))
		}

		if len(refs) == 1 {
			out[key] = models.TextValue(refs[0])
		} else {
			out[key] = models.ListValue(refs)
		}
	}

	return out, nil
}
