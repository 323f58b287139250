package service

import (
	"context"

	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/internal/store"
)

type fileService struct {
	blobs  store.BlobStorage
	logger *logger.Logger
}

func NewFileService(blobs store.BlobStorage, logger *logger.Logger) FileService {
	return &fileService{blobs: blobs, logger: logger}
}

func (s *fileService) Load(ctx context.Context, name string) ([]byte, error) {
	return s.blobs.LoadBlob(ctx, name)
}
