package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-schema-keeper/internal/config"
	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/internal/utils"
	"github.com/MKhiriev/go-schema-keeper/models"
)

var blobExtension = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

// fileBlobStorage writes uploaded files into a single flat directory under
// freshly generated names.
type fileBlobStorage struct {
	dir       string
	generator utils.IDGenerator
	logger    *logger.Logger
}

// NewFileBlobStorage creates the configured directory if needed.
func NewFileBlobStorage(cfg config.Files, logger *logger.Logger) (BlobStorage, error) {
	if err := os.MkdirAll(cfg.BinaryDataDir, 0o750); err != nil {
		logger.Err(err).Str("func", "NewFileBlobStorage").Str("dir", cfg.BinaryDataDir).Msg("error creating binary data directory")
		return nil, fmt.Errorf("error creating binary data directory: %w", err)
	}

	return &fileBlobStorage{
		dir:       cfg.BinaryDataDir,
		generator: utils.NewUUIDGenerator(),
		logger:    logger,
	}, nil
}

func (s *fileBlobStorage) SaveBlob(ctx context.Context, blob models.Blob) (string, error) {
	log := logger.FromContext(ctx)

	name := s.generator.Generate()
	if ext := strings.ToLower(filepath.Ext(blob.FileName)); blobExtension.MatchString(ext) {
		name += ext
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), blob.Data, 0o640); err != nil {
		log.Err(err).Str("func", "*fileBlobStorage.SaveBlob").Str("file", blob.FileName).Msg("error writing file")
		return "", fmt.Errorf("error writing file: %w", err)
	}

	log.Debug().Str("func", "*fileBlobStorage.SaveBlob").Str("name", name).Int("size", len(blob.Data)).Msg("file saved")
	return name, nil
}

func (s *fileBlobStorage) LoadBlob(ctx context.Context, name string) ([]byte, error) {
	// only names issued by SaveBlob are served
	if !utils.IsUUID(strings.TrimSuffix(name, filepath.Ext(name))) {
		return nil, ErrBlobNotFound
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileBlobStorage.LoadBlob").Str("name", name).Msg("error reading file")
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return data, nil
}
